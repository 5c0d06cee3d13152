package config

import (
	"os"
	"strings"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	// AdminEmails adalah allow-list email yang boleh memakai endpoint admin.
	// Diisi dari ADMIN_EMAILS (dipisah koma) saat startup, tidak di-hardcode,
	// supaya mengganti anggota tidak perlu redeploy kode.
	AdminEmails map[string]bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBDSN:       getEnv("DB_DSN", "teashop:teashop@tcp(127.0.0.1:3306)/teashop_db?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "teashop-dev-secret"),
		AdminEmails: parseEmailList(os.Getenv("ADMIN_EMAILS")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseEmailList(raw string) map[string]bool {
	emails := make(map[string]bool)
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = true
		}
	}
	return emails
}
