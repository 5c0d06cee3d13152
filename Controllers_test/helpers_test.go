package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/phonemyintzaw/teashop-app/config"
	"github.com/phonemyintzaw/teashop-app/models"
	"github.com/phonemyintzaw/teashop-app/router"
	"github.com/phonemyintzaw/teashop-app/utils"
)

const adminEmail = "owner@teashop.example"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.MenuItem{},
		&models.MenuItemOption{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	cfg := &config.Config{
		Port:        "8080",
		AdminEmails: map[string]bool{adminEmail: true},
	}
	return router.SetupRouter(db, cfg)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, adminEmail, "admin")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.MenuItem, models.MenuItemOption, models.Customer) {
	t.Helper()
	item := models.MenuItem{
		Name:      "Fried Rice",
		BasePrice: decimal.RequireFromString("5.00"),
		ItemType:  models.ItemTypeFriedRice,
	}
	require.NoError(t, db.Create(&item).Error)

	option := models.MenuItemOption{
		MenuItemID:    item.ID,
		OptionName:    "Extra Egg",
		PriceModifier: decimal.RequireFromString("1.00"),
	}
	require.NoError(t, db.Create(&option).Error)

	customer := models.Customer{Name: "Aye Chan", Phone: "0911111111"}
	require.NoError(t, db.Create(&customer).Error)

	return item, option, customer
}
