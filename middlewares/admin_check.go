package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phonemyintzaw/teashop-app/utils"
)

// AdminOnly menolak request yang email-nya tidak ada di allow-list.
// Cek ini jalan SEBELUM handler menyentuh database. Dipasang setelah
// AuthMiddleware (butuh "email" di context).
func AdminOnly(allowedEmails map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailInterface, exists := c.Get("email")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no email found in token"))
			c.Abort()
			return
		}

		email, ok := emailInterface.(string)
		if !ok || !allowedEmails[strings.ToLower(email)] {
			utils.RespondError(c, http.StatusForbidden,
				errors.New("unauthorized access, you are not an admin"))
			c.Abort()
			return
		}

		c.Next()
	}
}
