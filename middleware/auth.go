package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"charter-backend/config"
	"charter-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAdmin guards the back-office routes. A single "admin" role exists:
// any valid, unexpired session token grants full access.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		var session models.AdminSession
		err := config.DB.Preload("Admin").
			Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
			First(&session).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return
		}

		c.Set("adminID", session.AdminID)
		c.Set("admin", session.Admin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
