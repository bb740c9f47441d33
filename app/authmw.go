package app

import (
	"errors"
	"net/http"
	"strings"

	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

// AuthRequired resolves the bearer token against the token store and loads
// the current user into the context. Handlers read "userID" / "user"; the
// raw token stays available under "token" so logout can revoke it.
func AuthRequired(a *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(raw, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "Unauthenticated."})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "Unauthenticated."})
			return
		}

		t, err := a.Tokens().Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "Unauthenticated."})
			return
		}

		u, err := db.Find[models.User](c.Request.Context(), a.DB, t.UserID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				_ = a.Tokens().Delete(c.Request.Context(), token)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "Unauthenticated."})
			return
		}

		c.Set("userID", u.ID)
		c.Set("user", u)
		c.Set("token", token)
		c.Next()
	}
}
