package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/models"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/store"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/util"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware validates the bearer token and puts the current user
// into the gin context. Only access tokens are accepted here; refresh
// tokens are exchanged at the refresh endpoint.
func AuthMiddleware(jwtSecret string, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// query parameter ?token=xxx, for download links that cannot set headers
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired token")
			c.Abort()
			return
		}
		if claims.TokenType != util.TokenAccess {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "access token required")
			c.Abort()
			return
		}

		user, err := users.ByID(claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "user not found")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load user")
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
