package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/config"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/middleware"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/models"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/store"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// AuthHandler serves signup, login and token refresh.
type AuthHandler struct {
	Users      *store.UserStore
	JWTSecret  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewAuthHandler(users *store.UserStore, cfg config.JWTConfig) *AuthHandler {
	accessMinutes := cfg.AccessExpireMinutes
	if accessMinutes <= 0 {
		accessMinutes = 30
	}
	refreshHours := cfg.RefreshExpireHours
	if refreshHours <= 0 {
		refreshHours = 7 * 24
	}
	return &AuthHandler{
		Users:      users,
		JWTSecret:  cfg.Secret,
		Issuer:     cfg.Issuer,
		AccessTTL:  time.Duration(accessMinutes) * time.Minute,
		RefreshTTL: time.Duration(refreshHours) * time.Hour,
	}
}

// ---------- signup ----------

type signupReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.FieldErrors(c, util.BindingErrors(err))
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	errs := make(map[string]string)
	if !usernameRe.MatchString(req.Username) {
		errs["username"] = "Username must be 3-20 characters of letters, digits or underscore."
	}
	if !isStrongPassword(req.Password) {
		errs["password"] = "Password must be 8-32 characters with upper, lower and digit."
	}
	if len(errs) > 0 {
		util.FieldErrors(c, errs)
		return
	}

	taken, err := h.Users.UsernameTaken(req.Username)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check username")
		return
	}
	if taken {
		util.FieldErrors(c, map[string]string{"username": "A user with that username already exists."})
		return
	}

	const bcryptCost = 12
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := h.Users.Create(&user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// isStrongPassword checks 8-32 chars with upper, lower and digit.
func isStrongPassword(pwd string) bool {
	if len(pwd) < 8 || len(pwd) > 32 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, ch := range pwd {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// ---------- login ----------

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an access/refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.FieldErrors(c, util.BindingErrors(err))
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	user, err := h.Users.ByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "incorrect username or password")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to look up user")
		}
		return
	}

	now := time.Now()

	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account temporarily locked, try again later")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		// five consecutive failures lock the account for ten minutes
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= 5 {
			lockUntil := now.Add(10 * time.Minute)
			user.LockedUntil = &lockUntil
			user.FailedLoginAttempts = 0
		}
		_ = h.Users.Save(user)
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "incorrect username or password")
		return
	}

	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginIP = c.ClientIP()
	user.LastLoginAt = &now
	_ = h.Users.Save(user)

	access, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, util.TokenAccess, h.AccessTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to generate token")
		return
	}
	refresh, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, util.TokenRefresh, h.RefreshTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  access,
		"refresh": refresh,
	})
}

// ---------- refresh ----------

type refreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Refresh exchanges a valid refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.FieldErrors(c, util.BindingErrors(err))
		return
	}

	claims, err := util.ParseToken(h.JWTSecret, req.Refresh)
	if err != nil || claims.TokenType != util.TokenRefresh {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired refresh token")
		return
	}

	if _, err := h.Users.ByID(claims.UserID); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "user not found")
		return
	}

	access, err := util.GenerateToken(h.JWTSecret, h.Issuer, claims.UserID, util.TokenAccess, h.AccessTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// ---------- logout ----------

// Logout acknowledges a client-side logout. Tokens are stateless and
// remain valid until expiry; the client is expected to discard them.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out on client"})
}

// GetMe returns the current authenticated user.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"created_at": user.CreatedAt,
		},
	})
}
