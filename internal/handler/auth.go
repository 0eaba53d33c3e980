package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sosdefesa/admin/internal/auth"
	"github.com/sosdefesa/admin/internal/store"
)

type AuthHandler struct {
	store     *store.Store
	jwtSecret string
}

func NewAuthHandler(st *store.Store, jwtSecret string) *AuthHandler {
	return &AuthHandler{store: st, jwtSecret: jwtSecret}
}

// Login exchanges form-encoded credentials for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	account, ok := h.store.Authenticate(username, password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateAccessToken(account.ID, account.Name, account.Admin, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// Me returns the identity behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	account, ok := h.store.Account(c.GetInt64("userID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    account.ID,
		"nome":  account.Name,
		"admin": account.Admin,
	})
}

// ListUsers returns the roster consumed by the dashboard avatar row.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Users())
}
