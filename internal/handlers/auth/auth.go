package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1mdc/discourse-follow/internal/middleware"
	"github.com/1mdc/discourse-follow/internal/models"
	"github.com/1mdc/discourse-follow/internal/serializers"
	"github.com/1mdc/discourse-follow/internal/stores"
	"github.com/1mdc/discourse-follow/internal/token"
	"github.com/1mdc/discourse-follow/internal/user"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	UserStore    stores.UserStore
	Hasher       user.PasswordHasher
	TokenService token.TokenService
}

const AccessTokenExpiration time.Duration = 24 * time.Hour

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(
	userStore stores.UserStore,
	hasher user.PasswordHasher,
	tokenService token.TokenService,
) *AuthHandler {
	return &AuthHandler{
		UserStore:    userStore,
		Hasher:       hasher,
		TokenService: tokenService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// validate username length
	if len(req.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is less than three characters."})
		return
	}

	if _, err := h.UserStore.FindByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	hashedPassword, err := h.Hasher.Hash([]byte(req.Password))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error hashing password"})
		return
	}

	u := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
	}

	if err := h.UserStore.CreateUser(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.UserStore.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if err := h.Hasher.Compare([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	tokenString, err := h.TokenService.GenerateAccessToken(u.ID, AccessTokenExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  serializers.NewBasicUser(u),
	})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	u, err := h.UserStore.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, serializers.NewBasicUser(u))
}
