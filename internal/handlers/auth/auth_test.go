package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handlers "github.com/1mdc/discourse-follow/internal/handlers/auth"
	"github.com/1mdc/discourse-follow/internal/mocks"
	"github.com/1mdc/discourse-follow/internal/models"
	"github.com/1mdc/discourse-follow/internal/stores"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubHasher struct{}

func (stubHasher) Hash(p []byte) ([]byte, error) { return []byte("hashed-" + string(p)), nil }
func (stubHasher) Compare(_, _ []byte) error     { return nil }

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Arrange
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	body := `{"username":"newuser01","password":"SuperSecret"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req

	userStore := new(mocks.UserStore)
	userStore.On("FindByUsername", "newuser01").Return(nil, stores.ErrNotFound)
	userStore.On("CreateUser", mock.AnythingOfType("*models.User")).Return(nil)

	h := handlers.NewAuthHandler(userStore, stubHasher{}, nil)

	// Act
	h.Register(ctx)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "user registered successfully", resp["message"])

	userStore.AssertExpectations(t)
}

func TestRegisterShortUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	body := `{"username":"ab","password":"SuperSecret"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req

	h := handlers.NewAuthHandler(new(mocks.UserStore), stubHasher{}, nil)
	h.Register(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	body := `{"username":"alice","password":"SuperSecret"}`
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req

	userStore := new(mocks.UserStore)
	userStore.On("FindByUsername", "alice").Return(&models.User{ID: 1, Username: "alice", PasswordHash: "h"}, nil)

	tokenService := new(mocks.TokenService)
	tokenService.On("GenerateAccessToken", uint(1), handlers.AccessTokenExpiration).Return("signed-token", nil)

	h := handlers.NewAuthHandler(userStore, stubHasher{}, tokenService)
	h.Login(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "signed-token", resp["token"])

	tokenService.AssertExpectations(t)
}
