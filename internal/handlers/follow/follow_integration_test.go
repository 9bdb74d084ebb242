package follow_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/1mdc/discourse-follow/internal/handlers/follow"
	"github.com/1mdc/discourse-follow/internal/middleware"
	"github.com/1mdc/discourse-follow/internal/models"
	"github.com/1mdc/discourse-follow/internal/stores"
	"github.com/1mdc/discourse-follow/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	router *gin.Engine
	tokens *token.JWTService
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserCustomField{}))

	userStore := &stores.GormUserStore{DB: db}
	followStore := &stores.GormFollowStore{DB: db}
	tokens := &token.JWTService{Secret: []byte("test-secret")}
	h := follow.NewFollowHandler(userStore, followStore)

	r := gin.New()
	for _, root := range []string{"/users", "/u"} {
		g := r.Group(root)
		g.Use(middleware.OptionalJWTAuth(tokens))
		g.GET("/:username/follow", h.Show)
		g.GET("/:username/follow/:type", h.List)
	}
	followGroup := r.Group("/follow")
	followGroup.Use(middleware.OptionalJWTAuth(tokens))
	followGroup.PUT("/:username", h.Update)

	return &testApp{router: r, tokens: tokens, db: db}
}

func (a *testApp) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, a.db.Create(u).Error)
	return u
}

func (a *testApp) do(t *testing.T, method, path, body string, as *models.User) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	if as != nil {
		signed, err := a.tokens.GenerateAccessToken(as.ID, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+signed)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// The round trip from the feature's readme: alice follows bob, then
// unfollows, and the responses report the observed state each time.
func TestFollowUnfollowRoundTrip(t *testing.T) {
	app := newTestApp(t)
	alice := app.createUser(t, "alice")
	app.createUser(t, "bob")

	w := app.do(t, http.MethodPut, "/follow/bob", `{"follow":true}`, alice)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["following"])

	w = app.do(t, http.MethodGet, "/users/bob/follow/followers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var followers []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0]["username"])

	w = app.do(t, http.MethodGet, "/u/alice/follow/following", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var following []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0]["username"])

	w = app.do(t, http.MethodPut, "/follow/bob", `{"follow":false}`, alice)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, false, resp["following"])

	w = app.do(t, http.MethodGet, "/users/bob/follow/followers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &followers))
	assert.Empty(t, followers)
}

func TestListSkipsDeletedMembers(t *testing.T) {
	app := newTestApp(t)
	alice := app.createUser(t, "alice")
	bob := app.createUser(t, "bob")
	app.createUser(t, "carol")

	w := app.do(t, http.MethodPut, "/follow/bob", `{"follow":true}`, alice)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodPut, "/follow/carol", `{"follow":true}`, alice)
	require.Equal(t, http.StatusOK, w.Code)

	// bob leaves; his id stays in alice's stored list
	require.NoError(t, app.db.Delete(bob).Error)

	w = app.do(t, http.MethodGet, "/users/alice/follow/following", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var following []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
	require.Len(t, following, 1)
	assert.Equal(t, "carol", following[0]["username"])
}

func TestListIsCaseInsensitive(t *testing.T) {
	app := newTestApp(t)
	alice := app.createUser(t, "Alice")
	app.createUser(t, "bob")

	w := app.do(t, http.MethodPut, "/follow/bob", `{"follow":true}`, alice)
	require.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{"/users/alice/follow/following", "/users/Alice/follow/following"} {
		w = app.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		var following []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
		assert.Len(t, following, 1, path)
	}
}

func TestUpdateWithQueryParam(t *testing.T) {
	app := newTestApp(t)
	alice := app.createUser(t, "alice")
	app.createUser(t, "bob")

	w := app.do(t, http.MethodPut, "/follow/bob?follow=true", "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["following"])
}

func TestAnonymousUpdateRejected(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "bob")

	w := app.do(t, http.MethodPut, "/follow/bob", `{"follow":true}`, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
