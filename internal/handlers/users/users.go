package users

import (
	"errors"
	"net/http"

	"github.com/1mdc/discourse-follow/internal/middleware"
	"github.com/1mdc/discourse-follow/internal/serializers"
	"github.com/1mdc/discourse-follow/internal/settings"
	"github.com/1mdc/discourse-follow/internal/stores"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users    stores.UserStore
	Follows  stores.FollowStore
	Settings *settings.SiteSettings
}

func NewUserHandler(users stores.UserStore, follows stores.FollowStore, st *settings.SiteSettings) *UserHandler {
	return &UserHandler{Users: users, Follows: follows, Settings: st}
}

// Show handles GET /{users|u}/:username and serializes the profile with
// the follow fields: following (viewing user only) and the follower and
// following totals (behind the statistics site setting).
func (h *UserHandler) Show(c *gin.Context) {
	u, err := h.Users.FindByUsernameInsensitive(c.Param("username"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	followers, err := h.Follows.Followers(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	following, err := h.Follows.Following(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	var viewerID *uint
	if id, ok := middleware.CurrentUserID(c); ok {
		viewerID = &id
	}

	c.JSON(http.StatusOK, gin.H{
		"user": serializers.NewUserProfile(u, followers, following, viewerID, h.Settings),
	})
}
