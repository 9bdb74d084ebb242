package follow

import (
	"errors"
	"net/http"
	"strings"

	"github.com/1mdc/discourse-follow/internal/middleware"
	"github.com/1mdc/discourse-follow/internal/serializers"
	"github.com/1mdc/discourse-follow/internal/stores"

	"github.com/gin-gonic/gin"
)

var errFollowRequired = errors.New("follow parameter is required")

type FollowHandler struct {
	Users   stores.UserStore
	Follows stores.FollowStore
}

// NewFollowHandler constructs a FollowHandler.
func NewFollowHandler(users stores.UserStore, follows stores.FollowStore) *FollowHandler {
	return &FollowHandler{Users: users, Follows: follows}
}

// Show handles GET /{users|u}/:username/follow. The page body is rendered
// client-side; the server only acknowledges that the user exists.
func (h *FollowHandler) Show(c *gin.Context) {
	if _, err := h.Users.FindByUsernameInsensitive(c.Param("username")); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.Status(http.StatusOK)
}

// Update handles PUT /follow/:username. It creates or removes the follow
// edge from the acting user to the named target and reports the observed
// follow state after the write.
func (h *FollowHandler) Update(c *gin.Context) {
	follow, err := followParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errFollowRequired.Error()})
		return
	}

	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "you must be logged in to follow users"})
		return
	}
	actor, err := h.Users.GetByID(actorID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "you must be logged in to follow users"})
		return
	}

	username := c.Param("username")
	if actor.Username == username {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you cannot follow yourself"})
		return
	}

	target, err := h.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			// Soft failure, not an error response: the client renders a
			// "no such user" message from the payload.
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	following, err := h.Follows.SetFollow(c.Request.Context(), target.ID, actor.ID, follow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update follow state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "following": following})
}

// List handles GET /{users|u}/:username/follow/:type where type is
// "following" or "followers". Usernames match case-insensitively. Members
// whose user row no longer exists are skipped.
func (h *FollowHandler) List(c *gin.Context) {
	kind := c.Param("type")
	if kind != "following" && kind != "followers" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters"})
		return
	}

	user, err := h.Users.FindByUsernameInsensitive(c.Param("username"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	var ids []uint
	if kind == "following" {
		ids, err = h.Follows.Following(c.Request.Context(), user.ID)
	} else {
		ids, err = h.Follows.Followers(c.Request.Context(), user.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	users, err := h.Users.GetByIDs(ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, serializers.NewBasicUsers(users))
}

// followParam reads the boolean-like follow parameter from the query
// string, form body, or JSON body.
func followParam(c *gin.Context) (bool, error) {
	if raw, ok := c.GetQuery("follow"); ok {
		return castBool(raw)
	}
	if raw, ok := c.GetPostForm("follow"); ok {
		return castBool(raw)
	}
	var body struct {
		Follow any `json:"follow"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return false, errFollowRequired
	}
	switch v := body.Follow.(type) {
	case bool:
		return v, nil
	case string:
		return castBool(v)
	default:
		return false, errFollowRequired
	}
}

func castBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "t", "1", "on", "yes":
		return true, nil
	case "false", "f", "0", "off", "no":
		return false, nil
	}
	return false, errFollowRequired
}
