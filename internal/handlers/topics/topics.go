package topics

import (
	"net/http"

	"github.com/1mdc/discourse-follow/internal/hostext"
	"github.com/1mdc/discourse-follow/internal/middleware"
	"github.com/1mdc/discourse-follow/internal/serializers"
	"github.com/1mdc/discourse-follow/internal/stores"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	Topics     stores.TopicStore
	Follows    stores.FollowStore
	Extensions *hostext.Registry
}

func NewTopicHandler(topics stores.TopicStore, follows stores.FollowStore, ext *hostext.Registry) *TopicHandler {
	return &TopicHandler{Topics: topics, Follows: follows, Extensions: ext}
}

// ListFollowing handles GET /topics/following: topics with at least one
// post authored by someone the acting user follows, newest first.
func (h *TopicHandler) ListFollowing(c *gin.Context) {
	if !h.Extensions.HasFilter("following") {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown topic list filter"})
		return
	}

	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "you must be logged in to view followed topics"})
		return
	}

	followingIDs, err := h.Follows.Following(c.Request.Context(), actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	topics, err := h.Topics.ListByAuthors(c.Request.Context(), followingIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic_list": gin.H{"topics": serializers.NewTopicSummaries(topics)},
	})
}
