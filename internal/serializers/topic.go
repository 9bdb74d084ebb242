package serializers

import (
	"time"

	"github.com/1mdc/discourse-follow/internal/models"
)

// TopicSummary is the listing shape for topics.
type TopicSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTopicSummaries(topics []models.Topic) []TopicSummary {
	out := make([]TopicSummary, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicSummary{
			ID:        t.ID,
			Title:     t.Title,
			UserID:    t.UserID,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}
