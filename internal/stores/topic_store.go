package stores

import (
	"context"

	"github.com/1mdc/discourse-follow/internal/models"

	"gorm.io/gorm"
)

// TopicStore abstracts the topic listing the following filter needs.
type TopicStore interface {
	// ListByAuthors returns topics with at least one post authored by any
	// of the given users, newest first.
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Topic, error)
}

// GormTopicStore implements TopicStore using GORM.
type GormTopicStore struct{ DB *gorm.DB }

func (s *GormTopicStore) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Topic, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var topics []models.Topic
	err := s.DB.WithContext(ctx).
		Distinct("topics.*").
		Joins("JOIN posts ON posts.topic_id = topics.id").
		Where("posts.user_id IN ?", authorIDs).
		Order("topics.created_at DESC").
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}
