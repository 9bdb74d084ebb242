package mocks

import (
	"context"

	"github.com/1mdc/discourse-follow/internal/models"

	"github.com/stretchr/testify/mock"
)

type TopicStore struct{ mock.Mock }

func (m *TopicStore) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Topic, error) {
	a := m.Called(ctx, authorIDs)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Topic), a.Error(1)
}
