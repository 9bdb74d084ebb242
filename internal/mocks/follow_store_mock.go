package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type FollowStore struct{ mock.Mock }

func (m *FollowStore) Following(ctx context.Context, userID uint) ([]uint, error) {
	a := m.Called(ctx, userID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]uint), a.Error(1)
}

func (m *FollowStore) Followers(ctx context.Context, userID uint) ([]uint, error) {
	a := m.Called(ctx, userID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]uint), a.Error(1)
}

func (m *FollowStore) SetFollow(ctx context.Context, targetID, actorID uint, follow bool) (bool, error) {
	a := m.Called(ctx, targetID, actorID, follow)
	return a.Bool(0), a.Error(1)
}
