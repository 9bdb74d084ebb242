package mocks

import (
	"time"

	"github.com/1mdc/discourse-follow/internal/token"

	"github.com/stretchr/testify/mock"
)

type TokenService struct{ mock.Mock }

func (m *TokenService) GenerateAccessToken(userID uint, ttl time.Duration) (string, error) {
	args := m.Called(userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenService) ParseAccessToken(raw string) (*token.Claims, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Claims), args.Error(1)
}
