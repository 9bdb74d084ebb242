package token

import "time"

type TokenService interface {
	GenerateAccessToken(userID uint, ttl time.Duration) (string, error)
	ParseAccessToken(raw string) (*Claims, error)
}
