package usecase

import (
	"github.com/learnaray/learnaray/internal/domain/entity"
)

// TokenService defines the interface for the three token kinds: the signup
// activation token, the short-lived access token and the long-lived refresh
// token. Access and refresh payloads carry only the user id.
type TokenService interface {
	GenerateActivationToken(pending entity.PendingUser, code string) (string, error)
	ParseActivationToken(token string) (*entity.PendingUser, string, error)
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseAccessToken(token string) (string, error)
	ParseRefreshToken(token string) (string, error)
}
