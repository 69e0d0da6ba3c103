package usecasecontract

import (
	"context"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	// Register validates signup data and returns an activation token; nothing
	// is persisted until Activate succeeds with the matching code.
	Register(ctx context.Context, name, email, password, confirmPassword string) (string, error)
	// Activate verifies the activation token and code, then persists the user
	// for the first time.
	Activate(ctx context.Context, activationToken, activationCode string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	// SocialAuth finds or creates a user by email and issues a token pair.
	SocialAuth(ctx context.Context, name, email, avatarURL string) (*entity.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	// RefreshSession exchanges a valid refresh token for a new token pair,
	// rewriting the session cache entry with a fresh TTL.
	RefreshSession(ctx context.Context, refreshToken string) (*entity.User, string, string, error)
	GetUserInfo(ctx context.Context, userID string) (*entity.User, error)
	UpdateUserInfo(ctx context.Context, userID, name, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID, imageData string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	UpdateUserRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
