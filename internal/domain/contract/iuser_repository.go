package contract

import (
	"context"
	"time"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetAllUsers returns every user, newest first, passwords included
	// (callers sanitize before responding).
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
	// CountCreatedBetween counts users created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
