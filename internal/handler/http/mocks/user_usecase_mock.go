package mocks

import (
	"context"
	"errors"

	"github.com/learnaray/learnaray/internal/domain/entity"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailActivate       bool
	ShouldFailLogin          bool
	ShouldFailSocialAuth     bool
	ShouldFailLogout         bool
	ShouldFailRefresh        bool
	ShouldFailGetUserInfo    bool
	ShouldFailUpdateInfo     bool
	ShouldFailUpdatePassword bool
	ShouldFailUpdateAvatar   bool
	ShouldFailGetAllUsers    bool
	ShouldFailUpdateRole     bool
	ShouldFailDeleteUser     bool

	// Error returned on failure; defaults to a generic error.
	FailErr error

	// Return values
	MockUser            entity.User
	MockActivationToken string
	MockAccessToken     string
	MockRefreshToken    string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
			Role:  entity.UserRoleUser,
		},
		MockActivationToken: "mock_activation_token",
		MockAccessToken:     "mock_access_token",
		MockRefreshToken:    "mock_refresh_token",
	}
}

func (m *MockUserUsecase) fail(fallback string) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	return errors.New(fallback)
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
	if m.ShouldFailRegister {
		return "", m.fail("registration failed")
	}
	return m.MockActivationToken, nil
}

func (m *MockUserUsecase) Activate(ctx context.Context, activationToken, activationCode string) (*entity.User, error) {
	if m.ShouldFailActivate {
		return nil, m.fail("activation failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", m.fail("login failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) SocialAuth(ctx context.Context, name, email, avatarURL string) (*entity.User, string, string, error) {
	if m.ShouldFailSocialAuth {
		return nil, "", "", m.fail("social auth failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, userID string) error {
	if m.ShouldFailLogout {
		return m.fail("logout failed")
	}
	return nil
}

func (m *MockUserUsecase) RefreshSession(ctx context.Context, refreshToken string) (*entity.User, string, string, error) {
	if m.ShouldFailRefresh {
		return nil, "", "", m.fail("refresh failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserInfo(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetUserInfo {
		return nil, m.fail("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateUserInfo(ctx context.Context, userID, name, email string) (*entity.User, error) {
	if m.ShouldFailUpdateInfo {
		return nil, m.fail("update failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (*entity.User, error) {
	if m.ShouldFailUpdatePassword {
		return nil, m.fail("password update failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateAvatar(ctx context.Context, userID, imageData string) (*entity.User, error) {
	if m.ShouldFailUpdateAvatar {
		return nil, m.fail("avatar update failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailGetAllUsers {
		return nil, m.fail("listing users failed")
	}
	return []entity.User{m.MockUser}, nil
}

func (m *MockUserUsecase) UpdateUserRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error) {
	if m.ShouldFailUpdateRole {
		return nil, m.fail("role update failed")
	}
	user := m.MockUser
	user.Role = role
	return &user, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteUser {
		return m.fail("delete failed")
	}
	return nil
}
