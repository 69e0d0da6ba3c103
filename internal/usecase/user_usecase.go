package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo     contract.IUserRepository
	sessionCache contract.ISessionCache
	tokenService TokenService
	hasher       contract.IHasher
	mail         contract.IMailDispatcher
	images       contract.IImageService
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
	validator    usecasecontract.IValidator
	uuidGen      contract.IUUIDGenerator
	randomGen    contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	sessionCache contract.ISessionCache,
	tokenService TokenService,
	hasher contract.IHasher,
	mail contract.IMailDispatcher,
	images contract.IImageService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
	randomGen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		sessionCache: sessionCache,
		tokenService: tokenService,
		hasher:       hasher,
		mail:         mail,
		images:       images,
		logger:       logger,
		config:       cfg,
		validator:    validator,
		uuidGen:      uuidGen,
		randomGen:    randomGen,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register validates signup data and hands back an activation token. The user
// is not persisted here; that happens in Activate once the emailed code is
// confirmed.
func (uc *UserUsecase) Register(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
	if password != confirmPassword {
		return "", fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return "", fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return "", ErrInternal
	}
	if existing != nil {
		return "", fmt.Errorf("%w: email already exists", ErrConflict)
	}

	code, err := uc.randomGen.GenerateActivationCode()
	if err != nil {
		uc.logger.Errorf("failed to generate activation code: %v", err)
		return "", ErrInternal
	}

	pending := entity.PendingUser{Name: name, Email: email, Password: password}
	token, err := uc.tokenService.GenerateActivationToken(pending, code)
	if err != nil {
		uc.logger.Errorf("failed to sign activation token: %v", err)
		return "", ErrInternal
	}

	job := contract.MailJob{
		To:       email,
		Subject:  "Learnaray - Let's complete your account setup",
		Template: "activation-mail",
		Data:     map[string]any{"name": name, "activation_code": code},
	}
	if err := uc.mail.Enqueue(ctx, job); err != nil {
		uc.logger.Errorf("failed to enqueue activation mail for %s: %v", email, err)
		return "", fmt.Errorf("%w: could not send activation mail", ErrInternal)
	}

	return token, nil
}

// Activate verifies the activation token and code, then persists the user for
// the first time.
func (uc *UserUsecase) Activate(ctx context.Context, activationToken, activationCode string) (*entity.User, error) {
	pending, code, err := uc.tokenService.ParseActivationToken(activationToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid activation token", ErrUnauthorized)
	}
	if code != activationCode {
		return nil, fmt.Errorf("%w: invalid activation code", ErrValidation)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, pending.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	hash, err := uc.hasher.HashPassword(pending.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, ErrInternal
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGen.NewUUID(),
		Name:         pending.Name,
		Email:        pending.Email,
		PasswordHash: hash,
		Role:         entity.DefaultRole(),
		Courses:      []entity.CourseAccess{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, ErrInternal
	}

	welcome := contract.MailJob{
		To:       user.Email,
		Subject:  "Welcome to Learnaray",
		Template: "welcome-mail",
		Data:     map[string]any{"name": user.Name},
	}
	if err := uc.mail.Enqueue(ctx, welcome); err != nil {
		// the account exists either way; a lost welcome mail is not fatal
		uc.logger.Warnf("failed to enqueue welcome mail for %s: %v", user.Email, err)
	}

	return user.Sanitized(), nil
}

// Login checks credentials, issues a token pair and writes the session cache
// entry that refresh-token exchanges will validate against.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if email == "" || password == "" {
		return nil, "", "", fmt.Errorf("%w: please enter your email and password", ErrValidation)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", ErrInternal
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	return uc.issueSession(ctx, user)
}

// SocialAuth finds or creates a user by email and issues a token pair.
func (uc *UserUsecase) SocialAuth(ctx context.Context, name, email, avatarURL string) (*entity.User, string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		uc.logger.Errorf("failed to retrieve user for social auth: %v", err)
		return nil, "", "", ErrInternal
	}

	if user == nil {
		now := time.Now()
		user = &entity.User{
			ID:        uc.uuidGen.NewUUID(),
			Name:      name,
			Email:     email,
			Role:      entity.DefaultRole(),
			Courses:   []entity.CourseAccess{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if avatarURL != "" {
			user.Avatar = &entity.Avatar{URL: avatarURL}
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from social auth: %v", err)
			return nil, "", "", ErrInternal
		}
	}

	return uc.issueSession(ctx, user)
}

// issueSession mints an access and refresh token for the user and overwrites
// the session cache entry with the sanitized snapshot.
func (uc *UserUsecase) issueSession(ctx context.Context, user *entity.User) (*entity.User, string, string, error) {
	accessToken, err := uc.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", ErrInternal
	}
	refreshToken, err := uc.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", ErrInternal
	}

	clean := user.Sanitized()
	if err := uc.sessionCache.SetSession(ctx, clean); err != nil {
		uc.logger.Errorf("failed to write session for user %s: %v", user.ID, err)
		return nil, "", "", ErrInternal
	}

	return clean, accessToken, refreshToken, nil
}

// Logout deletes the session cache entry for the current user. The cookies are
// cleared by the handler.
func (uc *UserUsecase) Logout(ctx context.Context, userID string) error {
	if err := uc.sessionCache.DeleteSession(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete session for user %s: %v", userID, err)
		return ErrInternal
	}
	return nil
}

// RefreshSession exchanges a valid refresh token for a fresh pair. The session
// cache entry must still exist; its absence means the session was revoked and
// the exchange fails as unauthorized. The entry is overwritten with a fresh
// TTL, so N successive refreshes leave exactly one entry.
func (uc *UserUsecase) RefreshSession(ctx context.Context, refreshToken string) (*entity.User, string, string, error) {
	userID, err := uc.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: could not refresh token", ErrUnauthorized)
	}

	user, found, err := uc.sessionCache.GetSession(ctx, userID)
	if err != nil {
		uc.logger.Errorf("failed to read session for user %s: %v", userID, err)
		return nil, "", "", ErrInternal
	}
	if !found {
		return nil, "", "", fmt.Errorf("%w: please login to access this resource", ErrUnauthorized)
	}

	return uc.issueSession(ctx, user)
}

// GetUserInfo serves the current user, session cache first, store on a miss.
func (uc *UserUsecase) GetUserInfo(ctx context.Context, userID string) (*entity.User, error) {
	if cached, found, err := uc.sessionCache.GetSession(ctx, userID); err == nil && found {
		return cached, nil
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s: %v", userID, err)
		return nil, ErrInternal
	}
	return user.Sanitized(), nil
}

// UpdateUserInfo updates name/email and rewrites the session snapshot with the
// standard session TTL.
func (uc *UserUsecase) UpdateUserInfo(ctx context.Context, userID, name, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s for update: %v", userID, err)
		return nil, ErrInternal
	}

	if email != "" && email != user.Email {
		existing, err := uc.userRepo.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, ErrNotFound) {
			uc.logger.Errorf("failed to check for existing email during update: %v", err)
			return nil, ErrInternal
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update user %s: %v", userID, err)
		return nil, ErrInternal
	}

	clean := updated.Sanitized()
	if err := uc.sessionCache.SetSession(ctx, clean); err != nil {
		uc.logger.Warnf("failed to refresh session for user %s: %v", userID, err)
	}
	return clean, nil
}

// UpdatePassword verifies the old password and stores a new hash.
func (uc *UserUsecase) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (*entity.User, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, fmt.Errorf("%w: please enter old and new password", ErrValidation)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s for password change: %v", userID, err)
		return nil, ErrInternal
	}
	if user.PasswordHash == "" {
		// social-auth accounts have no password to change
		return nil, fmt.Errorf("%w: invalid user", ErrValidation)
	}
	if err := uc.hasher.ComparePasswordHash(oldPassword, user.PasswordHash); err != nil {
		return nil, fmt.Errorf("%w: invalid old password", ErrUnauthorized)
	}
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash new password: %v", err)
		return nil, ErrInternal
	}
	if err := uc.userRepo.UpdateUserPassword(ctx, userID, hash); err != nil {
		uc.logger.Errorf("failed to store new password for user %s: %v", userID, err)
		return nil, ErrInternal
	}

	return user.Sanitized(), nil
}

// UpdateAvatar replaces the hosted avatar image and rewrites the session
// snapshot.
func (uc *UserUsecase) UpdateAvatar(ctx context.Context, userID, imageData string) (*entity.User, error) {
	if imageData == "" {
		return nil, fmt.Errorf("%w: avatar image is required", ErrValidation)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s for avatar update: %v", userID, err)
		return nil, ErrInternal
	}

	if user.Avatar != nil && user.Avatar.PublicID != "" {
		if err := uc.images.Destroy(ctx, user.Avatar.PublicID); err != nil {
			uc.logger.Warnf("failed to destroy old avatar %s: %v", user.Avatar.PublicID, err)
		}
	}
	uploaded, err := uc.images.Upload(ctx, imageData, "avatars")
	if err != nil {
		uc.logger.Errorf("failed to upload avatar for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: avatar upload failed", ErrInternal)
	}
	user.Avatar = &entity.Avatar{PublicID: uploaded.PublicID, URL: uploaded.URL}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update user %s: %v", userID, err)
		return nil, ErrInternal
	}

	clean := updated.Sanitized()
	if err := uc.sessionCache.SetSession(ctx, clean); err != nil {
		uc.logger.Warnf("failed to refresh session for user %s: %v", userID, err)
	}
	return clean, nil
}

// GetAllUsers returns every user, newest first. Admin only (enforced at the
// router).
func (uc *UserUsecase) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.GetAllUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateUserRole changes the role of the user with the given email.
func (uc *UserUsecase) UpdateUserRole(ctx context.Context, email string, role entity.UserRole) (*entity.User, error) {
	if role != entity.UserRoleAdmin && role != entity.UserRoleUser {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user by email for role change: %v", err)
		return nil, ErrInternal
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update role for user %s: %v", user.ID, err)
		return nil, ErrInternal
	}
	return updated.Sanitized(), nil
}

// DeleteUser removes the user document and its cache entry, in that order,
// before the caller responds. Owned courses are not cascaded.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: user not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s for deletion: %v", userID, err)
		return ErrInternal
	}

	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return ErrInternal
	}
	if err := uc.sessionCache.DeleteSession(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete session for user %s: %v", userID, err)
		return ErrInternal
	}
	return nil
}
