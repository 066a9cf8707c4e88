package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/prepit-kitchen/prepit/internal/credentials"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
)

var (
	ErrUserAlreadyExists  = errors.New("user name already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRootUserProtected  = errors.New("the root user cannot be deleted")
	ErrEmptyUserName      = errors.New("user name must not be empty")
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrRootNotProvisioned = errors.New("root user does not exist")
)

// rootDisplayName is the display name given to a bootstrapped root account.
const rootDisplayName = "Root"

// UserService manages user accounts.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create validates and stores a new user with a freshly salted credential.
func (svc *UserService) Create(ctx context.Context, displayName, userName, privLevel, password string) (*models.UserDB, error) {
	level, err := models.ParsePrivilegeLevel(privLevel)
	if err != nil {
		return nil, err
	}

	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, ErrEmptyUserName
	}
	if credentials.Normalize(password) == "" {
		return nil, ErrEmptyPassword
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = userName
	}

	cred := credentials.CreateCredential(password)
	user := &models.UserDB{
		DisplayName:  displayName,
		UserName:     userName,
		PrivLevel:    string(level),
		PasswordSalt: cred.Salt,
		PasswordHash: cred.Hash,
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "user_name", userName, "err", err)
		return nil, err
	}

	return user, nil
}

// Get returns a single user.
func (svc *UserService) Get(ctx context.Context, userID string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	return user, nil
}

// List returns every user ordered by user name.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := repositories.CollectAll(ctx, func(ctx context.Context, cursor string) (models.Page[models.UserDB], error) {
		return svc.reader.List(ctx, cursor, repositories.DefaultPageSize)
	})
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].UserName < users[j].UserName
	})
	return users, nil
}

// UpdateProfile changes a user's display name and, when password is not nil,
// rotates the stored salt and hash together.
func (svc *UserService) UpdateProfile(ctx context.Context, userID string, displayName, password *string) error {
	if displayName != nil {
		trimmed := strings.TrimSpace(*displayName)
		if trimmed == "" {
			displayName = nil
		} else {
			displayName = &trimmed
		}
	}

	var salt, hash *string
	if password != nil {
		if credentials.Normalize(*password) == "" {
			return ErrEmptyPassword
		}
		cred := credentials.CreateCredential(*password)
		salt, hash = &cred.Salt, &cred.Hash
	}

	err := svc.writer.Update(ctx, userID, displayName, salt, hash)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// Delete removes a user. The root account is refused.
func (svc *UserService) Delete(ctx context.Context, userID string) error {
	user, err := svc.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsRoot() {
		logger.Log.Warnw("refusing to delete root user", "user_id", userID)
		return ErrRootUserProtected
	}

	err = svc.writer.Delete(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// ResetRootPassword sets a new password on the root account.
func (svc *UserService) ResetRootPassword(ctx context.Context, password string) error {
	root, err := svc.reader.GetByUserName(ctx, models.RootUserName)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrRootNotProvisioned
	}
	if err != nil {
		logger.Log.Errorw("failed to get root user", "err", err)
		return err
	}
	return svc.UpdateProfile(ctx, root.UserID, nil, &password)
}

// EnsureRoot creates the root admin account when it does not exist yet.
// It reports whether an account was created.
func (svc *UserService) EnsureRoot(ctx context.Context, password string) (bool, error) {
	_, err := svc.reader.GetByUserName(ctx, models.RootUserName)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return false, err
	}

	if _, err := svc.Create(ctx, rootDisplayName, models.RootUserName, string(models.PrivilegeAdmin), password); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	logger.Log.Infow("root user created", "user_name", models.RootUserName)
	return true, nil
}
