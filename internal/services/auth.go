package services

import (
	"context"
	"errors"
	"strings"

	"github.com/prepit-kitchen/prepit/internal/credentials"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

var ErrInvalidCredentials = errors.New("invalid username or password")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID string) (*models.UserDB, error)
	GetByUserName(ctx context.Context, userName string) (*models.UserDB, error)
	List(ctx context.Context, cursor string, limit int) (models.Page[models.UserDB], error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, userID string, displayName, salt, hash *string) error
	Delete(ctx context.Context, userID string) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, s *models.Session) (string, error)
}

// AuthService handles login.
type AuthService struct {
	reader UserReader
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates a user and returns a session token with the session it encodes.
// Unknown users, malformed stored credentials and wrong passwords all yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, userName, password string) (string, *models.Session, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := svc.reader.GetByUserName(ctx, userName)
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Errorw("user does not exist", "user_name", userName)
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if !credentials.Verify(password, user.PasswordSalt, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "user_name", userName)
		return "", nil, ErrInvalidCredentials
	}

	level, err := models.ParsePrivilegeLevel(user.PrivLevel)
	if err != nil {
		logger.Log.Errorw("stored privilege level is invalid", "user_name", userName, "priv_level", user.PrivLevel)
		return "", nil, ErrInvalidCredentials
	}

	session := &models.Session{
		UserID:      user.UserID,
		DisplayName: user.DisplayName,
		UserName:    user.UserName,
		PrivLevel:   level,
	}

	token, err := svc.jwt.Generate(ctx, session)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, session, nil
}
