package jwt

import (
	"context"
	"crypto/sha256"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prepit-kitchen/prepit/internal/models"
	"golang.org/x/crypto/hkdf"
)

const issuer = "prepit"

var (
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
)

// Claims are the session claims carried in a token.
type Claims struct {
	UserID      string                `json:"user_id"`
	UserName    string                `json:"user_name"`
	DisplayName string                `json:"display_name"`
	PrivLevel   models.PrivilegeLevel `json:"priv_level"`
	jwt.RegisteredClaims
}

// Session converts the claims back into a session.
func (c *Claims) Session() *models.Session {
	return &models.Session{
		UserID:      c.UserID,
		DisplayName: c.DisplayName,
		UserName:    c.UserName,
		PrivLevel:   c.PrivLevel,
	}
}

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	secretKey string        // configured secret
	signKey   []byte        // HMAC key derived from secretKey
	exp       time.Duration // token lifetime
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the secret the signing key is derived from.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.secretKey = secret
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a new JWT instance. Defaults: empty secret, one hour lifetime.
func New(opts ...Option) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	j.signKey = deriveKey(j.secretKey)
	return j
}

// deriveKey stretches the configured secret into a 32 byte HMAC key.
func deriveKey(secret string) []byte {
	key := make([]byte, sha256.Size)
	r := hkdf.New(sha256.New, []byte(secret), []byte(issuer), []byte("session-token"))
	if _, err := io.ReadFull(r, key); err != nil {
		// hkdf only fails after 255*32 bytes
		panic(err)
	}
	return key
}

// Generate creates a signed token for the session.
func (j *JWT) Generate(ctx context.Context, s *models.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      s.UserID,
		UserName:    s.UserName,
		DisplayName: s.DisplayName,
		PrivLevel:   s.PrivLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signKey)
}

// GetClaims parses and validates the token and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.signKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetSession validates the token and returns the session it carries.
func (j *JWT) GetSession(ctx context.Context, tokenString string) (*models.Session, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	return claims.Session(), nil
}

// Validate reports whether the token is valid.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
