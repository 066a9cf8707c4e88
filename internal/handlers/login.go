package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, userName, password string) (string, *models.Session, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// User name
	// required: true
	// default: root
	UserName string `json:"user_name"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Authenticated user
	User *models.Session `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user by name and password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, session, err := svc.Login(r.Context(), req.UserName, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token: token,
			User:  session,
		})
	}
}
