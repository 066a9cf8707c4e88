package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserCreator creates user accounts.
type UserCreator interface {
	Create(ctx context.Context, displayName, userName, privLevel, password string) (*models.UserDB, error)
}

// UserLister lists user accounts.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserDeleter deletes user accounts.
type UserDeleter interface {
	Delete(ctx context.Context, userID string) error
}

// RootPasswordResetter sets a new root password.
type RootPasswordResetter interface {
	ResetRootPassword(ctx context.Context, password string) error
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// default: Line Cook
	DisplayName string `json:"display_name"`
	// required: true
	// default: cook1
	UserName string `json:"user_name"`
	// required: true
	// enum: Admin,User,Viewer
	PrivLevel string `json:"priv_level"`
	// required: true
	Password string `json:"password"`
}

// ResetRootPasswordRequest carries the new root password
// swagger:model ResetRootPasswordRequest
type ResetRootPasswordRequest struct {
	// required: true
	Password string `json:"password"`
}

// NewListUsersHandler returns all users ordered by user name.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewCreateUserHandler creates a user account.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "New user"
// @Success 201 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "User name already exists"
// @Router /users [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Create(r.Context(), req.DisplayName, req.UserName, req.PrivLevel, req.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, user)
		case errors.Is(err, models.ErrUnknownPrivilegeLevel),
			errors.Is(err, services.ErrEmptyUserName),
			errors.Is(err, services.ErrEmptyPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			logger.Log.Errorw("failed to create user", "user_name", req.UserName, "error", err)
			writeInternalError(w)
		}
	}
}

// NewUpdateUserHandler changes another user's display name or password.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body handlers.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateProfile(w, r, svc, chi.URLParam(r, "id"))
	}
}

// NewDeleteUserHandler deletes a user. The root account cannot be deleted.
// @Summary Delete user
// @Tags users
// @Param id path string true "User id"
// @Success 204
// @Failure 403 {object} handlers.ErrorResponse "Root user is protected"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), userID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrRootUserProtected):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
			writeInternalError(w)
		}
	}
}

// NewResetRootPasswordHandler sets a new password on the root account.
// @Summary Reset root password
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ResetRootPasswordRequest true "New password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Root user does not exist"
// @Router /users/root/password [post]
// @Security BearerAuth
func NewResetRootPasswordHandler(svc RootPasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRootPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.ResetRootPassword(r.Context(), req.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Root password reset"})
		case errors.Is(err, services.ErrEmptyPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRootNotProvisioned):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to reset root password", "error", err)
			writeInternalError(w)
		}
	}
}
