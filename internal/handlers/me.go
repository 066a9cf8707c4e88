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

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

// UserGetter loads a single user.
type UserGetter interface {
	Get(ctx context.Context, userID string) (*models.UserDB, error)
}

// ProfileUpdater changes a user's display name and password.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID string, displayName, password *string) error
}

// UpdateProfileRequest carries the fields to change. Omitted fields are kept.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// default: Line Cook
	DisplayName *string `json:"display_name,omitempty"`
	// default: new-secret
	Password *string `json:"password,omitempty"`
}

// NewGetMeHandler returns the account of the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /me [get]
// @Security BearerAuth
func NewGetMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to load current user", "user_id", session.UserID, "error", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateMeHandler updates the display name or password of the authenticated user.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /me [put]
// @Security BearerAuth
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}
		updateProfile(w, r, svc, session.UserID)
	}
}

func updateProfile(w http.ResponseWriter, r *http.Request, svc ProfileUpdater, userID string) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := svc.UpdateProfile(r.Context(), userID, req.DisplayName, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile updated"})
	case errors.Is(err, services.ErrEmptyPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
		writeInternalError(w)
	}
}
