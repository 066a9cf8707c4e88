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

//go:generate mockgen -source=stations.go -destination=stations_mock.go -package=handlers

// StationLister lists stations.
type StationLister interface {
	List(ctx context.Context) ([]models.StationDB, error)
}

// StationCreator creates stations.
type StationCreator interface {
	Create(ctx context.Context, name string) (*models.StationDB, error)
}

// StationDeleter deletes one or many stations.
type StationDeleter interface {
	Delete(ctx context.Context, stationID string) error
	DeleteMany(ctx context.Context, stationIDs []string) []models.DeleteFailure
}

// CreateStationRequest represents the JSON body for creating a station
// swagger:model CreateStationRequest
type CreateStationRequest struct {
	// required: true
	// default: Grill
	StationName string `json:"station_name"`
}

// NewListStationsHandler returns every station sorted by name.
// @Summary List stations
// @Tags stations
// @Produce json
// @Success 200 {array} models.StationDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /stations [get]
// @Security BearerAuth
func NewListStationsHandler(svc StationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list stations", "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, stations)
	}
}

// NewCreateStationHandler creates a station.
// @Summary Create station
// @Tags stations
// @Accept json
// @Produce json
// @Param request body handlers.CreateStationRequest true "Station"
// @Success 201 {object} models.StationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Station already exists"
// @Router /stations [post]
// @Security BearerAuth
func NewCreateStationHandler(svc StationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		station, err := svc.Create(r.Context(), req.StationName)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, station)
		case errors.Is(err, services.ErrEmptyName):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrStationAlreadyExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			logger.Log.Errorw("failed to create station", "station", req.StationName, "error", err)
			writeInternalError(w)
		}
	}
}

// NewDeleteStationHandler deletes a station.
// @Summary Delete station
// @Tags stations
// @Param id path string true "Station id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Station not found"
// @Router /stations/{id} [delete]
// @Security BearerAuth
func NewDeleteStationHandler(svc StationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stationID := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), stationID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrStationNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to delete station", "station_id", stationID, "error", err)
			writeInternalError(w)
		}
	}
}

// NewDeleteStationsHandler deletes several stations and reports failures.
// @Summary Delete stations
// @Tags stations
// @Accept json
// @Produce json
// @Param request body handlers.BulkDeleteRequest true "Station ids"
// @Success 200 {object} handlers.BulkDeleteResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /stations/delete [post]
// @Security BearerAuth
func NewDeleteStationsHandler(svc StationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bulkDelete(w, r, svc.DeleteMany)
	}
}

func bulkDelete(w http.ResponseWriter, r *http.Request, deleteMany func(context.Context, []string) []models.DeleteFailure) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	failures := deleteMany(r.Context(), req.IDs)
	writeJSON(w, http.StatusOK, BulkDeleteResponse{
		Deleted:  len(req.IDs) - len(failures),
		Failures: failures,
	})
}
