package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/services"
)

//go:generate mockgen -source=submissions.go -destination=submissions_mock.go -package=handlers

// PrepSheetSubmitter records completed prep sheets.
type PrepSheetSubmitter interface {
	SubmitPrepSheet(ctx context.Context, station, submittedBy string, entries []models.PrepSheetEntry) (*models.SubmitResult, error)
}

// SubmissionReader reads submitted prep lists as batches.
type SubmissionReader interface {
	ListBatches(ctx context.Context, station string, from, to time.Time) ([]models.SubmissionBatch, error)
	ListDays(ctx context.Context, loc *time.Location) ([]models.SubmissionDay, error)
	GetBatch(ctx context.Context, batchID string) (*models.SubmissionBatch, error)
}

// SubmitPrepSheetRequest is a filled-in prep sheet
// swagger:model SubmitPrepSheetRequest
type SubmitPrepSheetRequest struct {
	// required: true
	Entries []models.PrepSheetEntry `json:"entries"`
}

// NewSubmitPrepSheetHandler submits the prep sheet of the station in the path.
// The submitter is the user's current display name, not the one captured in the token.
// Answers 201 when every entry was written, 207 when some failed and 502 when none was written.
// @Summary Submit prep sheet
// @Tags submissions
// @Accept json
// @Produce json
// @Param station path string true "Station name"
// @Param request body handlers.SubmitPrepSheetRequest true "Prep sheet"
// @Success 201 {object} models.SubmitResult "All entries submitted"
// @Success 207 {object} models.SubmitResult "Some entries failed"
// @Failure 400 {object} handlers.ErrorResponse "Nothing to submit"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 502 {object} models.SubmitResult "No entry could be written"
// @Router /stations/{station}/submissions [post]
// @Security BearerAuth
func NewSubmitPrepSheetHandler(svc PrepSheetSubmitter, users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req SubmitPrepSheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := users.Get(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to load submitting user", "user_id", session.UserID, "error", err)
			writeInternalError(w)
			return
		}

		station := chi.URLParam(r, "station")
		result, err := svc.SubmitPrepSheet(r.Context(), station, user.DisplayName, req.Entries)
		if err != nil {
			if errors.Is(err, services.ErrNothingToSubmit) || errors.Is(err, services.ErrEmptyStation) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to submit prep sheet", "station", station, "error", err)
			writeInternalError(w)
			return
		}

		status := http.StatusCreated
		switch {
		case len(result.Submitted) == 0:
			status = http.StatusBadGateway
		case len(result.Failures) > 0:
			status = http.StatusMultiStatus
		}
		writeJSON(w, status, result)
	}
}

// NewListSubmissionsHandler returns submission batches newest first.
// @Summary List submission batches
// @Tags submissions
// @Produce json
// @Param station query string false "Station name"
// @Param from query string false "RFC 3339 lower bound, inclusive"
// @Param to query string false "RFC 3339 upper bound, exclusive"
// @Success 200 {array} models.SubmissionBatch
// @Failure 400 {object} handlers.ErrorResponse "Invalid time bound"
// @Router /submissions [get]
// @Security BearerAuth
func NewListSubmissionsHandler(svc SubmissionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		from, err := parseTimeParam(q.Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid from parameter")
			return
		}
		to, err := parseTimeParam(q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid to parameter")
			return
		}

		batches, err := svc.ListBatches(r.Context(), q.Get("station"), from, to)
		if err != nil {
			logger.Log.Errorw("failed to list submissions", "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, batches)
	}
}

// NewListSubmissionDaysHandler returns submission batches bucketed by day.
// Days are computed in the tz query location, defaultLoc when it is absent.
// @Summary List submissions by day
// @Tags submissions
// @Produce json
// @Param tz query string false "IANA time zone, e.g. America/Chicago"
// @Success 200 {array} models.SubmissionDay
// @Failure 400 {object} handlers.ErrorResponse "Unknown time zone"
// @Router /submissions/days [get]
// @Security BearerAuth
func NewListSubmissionDaysHandler(svc SubmissionReader, defaultLoc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := defaultLoc
		if tz := r.URL.Query().Get("tz"); tz != "" {
			l, err := time.LoadLocation(tz)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Unknown time zone")
				return
			}
			loc = l
		}

		days, err := svc.ListDays(r.Context(), loc)
		if err != nil {
			logger.Log.Errorw("failed to list submission days", "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, days)
	}
}

// NewGetSubmissionHandler returns one batch by id ("<station>|<unix seconds>", URL-escaped).
// chi hands over the raw segment when the request path needed RawPath, so only then is it unescaped.
// @Summary Get submission batch
// @Tags submissions
// @Produce json
// @Param id path string true "Batch id"
// @Success 200 {object} models.SubmissionBatch
// @Failure 404 {object} handlers.ErrorResponse "Batch not found"
// @Router /submissions/{id} [get]
// @Security BearerAuth
func NewGetSubmissionHandler(svc SubmissionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batchID := chi.URLParam(r, "id")
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(batchID); err == nil {
				batchID = unescaped
			}
		}

		batch, err := svc.GetBatch(r.Context(), batchID)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, batch)
		case errors.Is(err, services.ErrBatchNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to get submission batch", "batch_id", batchID, "error", err)
			writeInternalError(w)
		}
	}
}

func parseTimeParam(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}
