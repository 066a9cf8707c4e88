package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSubmitPrepSheetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPrepSheetSubmitter(ctrl)
	users := NewMockUserGetter(ctrl)
	current := &models.UserDB{UserID: userSession.UserID, UserName: userSession.UserName, DisplayName: "Sous Chef Cook"}
	entries := []models.PrepSheetEntry{
		{PrepName: "Dice onions", ParLabel: "pans", ParAmount: "2", PrepComplete: "2", Viewable: true},
		{PrepName: "Pick herbs", ParLabel: "qt", ParAmount: "1", PrepComplete: "1", Viewable: true},
	}

	tests := []struct {
		name         string
		result       *models.SubmitResult
		err          error
		expectedCode int
	}{
		{
			name:         "AllWritten",
			result:       &models.SubmitResult{BatchID: "Grill|1700000040", Submitted: []string{"Dice onions", "Pick herbs"}, Failures: []models.SubmitFailure{}},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "PartiallyWritten",
			result:       &models.SubmitResult{BatchID: "Grill|1700000040", Submitted: []string{"Dice onions"}, Failures: []models.SubmitFailure{{PrepName: "Pick herbs", Error: "timeout"}}},
			expectedCode: http.StatusMultiStatus,
		},
		{
			name:         "NoneWritten",
			result:       &models.SubmitResult{BatchID: "Grill|1700000040", Submitted: []string{}, Failures: []models.SubmitFailure{{PrepName: "Dice onions", Error: "timeout"}, {PrepName: "Pick herbs", Error: "timeout"}}},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "NothingViewable",
			err:          services.ErrNothingToSubmit,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unexpected",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users.EXPECT().Get(gomock.Any(), userSession.UserID).Return(current, nil)
			svc.EXPECT().SubmitPrepSheet(gomock.Any(), "Grill", current.DisplayName, entries).Return(tt.result, tt.err)

			w := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/stations/Grill/submissions", SubmitPrepSheetRequest{Entries: entries}, userSession, map[string]string{"station": "Grill"})
			NewSubmitPrepSheetHandler(svc, users).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.result != nil {
				var got models.SubmitResult
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.result, got)
			}
		})
	}
}

func TestSubmitPrepSheetHandler_SubmitterLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []models.PrepSheetEntry{{PrepName: "Dice onions", PrepComplete: "2", Viewable: true}}

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"UserDeleted", services.ErrUserNotFound, http.StatusNotFound},
		{"LookupFailed", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserGetter(ctrl)
			users.EXPECT().Get(gomock.Any(), userSession.UserID).Return(nil, tt.err)

			w := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/stations/Grill/submissions", SubmitPrepSheetRequest{Entries: entries}, userSession, map[string]string{"station": "Grill"})
			NewSubmitPrepSheetHandler(NewMockPrepSheetSubmitter(ctrl), users).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSubmitPrepSheetHandler_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	NewSubmitPrepSheetHandler(NewMockPrepSheetSubmitter(ctrl), NewMockUserGetter(ctrl)).ServeHTTP(w, newRequest(http.MethodPost, "/stations/Grill/submissions", SubmitPrepSheetRequest{}, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSubmissionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSubmissionReader(ctrl)

	t.Run("Filtered", func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().ListBatches(gomock.Any(), "Grill", from, to).Return([]models.SubmissionBatch{{ID: "Grill|1709251200"}}, nil)

		w := httptest.NewRecorder()
		NewListSubmissionsHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/submissions?station=Grill&from=2024-03-01T00:00:00Z&to=2024-03-02T00:00:00Z", nil, viewerSession, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Grill|1709251200")
	})

	t.Run("Unbounded", func(t *testing.T) {
		svc.EXPECT().ListBatches(gomock.Any(), "", time.Time{}, time.Time{}).Return([]models.SubmissionBatch{}, nil)

		w := httptest.NewRecorder()
		NewListSubmissionsHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/submissions", nil, viewerSession, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("BadBound", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewListSubmissionsHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/submissions?from=yesterday", nil, viewerSession, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListSubmissionDaysHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSubmissionReader(ctrl)

	t.Run("DefaultLocation", func(t *testing.T) {
		svc.EXPECT().ListDays(gomock.Any(), time.UTC).Return([]models.SubmissionDay{}, nil)

		w := httptest.NewRecorder()
		NewListSubmissionDaysHandler(svc, time.UTC).ServeHTTP(w, newRequest(http.MethodGet, "/submissions/days", nil, viewerSession, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RequestedLocation", func(t *testing.T) {
		svc.EXPECT().ListDays(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, loc *time.Location) ([]models.SubmissionDay, error) {
			assert.Equal(t, "America/Chicago", loc.String())
			return []models.SubmissionDay{}, nil
		})

		w := httptest.NewRecorder()
		NewListSubmissionDaysHandler(svc, time.UTC).ServeHTTP(w, newRequest(http.MethodGet, "/submissions/days?tz=America/Chicago", nil, viewerSession, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownLocation", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewListSubmissionDaysHandler(svc, time.UTC).ServeHTTP(w, newRequest(http.MethodGet, "/submissions/days?tz=Mars/Olympus", nil, viewerSession, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetSubmissionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		target   string
		batchID  string
		batch    *models.SubmissionBatch
		err      error
		expected int
	}{
		{
			name:     "EscapedSeparator",
			target:   "/submissions/Grill%7C1709251200",
			batchID:  "Grill|1709251200",
			batch:    &models.SubmissionBatch{ID: "Grill|1709251200", StationName: "Grill"},
			expected: http.StatusOK,
		},
		{
			name:     "EscapedSlashInStation",
			target:   "/submissions/Pastry%2FBake%7C1709251200",
			batchID:  "Pastry/Bake|1709251200",
			batch:    &models.SubmissionBatch{ID: "Pastry/Bake|1709251200", StationName: "Pastry/Bake"},
			expected: http.StatusOK,
		},
		{
			name:     "PercentInStation",
			target:   "/submissions/a%2541%7C1709251200",
			batchID:  "a%41|1709251200",
			batch:    &models.SubmissionBatch{ID: "a%41|1709251200", StationName: "a%41"},
			expected: http.StatusOK,
		},
		{
			name:     "Missing",
			target:   "/submissions/Grill%7C1",
			batchID:  "Grill|1",
			err:      services.ErrBatchNotFound,
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockSubmissionReader(ctrl)
			svc.EXPECT().GetBatch(gomock.Any(), tt.batchID).Return(tt.batch, tt.err)

			router := chi.NewRouter()
			router.Get("/submissions/{id}", NewGetSubmissionHandler(svc))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
