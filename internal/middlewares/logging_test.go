package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		handlerStatus   int
		handlerBody     string
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name:            "OK response",
			handlerStatus:   http.StatusOK,
			handlerBody:     "hello",
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "request served",
		},
		{
			name:            "Not found",
			handlerStatus:   http.StatusNotFound,
			handlerBody:     "nope!",
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: "request rejected",
		},
		{
			name:            "Internal server error",
			handlerStatus:   http.StatusInternalServerError,
			handlerBody:     "error",
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(bodyBytes))

			reqID := rr.Header().Get("X-Request-ID")
			_, err := uuid.Parse(reqID)
			assert.NoError(t, err)
			assert.Equal(t, reqID, seenID)

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				fields := entries[0].ContextMap()
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
				assert.Equal(t, tt.expectedMessage, entries[0].Message)
				assert.Equal(t, reqID, fields["request_id"])
				assert.Equal(t, int64(tt.handlerStatus), fields["status"])
				assert.Equal(t, "5B", fields["response_size"])
				assert.NotContains(t, fields, "user_name")
			}
		})
	}
}

func TestLoggingMiddleware_RouteAndUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
	tokener.EXPECT().GetSession(gomock.Any(), "validtoken").
		Return(&models.Session{UserID: "01J0", UserName: "chef", PrivLevel: models.PrivilegeUser}, nil)

	core, logs := observer.New(zap.InfoLevel)

	r := chi.NewRouter()
	r.Use(LoggingMiddleware(zap.New(core).Sugar()))
	r.With(AuthMiddleware(tokener)).Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/01JABC", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	if entries := logs.All(); assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "/items/{id}", fields["route"])
		assert.Equal(t, "chef", fields["user_name"])
	}
}
