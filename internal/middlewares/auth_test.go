package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &models.Session{UserID: "01J0", UserName: "chef", DisplayName: "Chef", PrivLevel: models.PrivilegeUser}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetSession(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetSession(gomock.Any(), "validtoken").
					Return(session, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, session, SessionFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name           string
		session        *models.Session
		capability     models.Capability
		expectedStatus int
	}{
		{"NoSession", nil, models.CapViewRecipes, http.StatusUnauthorized},
		{"AdminManagesUsers", &models.Session{PrivLevel: models.PrivilegeAdmin}, models.CapManageUsers, http.StatusOK},
		{"UserSubmits", &models.Session{PrivLevel: models.PrivilegeUser}, models.CapSubmitPrepSheet, http.StatusOK},
		{"UserCannotManageStations", &models.Session{PrivLevel: models.PrivilegeUser}, models.CapManageStations, http.StatusForbidden},
		{"ViewerCannotSubmit", &models.Session{PrivLevel: models.PrivilegeViewer}, models.CapSubmitPrepSheet, http.StatusForbidden},
		{"ViewerReadsRecipes", &models.Session{PrivLevel: models.PrivilegeViewer}, models.CapViewRecipes, http.StatusOK},
		{"UnknownLevel", &models.Session{PrivLevel: "Chef"}, models.CapViewRecipes, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()

			RequireCapability(tt.capability)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
