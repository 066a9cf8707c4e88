package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	session := &models.Session{UserID: "01J0", UserName: "john", DisplayName: "John", PrivLevel: models.PrivilegeUser}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				UserName: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("JWT_TOKEN", session, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{
				Token: "JWT_TOKEN",
				User:  session,
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name: "wrong credentials",
			inputBody: LoginRequest{
				UserName: "wronguser",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wronguser", "wrongpass").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: "Invalid username or password",
			},
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				UserName: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("", nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &LoginResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
