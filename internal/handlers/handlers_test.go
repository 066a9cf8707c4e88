package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/prepit-kitchen/prepit/internal/middlewares"
	"github.com/prepit-kitchen/prepit/internal/models"
)

var (
	adminSession  = &models.Session{UserID: "01JADMIN", UserName: "root", DisplayName: "Root", PrivLevel: models.PrivilegeAdmin}
	userSession   = &models.Session{UserID: "01JUSER", UserName: "cook", DisplayName: "Line Cook", PrivLevel: models.PrivilegeUser}
	viewerSession = &models.Session{UserID: "01JVIEW", UserName: "guest", DisplayName: "Guest", PrivLevel: models.PrivilegeViewer}
)

// newRequest builds a request with optional JSON body, chi URL params and session.
func newRequest(method, target string, body any, session *models.Session, params map[string]string) *http.Request {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		b, _ := json.Marshal(v)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if session != nil {
		ctx = middlewares.WithSession(ctx, session)
	}
	return req.WithContext(ctx)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
