package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCatalogReader(ctrl)

	t.Run("Employees", func(t *testing.T) {
		svc.EXPECT().Employees(gomock.Any()).Return([]models.Employee{{ID: 1, DisplayName: "Sam"}}, nil)

		w := httptest.NewRecorder()
		NewEmployeesHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/catalog/employees", nil, adminSession, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"display_name":"Sam"`)
	})

	t.Run("Menus", func(t *testing.T) {
		svc.EXPECT().Menus(gomock.Any()).Return([]models.Menu{}, nil)

		w := httptest.NewRecorder()
		NewMenusHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/catalog/menus", nil, adminSession, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("MenuItemsUnavailable", func(t *testing.T) {
		svc.EXPECT().MenuItems(gomock.Any()).Return(nil, errors.New("connection refused"))

		w := httptest.NewRecorder()
		NewMenuItemsHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/catalog/menu-items", nil, adminSession, nil))
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"Catalog unavailable"}`, w.Body.String())
	})
}
