package handlers

import (
	"context"
	"net/http"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=handlers

// CatalogReader reads the remote catalog listings.
type CatalogReader interface {
	Employees(ctx context.Context) ([]models.Employee, error)
	Menus(ctx context.Context) ([]models.Menu, error)
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
}

// NewEmployeesHandler lists employees from the remote catalog.
// @Summary Catalog employees
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Employee
// @Failure 502 {object} handlers.ErrorResponse "Catalog unavailable"
// @Router /catalog/employees [get]
// @Security BearerAuth
func NewEmployeesHandler(svc CatalogReader) http.HandlerFunc {
	return catalogHandler("employees", svc.Employees)
}

// NewMenusHandler lists menus from the remote catalog.
// @Summary Catalog menus
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Menu
// @Failure 502 {object} handlers.ErrorResponse "Catalog unavailable"
// @Router /catalog/menus [get]
// @Security BearerAuth
func NewMenusHandler(svc CatalogReader) http.HandlerFunc {
	return catalogHandler("menus", svc.Menus)
}

// NewMenuItemsHandler lists menu items from the remote catalog.
// @Summary Catalog menu items
// @Tags catalog
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 502 {object} handlers.ErrorResponse "Catalog unavailable"
// @Router /catalog/menu-items [get]
// @Security BearerAuth
func NewMenuItemsHandler(svc CatalogReader) http.HandlerFunc {
	return catalogHandler("menu_items", svc.MenuItems)
}

func catalogHandler[T any](listing string, fetch func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to read catalog", "listing", listing, "error", err)
			writeError(w, http.StatusBadGateway, "Catalog unavailable")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}
