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

//go:generate mockgen -source=prep_items.go -destination=prep_items_mock.go -package=handlers

// PrepItemLister lists the prep items of a station.
type PrepItemLister interface {
	ListByStation(ctx context.Context, stationName string) ([]models.PrepItemDB, error)
}

// PrepItemCreator adds prep items.
type PrepItemCreator interface {
	Create(ctx context.Context, item *models.PrepItemDB) error
}

// PrepItemUpdater applies partial updates to prep items.
type PrepItemUpdater interface {
	Update(ctx context.Context, prepItemID string, patch models.PrepItemPatch) (*models.PrepItemDB, error)
}

// PrepItemDeleter deletes one or many prep items.
type PrepItemDeleter interface {
	Delete(ctx context.Context, prepItemID string) error
	DeleteMany(ctx context.Context, prepItemIDs []string) []models.DeleteFailure
}

// PrepItemRequest is the body for creating or updating a prep item.
// On update, omitted fields are left unchanged and an empty recipe_id detaches the recipe.
// swagger:model PrepItemRequest
type PrepItemRequest struct {
	// default: Dice onions
	Title *string `json:"title,omitempty"`
	// default: 2
	ParAmount *string `json:"par_amount,omitempty"`
	// default: pans
	ParLabel     *string `json:"par_label,omitempty"`
	IsViewable   *bool   `json:"is_viewable,omitempty"`
	CurrentValue *string `json:"current_value,omitempty"`
	Owner        *string `json:"owner,omitempty"`
	MoreInfo     *string `json:"more_info,omitempty"`
	StationName  *string `json:"station_name,omitempty"`
	RecipeID     *string `json:"recipe_id,omitempty"`
}

func (req PrepItemRequest) patch() models.PrepItemPatch {
	return models.PrepItemPatch{
		Title:        req.Title,
		ParAmount:    req.ParAmount,
		ParLabel:     req.ParLabel,
		IsViewable:   req.IsViewable,
		CurrentValue: req.CurrentValue,
		Owner:        req.Owner,
		MoreInfo:     req.MoreInfo,
		StationName:  req.StationName,
		RecipeID:     req.RecipeID,
	}
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// NewListPrepItemsHandler returns a station's prep list in creation order.
// @Summary List prep items of a station
// @Tags prep-items
// @Produce json
// @Param station path string true "Station name"
// @Success 200 {array} models.PrepItemDB
// @Router /stations/{station}/items [get]
// @Security BearerAuth
func NewListPrepItemsHandler(svc PrepItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		station := chi.URLParam(r, "station")

		items, err := svc.ListByStation(r.Context(), station)
		if err != nil {
			logger.Log.Errorw("failed to list prep items", "station", station, "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewCreatePrepItemHandler adds a prep item to the station in the path.
// @Summary Create prep item
// @Tags prep-items
// @Accept json
// @Produce json
// @Param station path string true "Station name"
// @Param request body handlers.PrepItemRequest true "Prep item"
// @Success 201 {object} models.PrepItemDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /stations/{station}/items [post]
// @Security BearerAuth
func NewCreatePrepItemHandler(svc PrepItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrepItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item := &models.PrepItemDB{
			Title:        deref(req.Title, ""),
			ParAmount:    deref(req.ParAmount, ""),
			ParLabel:     deref(req.ParLabel, ""),
			IsViewable:   deref(req.IsViewable, true),
			CurrentValue: deref(req.CurrentValue, ""),
			Owner:        deref(req.Owner, ""),
			MoreInfo:     deref(req.MoreInfo, ""),
			StationName:  chi.URLParam(r, "station"),
			RecipeID:     req.RecipeID,
		}

		err := svc.Create(r.Context(), item)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, item)
		case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrEmptyStation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Errorw("failed to create prep item", "station", item.StationName, "error", err)
			writeInternalError(w)
		}
	}
}

// NewUpdatePrepItemHandler applies a partial update to a prep item.
// @Summary Update prep item
// @Tags prep-items
// @Accept json
// @Produce json
// @Param id path string true "Prep item id"
// @Param request body handlers.PrepItemRequest true "Fields to change"
// @Success 200 {object} models.PrepItemDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Prep item not found"
// @Router /items/{id} [put]
// @Security BearerAuth
func NewUpdatePrepItemHandler(svc PrepItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prepItemID := chi.URLParam(r, "id")

		var req PrepItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Update(r.Context(), prepItemID, req.patch())
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, item)
		case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrEmptyStation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrPrepItemNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to update prep item", "prep_item_id", prepItemID, "error", err)
			writeInternalError(w)
		}
	}
}

// NewDeletePrepItemHandler deletes a prep item.
// @Summary Delete prep item
// @Tags prep-items
// @Param id path string true "Prep item id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Prep item not found"
// @Router /items/{id} [delete]
// @Security BearerAuth
func NewDeletePrepItemHandler(svc PrepItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prepItemID := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), prepItemID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrPrepItemNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to delete prep item", "prep_item_id", prepItemID, "error", err)
			writeInternalError(w)
		}
	}
}

// NewDeletePrepItemsHandler deletes several prep items and reports failures.
// @Summary Delete prep items
// @Tags prep-items
// @Accept json
// @Produce json
// @Param request body handlers.BulkDeleteRequest true "Prep item ids"
// @Success 200 {object} handlers.BulkDeleteResponse
// @Router /items/delete [post]
// @Security BearerAuth
func NewDeletePrepItemsHandler(svc PrepItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bulkDelete(w, r, svc.DeleteMany)
	}
}
