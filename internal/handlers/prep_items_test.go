package handlers

import (
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

func TestListPrepItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPrepItemLister(ctrl)
	svc.EXPECT().ListByStation(gomock.Any(), "Grill").Return([]models.PrepItemDB{{Title: "Dice onions", StationName: "Grill"}}, nil)

	w := httptest.NewRecorder()
	NewListPrepItemsHandler(svc).ServeHTTP(w, newRequest(http.MethodGet, "/stations/Grill/items", nil, userSession, map[string]string{"station": "Grill"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.PrepItemDB
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestCreatePrepItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPrepItemCreator(ctrl)

	t.Run("DefaultsViewable", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, item *models.PrepItemDB) error {
			assert.Equal(t, "Dice onions", item.Title)
			assert.Equal(t, "Grill", item.StationName)
			assert.True(t, item.IsViewable)
			assert.Nil(t, item.RecipeID)
			item.PrepItemID = "01J1"
			return nil
		})

		w := httptest.NewRecorder()
		body := PrepItemRequest{Title: strPtr("Dice onions"), ParAmount: strPtr("2"), ParLabel: strPtr("pans")}
		NewCreatePrepItemHandler(svc).ServeHTTP(w, newRequest(http.MethodPost, "/stations/Grill/items", body, adminSession, map[string]string{"station": "Grill"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got models.PrepItemDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "01J1", got.PrepItemID)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(services.ErrEmptyTitle)

		w := httptest.NewRecorder()
		NewCreatePrepItemHandler(svc).ServeHTTP(w, newRequest(http.MethodPost, "/stations/Grill/items", PrepItemRequest{}, adminSession, map[string]string{"station": "Grill"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdatePrepItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPrepItemUpdater(ctrl)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"Updated", nil, http.StatusOK},
		{"EmptyStation", services.ErrEmptyStation, http.StatusBadRequest},
		{"Missing", services.ErrPrepItemNotFound, http.StatusNotFound},
		{"StoreFailure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := models.PrepItemPatch{IsViewable: boolPtr(false), RecipeID: strPtr("")}
			var item *models.PrepItemDB
			if tt.err == nil {
				item = &models.PrepItemDB{PrepItemID: "01J1"}
			}
			svc.EXPECT().Update(gomock.Any(), "01J1", patch).Return(item, tt.err)

			w := httptest.NewRecorder()
			body := PrepItemRequest{IsViewable: boolPtr(false), RecipeID: strPtr("")}
			NewUpdatePrepItemHandler(svc).ServeHTTP(w, newRequest(http.MethodPut, "/items/01J1", body, adminSession, map[string]string{"id": "01J1"}))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeletePrepItemHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPrepItemDeleter(ctrl)

	t.Run("Single", func(t *testing.T) {
		svc.EXPECT().Delete(gomock.Any(), "01J1").Return(nil)

		w := httptest.NewRecorder()
		NewDeletePrepItemHandler(svc).ServeHTTP(w, newRequest(http.MethodDelete, "/items/01J1", nil, adminSession, map[string]string{"id": "01J1"}))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Bulk", func(t *testing.T) {
		svc.EXPECT().DeleteMany(gomock.Any(), []string{"a"}).Return([]models.DeleteFailure{})

		w := httptest.NewRecorder()
		NewDeletePrepItemsHandler(svc).ServeHTTP(w, newRequest(http.MethodPost, "/items/delete", BulkDeleteRequest{IDs: []string{"a"}}, adminSession, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":1,"failures":[]}`, w.Body.String())
	})
}
