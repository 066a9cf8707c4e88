package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
)

//go:generate mockgen -source=prep_item.go -destination=prep_item_mock.go -package=services

var (
	ErrPrepItemNotFound = errors.New("prep item not found")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyStation     = errors.New("station name must not be empty")
)

// PrepItemReader defines read-only operations for prep items.
type PrepItemReader interface {
	GetByID(ctx context.Context, prepItemID string) (*models.PrepItemDB, error)
	ListByStation(ctx context.Context, stationName, cursor string, limit int) (models.Page[models.PrepItemDB], error)
}

// PrepItemWriter defines write operations for prep items.
type PrepItemWriter interface {
	Create(ctx context.Context, item *models.PrepItemDB) error
	Update(ctx context.Context, prepItemID string, patch models.PrepItemPatch) error
	Delete(ctx context.Context, prepItemID string) error
}

// PrepItemService manages the par lists of each station.
type PrepItemService struct {
	reader PrepItemReader
	writer PrepItemWriter
}

// NewPrepItemService creates a new PrepItemService instance.
func NewPrepItemService(reader PrepItemReader, writer PrepItemWriter) *PrepItemService {
	return &PrepItemService{
		reader: reader,
		writer: writer,
	}
}

// Create adds a prep item to a station's list.
func (svc *PrepItemService) Create(ctx context.Context, item *models.PrepItemDB) error {
	item.Title = strings.TrimSpace(item.Title)
	item.StationName = strings.TrimSpace(item.StationName)
	if item.Title == "" {
		return ErrEmptyTitle
	}
	if item.StationName == "" {
		return ErrEmptyStation
	}
	if item.RecipeID != nil && *item.RecipeID == "" {
		item.RecipeID = nil
	}

	if err := svc.writer.Create(ctx, item); err != nil {
		logger.Log.Errorw("failed to create prep item", "title", item.Title, "station", item.StationName, "err", err)
		return err
	}
	return nil
}

// ListByStation returns a station's prep items in creation order.
func (svc *PrepItemService) ListByStation(ctx context.Context, stationName string) ([]models.PrepItemDB, error) {
	items, err := repositories.CollectAll(ctx, func(ctx context.Context, cursor string) (models.Page[models.PrepItemDB], error) {
		return svc.reader.ListByStation(ctx, stationName, cursor, repositories.DefaultPageSize)
	})
	if err != nil {
		logger.Log.Errorw("failed to list prep items", "station", stationName, "err", err)
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].PrepItemID < items[j].PrepItemID
	})
	return items, nil
}

// Update applies a partial update and returns the stored item.
func (svc *PrepItemService) Update(ctx context.Context, prepItemID string, patch models.PrepItemPatch) (*models.PrepItemDB, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if patch.StationName != nil && strings.TrimSpace(*patch.StationName) == "" {
		return nil, ErrEmptyStation
	}

	err := svc.writer.Update(ctx, prepItemID, patch)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPrepItemNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update prep item", "prep_item_id", prepItemID, "err", err)
		return nil, err
	}

	item, err := svc.reader.GetByID(ctx, prepItemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPrepItemNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to reload prep item", "prep_item_id", prepItemID, "err", err)
		return nil, err
	}
	return item, nil
}

// Delete removes a prep item.
func (svc *PrepItemService) Delete(ctx context.Context, prepItemID string) error {
	err := svc.writer.Delete(ctx, prepItemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPrepItemNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete prep item", "prep_item_id", prepItemID, "err", err)
		return err
	}
	return nil
}

// DeleteMany removes prep items concurrently and reports the ids that failed.
func (svc *PrepItemService) DeleteMany(ctx context.Context, prepItemIDs []string) []models.DeleteFailure {
	errs := fanOut(ctx, prepItemIDs, svc.Delete)
	return deleteFailures(prepItemIDs, errs)
}
