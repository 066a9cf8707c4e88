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

//go:generate mockgen -source=station.go -destination=station_mock.go -package=services

var (
	ErrStationAlreadyExists = errors.New("station already exists")
	ErrStationNotFound      = errors.New("station not found")
	ErrEmptyName            = errors.New("name must not be empty")
)

// StationReader defines read-only operations for stations.
type StationReader interface {
	List(ctx context.Context, cursor string, limit int) (models.Page[models.StationDB], error)
}

// StationWriter defines write operations for stations.
type StationWriter interface {
	Create(ctx context.Context, station *models.StationDB) error
	Delete(ctx context.Context, stationID string) error
}

// StationService manages kitchen stations.
type StationService struct {
	reader StationReader
	writer StationWriter
}

// NewStationService creates a new StationService instance.
func NewStationService(reader StationReader, writer StationWriter) *StationService {
	return &StationService{
		reader: reader,
		writer: writer,
	}
}

// Create adds a station. Names are trimmed and must be unique.
func (svc *StationService) Create(ctx context.Context, name string) (*models.StationDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	station := &models.StationDB{StationName: name}
	if err := svc.writer.Create(ctx, station); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrStationAlreadyExists
		}
		logger.Log.Errorw("failed to create station", "station", name, "err", err)
		return nil, err
	}
	return station, nil
}

// List returns every station sorted by name.
func (svc *StationService) List(ctx context.Context) ([]models.StationDB, error) {
	stations, err := repositories.CollectAll(ctx, func(ctx context.Context, cursor string) (models.Page[models.StationDB], error) {
		return svc.reader.List(ctx, cursor, repositories.DefaultPageSize)
	})
	if err != nil {
		logger.Log.Errorw("failed to list stations", "err", err)
		return nil, err
	}

	sort.SliceStable(stations, func(i, j int) bool {
		return strings.ToLower(stations[i].StationName) < strings.ToLower(stations[j].StationName)
	})
	return stations, nil
}

// Delete removes a station.
func (svc *StationService) Delete(ctx context.Context, stationID string) error {
	err := svc.writer.Delete(ctx, stationID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrStationNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete station", "station_id", stationID, "err", err)
		return err
	}
	return nil
}

// DeleteMany removes stations concurrently and reports the ids that failed.
// Stations that were removed stay removed.
func (svc *StationService) DeleteMany(ctx context.Context, stationIDs []string) []models.DeleteFailure {
	errs := fanOut(ctx, stationIDs, svc.Delete)
	return deleteFailures(stationIDs, errs)
}

func deleteFailures(ids []string, errs []error) []models.DeleteFailure {
	failures := []models.DeleteFailure{}
	for i, err := range errs {
		if err != nil {
			failures = append(failures, models.DeleteFailure{ID: ids[i], Error: err.Error()})
		}
	}
	return failures
}
