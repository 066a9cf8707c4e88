package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
	"github.com/prepit-kitchen/prepit/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockStationReader(ctrl)
	writer := services.NewMockStationWriter(ctrl)
	svc := services.NewStationService(reader, writer)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		writerErr error
		wantErr   error
		callRepo  bool
	}{
		{name: "success", input: " Grill ", callRepo: true},
		{name: "empty", input: "  ", wantErr: services.ErrEmptyName},
		{name: "duplicate", input: "Grill", writerErr: fmt.Errorf("%w: stations_station_name_key", repositories.ErrConflict), wantErr: services.ErrStationAlreadyExists, callRepo: true},
		{name: "db error", input: "Fry", writerErr: errors.New("db error"), wantErr: errors.New("db error"), callRepo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.callRepo {
				writer.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, s *models.StationDB) error {
					assert.Equal(t, strings.TrimSpace(tt.input), s.StationName)
					if tt.writerErr == nil {
						s.StationID = "01S"
					}
					return tt.writerErr
				})
			}

			station, err := svc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, station)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "01S", station.StationID)
			assert.Equal(t, "Grill", station.StationName)
		})
	}
}

func TestStationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockStationReader(ctrl)
	svc := services.NewStationService(reader, services.NewMockStationWriter(ctrl))

	reader.EXPECT().List(gomock.Any(), "", repositories.DefaultPageSize).Return(models.Page[models.StationDB]{
		Items: []models.StationDB{{StationID: "1", StationName: "salad"}, {StationID: "2", StationName: "Fry"}, {StationID: "3", StationName: "Grill"}},
	}, nil)

	stations, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Fry", stations[0].StationName)
	assert.Equal(t, "Grill", stations[1].StationName)
	assert.Equal(t, "salad", stations[2].StationName)
}

func TestStationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockStationWriter(ctrl)
	svc := services.NewStationService(services.NewMockStationReader(ctrl), writer)
	ctx := context.Background()

	writer.EXPECT().Delete(ctx, "1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "1"))

	writer.EXPECT().Delete(ctx, "2").Return(errNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "2"), services.ErrStationNotFound)
}

func TestStationService_DeleteMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockStationWriter(ctrl)
	svc := services.NewStationService(services.NewMockStationReader(ctrl), writer)

	ids := []string{"a", "b", "c", "d"}
	var mu sync.Mutex
	deleted := map[string]bool{}
	writer.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(len(ids)).DoAndReturn(func(ctx context.Context, id string) error {
		if id == "b" {
			return errors.New("locked")
		}
		if id == "d" {
			return errNotFound
		}
		mu.Lock()
		deleted[id] = true
		mu.Unlock()
		return nil
	})

	failures := svc.DeleteMany(context.Background(), ids)
	assert.Equal(t, []models.DeleteFailure{
		{ID: "b", Error: "locked"},
		{ID: "d", Error: services.ErrStationNotFound.Error()},
	}, failures)
	assert.Equal(t, map[string]bool{"a": true, "c": true}, deleted)
}

func TestStationService_DeleteMany_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewStationService(services.NewMockStationReader(ctrl), services.NewMockStationWriter(ctrl))

	failures := svc.DeleteMany(context.Background(), nil)
	assert.NotNil(t, failures)
	assert.Empty(t, failures)
}
