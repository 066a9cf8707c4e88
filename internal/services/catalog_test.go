package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
	"github.com/prepit-kitchen/prepit/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Employees(t *testing.T) {
	employees := []models.Employee{{ID: 1, DisplayName: "Ana"}}

	tests := []struct {
		name     string
		cacheGet []models.Employee
		cacheErr error
		fetch    bool
		fetchErr error
		setErr   error
		want     []models.Employee
		wantErr  bool
	}{
		{name: "cache hit", cacheGet: employees, want: employees},
		{name: "cache miss", cacheErr: repositories.ErrCacheMiss, fetch: true, want: employees},
		{name: "cache error is ignored", cacheErr: errors.New("redis down"), fetch: true, setErr: errors.New("redis down"), want: employees},
		{name: "fetch error", cacheErr: repositories.ErrCacheMiss, fetch: true, fetchErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := services.NewMockCatalogFetcher(ctrl)
			cache := services.NewMockCatalogCache(ctrl)
			svc := services.NewCatalogService(fetcher, cache)

			cache.EXPECT().GetEmployees(gomock.Any()).Return(tt.cacheGet, tt.cacheErr)
			if tt.fetch {
				if tt.fetchErr != nil {
					fetcher.EXPECT().GetEmployees(gomock.Any()).Return(nil, tt.fetchErr)
				} else {
					fetcher.EXPECT().GetEmployees(gomock.Any()).Return(employees, nil)
					cache.EXPECT().SetEmployees(gomock.Any(), employees).Return(tt.setErr)
				}
			}

			got, err := svc.Employees(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := services.NewMockCatalogFetcher(ctrl)
	svc := services.NewCatalogService(fetcher, nil)
	ctx := context.Background()

	fetcher.EXPECT().GetMenus(gomock.Any()).Return(nil, nil)
	menus, err := svc.Menus(ctx)
	require.NoError(t, err)
	assert.NotNil(t, menus)
	assert.Empty(t, menus)

	fetcher.EXPECT().GetMenuItems(gomock.Any()).Return([]models.MenuItem{{ID: 4}}, nil)
	items, err := svc.MenuItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.NoError(t, svc.Refresh(ctx))
}

func TestCatalogService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := services.NewMockCatalogFetcher(ctrl)
	cache := services.NewMockCatalogCache(ctrl)
	svc := services.NewCatalogService(fetcher, cache)

	fetcher.EXPECT().GetEmployees(gomock.Any()).Return([]models.Employee{{ID: 1}}, nil)
	fetcher.EXPECT().GetMenus(gomock.Any()).Return([]models.Menu{{ID: 2}}, nil)
	fetcher.EXPECT().GetMenuItems(gomock.Any()).Return([]models.MenuItem{{ID: 3}}, nil)
	cache.EXPECT().SetEmployees(gomock.Any(), []models.Employee{{ID: 1}}).Return(nil)
	cache.EXPECT().SetMenus(gomock.Any(), []models.Menu{{ID: 2}}).Return(nil)
	cache.EXPECT().SetMenuItems(gomock.Any(), []models.MenuItem{{ID: 3}}).Return(nil)

	assert.NoError(t, svc.Refresh(context.Background()))
}

func TestCatalogService_Refresh_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := services.NewMockCatalogFetcher(ctrl)
	cache := services.NewMockCatalogCache(ctrl)
	svc := services.NewCatalogService(fetcher, cache)

	fetcher.EXPECT().GetEmployees(gomock.Any()).Return(nil, errors.New("offline"))
	fetcher.EXPECT().GetMenus(gomock.Any()).Return(nil, errors.New("offline")).AnyTimes()
	fetcher.EXPECT().GetMenuItems(gomock.Any()).Return(nil, errors.New("offline")).AnyTimes()

	assert.EqualError(t, svc.Refresh(context.Background()), "offline")
}

func TestCatalogService_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := services.NewMockCatalogFetcher(ctrl)
	svc := services.NewCatalogService(fetcher, nil)

	fetcher.EXPECT().Ping(gomock.Any()).Return(true)
	assert.True(t, svc.Online(context.Background()))
}
