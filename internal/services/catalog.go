package services

import (
	"context"
	"errors"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

// CatalogFetcher reads the remote catalog API.
type CatalogFetcher interface {
	GetEmployees(ctx context.Context) ([]models.Employee, error)
	GetMenus(ctx context.Context) ([]models.Menu, error)
	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	Ping(ctx context.Context) bool
}

// CatalogCache caches catalog listings.
type CatalogCache interface {
	GetEmployees(ctx context.Context) ([]models.Employee, error)
	SetEmployees(ctx context.Context, employees []models.Employee) error
	GetMenus(ctx context.Context) ([]models.Menu, error)
	SetMenus(ctx context.Context, menus []models.Menu) error
	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	SetMenuItems(ctx context.Context, items []models.MenuItem) error
}

// CatalogService serves the remote catalog through a cache.
type CatalogService struct {
	fetcher CatalogFetcher
	cache   CatalogCache
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(fetcher CatalogFetcher, cache CatalogCache) *CatalogService {
	return &CatalogService{
		fetcher: fetcher,
		cache:   cache,
	}
}

func (s *CatalogService) Employees(ctx context.Context) ([]models.Employee, error) {
	var get func(context.Context) ([]models.Employee, error)
	var set func(context.Context, []models.Employee) error
	if s.cache != nil {
		get, set = s.cache.GetEmployees, s.cache.SetEmployees
	}
	return readThrough(ctx, "employees", get, s.fetcher.GetEmployees, set)
}

func (s *CatalogService) Menus(ctx context.Context) ([]models.Menu, error) {
	var get func(context.Context) ([]models.Menu, error)
	var set func(context.Context, []models.Menu) error
	if s.cache != nil {
		get, set = s.cache.GetMenus, s.cache.SetMenus
	}
	return readThrough(ctx, "menus", get, s.fetcher.GetMenus, set)
}

func (s *CatalogService) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var get func(context.Context) ([]models.MenuItem, error)
	var set func(context.Context, []models.MenuItem) error
	if s.cache != nil {
		get, set = s.cache.GetMenuItems, s.cache.SetMenuItems
	}
	return readThrough(ctx, "menu_items", get, s.fetcher.GetMenuItems, set)
}

// Refresh reloads every listing from the remote API into the cache.
func (s *CatalogService) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return refresh(ctx, s.fetcher.GetEmployees, s.cache.SetEmployees) })
	g.Go(func() error { return refresh(ctx, s.fetcher.GetMenus, s.cache.SetMenus) })
	g.Go(func() error { return refresh(ctx, s.fetcher.GetMenuItems, s.cache.SetMenuItems) })
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("catalog refresh failed", "error", err)
		return err
	}

	logger.Log.Infow("catalog cache refreshed")
	return nil
}

// Online reports whether the remote catalog API is reachable.
func (s *CatalogService) Online(ctx context.Context) bool {
	return s.fetcher.Ping(ctx)
}

// readThrough serves from the cache, falling back to fetch and filling the cache.
// Cache errors are logged and otherwise ignored.
func readThrough[T any](
	ctx context.Context,
	name string,
	get func(context.Context) ([]T, error),
	fetch func(context.Context) ([]T, error),
	set func(context.Context, []T) error,
) ([]T, error) {
	if get != nil {
		cached, err := get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Errorw("failed to read catalog cache", "listing", name, "error", err)
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch catalog listing", "listing", name, "error", err)
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	if set != nil {
		if err := set(ctx, items); err != nil {
			logger.Log.Errorw("failed to cache catalog listing", "listing", name, "error", err)
		}
	}
	return items, nil
}

func refresh[T any](ctx context.Context, fetch func(context.Context) ([]T, error), set func(context.Context, []T) error) error {
	items, err := fetch(ctx)
	if err != nil {
		return err
	}
	return set(ctx, items)
}
