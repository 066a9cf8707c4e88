package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a catalog listing is not cached.
var ErrCacheMiss = errors.New("catalog listing not found in cache")

const (
	employeesKey = "catalog:employees"
	menusKey     = "catalog:menus"
	menuItemsKey = "catalog:menu_items"
)

// CatalogCacheRepository caches remote catalog listings in Redis
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached listings
}

// NewCatalogCacheRepository creates a new repository instance with optional TTL
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func (r *CatalogCacheRepository) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	return getCached[models.Employee](ctx, r.client, employeesKey)
}

func (r *CatalogCacheRepository) SetEmployees(ctx context.Context, employees []models.Employee) error {
	return setCached(ctx, r.client, employeesKey, employees, r.exp)
}

func (r *CatalogCacheRepository) GetMenus(ctx context.Context) ([]models.Menu, error) {
	return getCached[models.Menu](ctx, r.client, menusKey)
}

func (r *CatalogCacheRepository) SetMenus(ctx context.Context, menus []models.Menu) error {
	return setCached(ctx, r.client, menusKey, menus, r.exp)
}

func (r *CatalogCacheRepository) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return getCached[models.MenuItem](ctx, r.client, menuItemsKey)
}

func (r *CatalogCacheRepository) SetMenuItems(ctx context.Context, items []models.MenuItem) error {
	return setCached(ctx, r.client, menuItemsKey, items, r.exp)
}

func getCached[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	val, err := client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var out []T
	if err := json.Unmarshal(val, &out); err != nil {
		logger.Log.Infow(
			"key", key,
			"value_size", len(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"value_size", len(val),
		"result", len(out),
		"error", nil,
	)

	return out, nil
}

func setCached[T any](ctx context.Context, client *redis.Client, key string, items []T, exp time.Duration) error {
	if items == nil {
		items = []T{}
	}
	val, err := json.Marshal(items)
	if err != nil {
		return err
	}
	err = client.Set(ctx, key, val, exp).Err()

	logger.Log.Infow(
		"key", key,
		"count", len(items),
		"result", "ok",
		"error", err,
	)

	return err
}
