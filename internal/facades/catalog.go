package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
)

// PingTimeout bounds the catalog health check.
const PingTimeout = 5 * time.Second

// connectedMessage is the greeting the catalog API returns on its base URL.
const connectedMessage = "PrepIt API is connected"

var ErrUnexpectedStatus = errors.New("unexpected catalog response status")

// CatalogHTTPFacade is a client for the read-only remote catalog API.
type CatalogHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewCatalogHTTPFacade creates a facade for baseURL. A nil client uses http.DefaultClient.
func NewCatalogHTTPFacade(baseURL string, client *http.Client) *CatalogHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &CatalogHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetEmployees fetches GET {base}/employees.
func (f *CatalogHTTPFacade) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := f.getJSON(ctx, "/employees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMenus fetches GET {base}/menu.
func (f *CatalogHTTPFacade) GetMenus(ctx context.Context) ([]models.Menu, error) {
	var out []models.Menu
	if err := f.getJSON(ctx, "/menu", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMenuItems fetches GET {base}/menu_items.
func (f *CatalogHTTPFacade) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	if err := f.getJSON(ctx, "/menu_items", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping reports whether the catalog API is reachable. A 2xx response is online unless
// its JSON body carries a message that is not the expected greeting.
func (f *CatalogHTTPFacade) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		logger.Log.Errorw("catalog ping failed", "error", err)
		return false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog ping failed", "url", f.baseURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("catalog ping failed", "url", f.baseURL, "status", resp.StatusCode)
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return false
	}

	var greeting struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &greeting); err != nil || greeting.Message == nil {
		return true
	}
	return strings.Contains(*greeting.Message, connectedMessage)
}

func (f *CatalogHTTPFacade) getJSON(ctx context.Context, path string, out any) error {
	url := f.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog request failed", "url", url, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("catalog request failed", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	logger.Log.Infow("catalog request", "url", url, "status", resp.StatusCode)
	return nil
}
