package services

import (
	"context"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=diagnostics.go -destination=diagnostics_mock.go -package=services

const (
	DatabaseStatusOK          = "ok"
	DatabaseStatusUnavailable = "unavailable"
)

// Counter counts the records of one type.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// DatabasePinger checks database connectivity.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// CatalogPinger checks the remote catalog API.
type CatalogPinger interface {
	Ping(ctx context.Context) bool
}

// RecordCounters groups the per-type counters used by diagnostics.
type RecordCounters struct {
	Stations           Counter
	PrepItems          Counter
	Recipes            Counter
	SubmittedPrepItems Counter
	Users              Counter
}

// DiagnosticsService reports record counts and collaborator health.
type DiagnosticsService struct {
	counters RecordCounters
	db       DatabasePinger
	catalog  CatalogPinger
}

// NewDiagnosticsService creates a new DiagnosticsService instance.
func NewDiagnosticsService(counters RecordCounters, db DatabasePinger, catalog CatalogPinger) *DiagnosticsService {
	return &DiagnosticsService{
		counters: counters,
		db:       db,
		catalog:  catalog,
	}
}

// Report gathers counts and health checks concurrently.
// A failed count fails the report; a failed ping only marks the collaborator down.
func (s *DiagnosticsService) Report(ctx context.Context) (*models.Diagnostics, error) {
	var d models.Diagnostics

	g, gctx := errgroup.WithContext(ctx)
	count := func(c Counter, dst *int64) {
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(s.counters.Stations, &d.Stations)
	count(s.counters.PrepItems, &d.PrepItems)
	count(s.counters.Recipes, &d.Recipes)
	count(s.counters.SubmittedPrepItems, &d.SubmittedPrepItems)
	count(s.counters.Users, &d.Users)

	g.Go(func() error {
		d.DatabaseStatus = DatabaseStatusOK
		if err := s.db.PingContext(gctx); err != nil {
			logger.Log.Errorw("database ping failed", "error", err)
			d.DatabaseStatus = DatabaseStatusUnavailable
		}
		return nil
	})
	g.Go(func() error {
		d.CatalogOnline = s.catalog != nil && s.catalog.Ping(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to build diagnostics report", "error", err)
		return nil, err
	}
	return &d, nil
}
