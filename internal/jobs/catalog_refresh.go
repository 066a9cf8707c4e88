package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/robfig/cron/v3"
)

//go:generate mockgen -source=catalog_refresh.go -destination=catalog_refresh_mock.go -package=jobs

// CatalogRefresher reloads the cached remote catalog.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshJob refreshes the catalog cache on a cron schedule.
type CatalogRefreshJob struct {
	refresher CatalogRefresher
	timeout   time.Duration
}

// NewCatalogRefreshJob creates a job whose runs are bounded by timeout.
func NewCatalogRefreshJob(refresher CatalogRefresher, timeout time.Duration) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		refresher: refresher,
		timeout:   timeout,
	}
}

// Run implements cron.Job. Failures are logged and retried on the next tick.
func (j *CatalogRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	if err := j.refresher.Refresh(ctx); err != nil {
		logger.Log.Errorw("catalog refresh failed", "error", err, "duration", time.Since(start))
		return
	}
	logger.Log.Infow("catalog refreshed", "duration", time.Since(start))
}

// NewScheduler returns a stopped cron scheduler with job registered under spec.
// Overlapping runs are skipped.
func NewScheduler(spec string, loc *time.Location, job cron.Job) (*cron.Cron, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return c, nil
}
