package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRefreshJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		err  error
	}{
		{"Success", nil},
		{"Failure", errors.New("catalog offline")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := NewMockCatalogRefresher(ctrl)
			refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
				return tt.err
			})

			NewCatalogRefreshJob(refresher, time.Minute).Run()
		})
	}
}

func TestNewScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewCatalogRefreshJob(NewMockCatalogRefresher(ctrl), time.Second)

	c, err := NewScheduler("@every 15m", nil, job)
	require.NoError(t, err)
	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, time.UTC, c.Location())

	_, err = NewScheduler("not a schedule", time.UTC, job)
	assert.Error(t, err)
}
