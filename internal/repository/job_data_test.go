package repository

import (
	"context"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, data JobDataRepository, jobID string, n int, outlierEvery int) {
	t.Helper()
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		outlier := outlierEvery > 0 && i%outlierEvery == 0
		_, err := data.Insert(context.Background(), InsertJobDataParams{
			JobID:      jobID,
			Attributes: map[string]string{"seq": strconv.Itoa(i)},
			ReceivedAt: base.Add(time.Duration(i) * 24 * time.Hour),
			Weekday:    "Monday",
			Month:      "June",
			IsOutlier:  outlier,
		})
		require.NoError(t, err)
	}
}

func TestJobDataRepository_HistoryWindow(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	jobs := NewJobRepository(client, logger)
	data := NewJobDataRepository(client, logger)
	ctx := context.Background()

	job, err := jobs.Resolve(ctx, "job-h", "h.csv", "")
	require.NoError(t, err)
	seedHistory(t, data, job.ID, 8, 0)

	rows, err := data.History(ctx, job.ID, 5, true)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// Most recent first.
	assert.Equal(t, "7", rows[0].Attributes["seq"])
	assert.Equal(t, "3", rows[4].Attributes["seq"])
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i].ReceivedAt.Before(rows[i-1].ReceivedAt))
	}
}

func TestJobDataRepository_HistoryExcludesOutliers(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	jobs := NewJobRepository(client, logger)
	data := NewJobDataRepository(client, logger)
	ctx := context.Background()

	job, err := jobs.Resolve(ctx, "job-o", "o.csv", "")
	require.NoError(t, err)
	seedHistory(t, data, job.ID, 6, 2) // seq 0, 2, 4 flagged

	filtered, err := data.History(ctx, job.ID, 10, true)
	require.NoError(t, err)
	require.Len(t, filtered, 3)
	for _, row := range filtered {
		assert.False(t, row.IsOutlier)
	}

	all, err := data.History(ctx, job.ID, 10, false)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestJobDataRepository_HistoryScopedToJob(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	jobs := NewJobRepository(client, logger)
	data := NewJobDataRepository(client, logger)
	ctx := context.Background()

	a, err := jobs.Resolve(ctx, "job-x", "x.csv", "")
	require.NoError(t, err)
	b, err := jobs.Resolve(ctx, "job-y", "y.csv", "")
	require.NoError(t, err)
	seedHistory(t, data, a.ID, 4, 0)
	seedHistory(t, data, b.ID, 2, 0)

	rows, err := data.History(ctx, a.ID, 10, true)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, a.ID, row.JobID)
	}
}
