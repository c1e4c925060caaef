package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/entity"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint("10.0.0.1", "curl/8.0", "")
	assert.Regexp(t, hexID, a)
	assert.Equal(t, a, Fingerprint("10.0.0.1", "curl/8.0", ""))
	assert.NotEqual(t, a, Fingerprint("10.0.0.2", "curl/8.0", ""))
	assert.NotEqual(t, a, Fingerprint("10.0.0.1", "curl/8.1", ""))
	assert.NotEqual(t, a, Fingerprint("10.0.0.1", "curl/8.0", "http://x"))
}

func TestQueryLogRepository_Record(t *testing.T) {
	client := newTestClient(t)
	repo := NewQueryLogRepository(client, slog.Default())
	ctx := context.Background()

	at := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	entry, err := repo.Record(ctx, RecordParams{
		JobID:       JobID("job-q", "q.csv"),
		Attributes:  map[string]string{"quantidade_linhas": "70000"},
		Result:      "true",
		Explanation: "consistente com o histórico",
		Provenance: entity.Provenance{
			IPAddress: "10.0.0.1",
			UserAgent: "loadgen/1",
		},
		ReceivedAt:   at,
		HistoryCount: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "true", entry.Result)
	assert.Equal(t, Fingerprint("10.0.0.1", "loadgen/1", ""), entry.Fingerprint)
	assert.Equal(t, 10, entry.HistoryCount)
	assert.True(t, entry.ReceivedAt.Equal(at))
}

func TestQueryLogRepository_ListWindow(t *testing.T) {
	client := newTestClient(t)
	repo := NewQueryLogRepository(client, slog.Default())
	ctx := context.Background()

	jobID := JobID("job-w", "w.csv")
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.Record(ctx, RecordParams{
			JobID:      jobID,
			Result:     "true",
			Provenance: entity.Provenance{IPAddress: "10.0.0.1"},
			ReceivedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}

	from := base.Add(24 * time.Hour)
	to := base.Add(3 * 24 * time.Hour)
	rows, err := repo.List(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Most recent first.
	assert.True(t, rows[0].ReceivedAt.After(rows[2].ReceivedAt))
}

func TestQueryLogRepository_CountByResult(t *testing.T) {
	client := newTestClient(t)
	repo := NewQueryLogRepository(client, slog.Default())
	ctx := context.Background()

	jobID := JobID("job-c", "c.csv")
	for _, result := range []string{"true", "true", "false", "null"} {
		_, err := repo.Record(ctx, RecordParams{
			JobID:      jobID,
			Result:     result,
			Provenance: entity.Provenance{IPAddress: "10.0.0.1"},
			ReceivedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	counts, err := repo.CountByResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["true"])
	assert.Equal(t, 1, counts["false"])
	assert.Equal(t, 1, counts["null"])
}
