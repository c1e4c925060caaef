package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/gen/ent/querylog"
	"github.com/monailabs/monai/internal/entity"
)

// Fingerprint derives a stable pseudonymous identifier from client
// provenance. Identical (address, user-agent, referer) triples always
// map to the same value, so repeated sources can be correlated without
// joining on the raw identifiers.
func Fingerprint(ipAddress, userAgent, referer string) string {
	sum := sha256.Sum256([]byte(ipAddress + userAgent + referer))
	return hex.EncodeToString(sum[:])
}

// RecordParams wraps one audit entry. Result is "true", "false" or the
// skipped-evaluation sentinel "null".
type RecordParams struct {
	JobID        string
	Attributes   map[string]string
	Result       string
	Explanation  string
	Provenance   entity.Provenance
	ReceivedAt   time.Time
	HistoryCount int
}

type QueryLogRepository interface {
	Record(ctx context.Context, p RecordParams) (*entity.QueryLogEntry, error)
	List(ctx context.Context, from, to *time.Time) ([]*entity.QueryLogEntry, error)
	CountByResult(ctx context.Context) (map[string]int, error)
}

type queryLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQueryLogRepository(client *ent.Client, logger *slog.Logger) QueryLogRepository {
	return &queryLogRepository{client: client, logger: logger}
}

func (r *queryLogRepository) Record(ctx context.Context, p RecordParams) (*entity.QueryLogEntry, error) {
	builder := r.client.QueryLog.Create().
		SetJobID(p.JobID).
		SetResult(p.Result).
		SetIPAddress(p.Provenance.IPAddress).
		SetFingerprint(Fingerprint(p.Provenance.IPAddress, p.Provenance.UserAgent, p.Provenance.Referer)).
		SetHistoryCount(p.HistoryCount)
	if p.Attributes != nil {
		builder = builder.SetAttributes(p.Attributes)
	}
	if p.Explanation != "" {
		builder = builder.SetExplanation(p.Explanation)
	}
	if p.Provenance.UserAgent != "" {
		builder = builder.SetUserAgent(p.Provenance.UserAgent)
	}
	if p.Provenance.Referer != "" {
		builder = builder.SetReferer(p.Provenance.Referer)
	}
	if !p.ReceivedAt.IsZero() {
		builder = builder.SetReceivedAt(p.ReceivedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("audit record failed", "job_id", p.JobID, "result", p.Result, "error", err)
		return nil, err
	}
	r.logger.Info("audit.recorded",
		"job_id", p.JobID,
		"result", p.Result,
		"fingerprint", row.Fingerprint,
		"history_count", p.HistoryCount,
	)
	return toQueryLogEntry(row), nil
}

func (r *queryLogRepository) List(ctx context.Context, from, to *time.Time) ([]*entity.QueryLogEntry, error) {
	q := r.client.QueryLog.Query()
	if from != nil {
		q = q.Where(querylog.ReceivedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(querylog.ReceivedAtLTE(*to))
	}
	rows, err := q.Order(querylog.ByReceivedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list audit entries", "error", err)
		return nil, err
	}
	out := make([]*entity.QueryLogEntry, len(rows))
	for i, row := range rows {
		out[i] = toQueryLogEntry(row)
	}
	return out, nil
}

func (r *queryLogRepository) CountByResult(ctx context.Context) (map[string]int, error) {
	var buckets []struct {
		Result string `json:"result"`
		Count  int    `json:"count"`
	}
	err := r.client.QueryLog.Query().
		GroupBy(querylog.FieldResult).
		Aggregate(ent.Count()).
		Scan(ctx, &buckets)
	if err != nil {
		r.logger.Error("failed to count audit entries", "error", err)
		return nil, err
	}
	out := make(map[string]int, len(buckets))
	for _, b := range buckets {
		out[b.Result] = b.Count
	}
	return out, nil
}

func toQueryLogEntry(q *ent.QueryLog) *entity.QueryLogEntry {
	return &entity.QueryLogEntry{
		ID:           q.ID,
		JobID:        q.JobID,
		Attributes:   q.Attributes,
		Result:       q.Result,
		Explanation:  q.Explanation,
		IPAddress:    q.IPAddress,
		UserAgent:    q.UserAgent,
		Referer:      q.Referer,
		Fingerprint:  q.Fingerprint,
		ReceivedAt:   q.ReceivedAt,
		HistoryCount: q.HistoryCount,
	}
}
