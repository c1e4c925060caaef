package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/gen/ent/jobdata"
	"github.com/monailabs/monai/internal/entity"
)

// InsertJobDataParams wraps everything persisted for one accepted submission.
type InsertJobDataParams struct {
	JobID        string
	Attributes   map[string]string
	ReceivedAt   time.Time
	Weekday      string
	Month        string
	IsHoliday    bool
	IsOutlier    bool
	ForcedResult bool
}

type JobDataRepository interface {
	// History returns up to limit prior submissions for the job,
	// most-recent-first. With excludeOutliers set, rows previously
	// flagged anomalous are not eligible.
	History(ctx context.Context, jobID string, limit int, excludeOutliers bool) ([]*entity.JobData, error)
	Insert(ctx context.Context, p InsertJobDataParams) (*entity.JobData, error)
}

type jobDataRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobDataRepository(client *ent.Client, logger *slog.Logger) JobDataRepository {
	return &jobDataRepository{client: client, logger: logger}
}

func (r *jobDataRepository) History(ctx context.Context, jobID string, limit int, excludeOutliers bool) ([]*entity.JobData, error) {
	q := r.client.JobData.Query().Where(jobdata.JobID(jobID))
	if excludeOutliers {
		q = q.Where(jobdata.IsOutlier(false))
	}
	rows, err := q.
		Order(jobdata.ByReceivedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query history window", "job_id", jobID, "error", err)
		return nil, err
	}
	out := make([]*entity.JobData, len(rows))
	for i, d := range rows {
		out[i] = toJobData(d)
	}
	return out, nil
}

func (r *jobDataRepository) Insert(ctx context.Context, p InsertJobDataParams) (*entity.JobData, error) {
	d, err := r.client.JobData.Create().
		SetJobID(p.JobID).
		SetAttributes(p.Attributes).
		SetReceivedAt(p.ReceivedAt).
		SetWeekday(p.Weekday).
		SetMonth(p.Month).
		SetIsHoliday(p.IsHoliday).
		SetIsOutlier(p.IsOutlier).
		SetForcedResult(p.ForcedResult).
		Save(ctx)
	if err != nil {
		r.logger.Error("job_data insert failed", "job_id", p.JobID, "error", err)
		return nil, err
	}
	return toJobData(d), nil
}

func toJobData(d *ent.JobData) *entity.JobData {
	return &entity.JobData{
		ID:           d.ID,
		JobID:        d.JobID,
		Attributes:   d.Attributes,
		ReceivedAt:   d.ReceivedAt,
		Weekday:      d.Weekday,
		Month:        d.Month,
		IsHoliday:    d.IsHoliday,
		IsOutlier:    d.IsOutlier,
		ForcedResult: d.ForcedResult,
	}
}
