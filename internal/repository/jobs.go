package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/google/uuid"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/rulegroup"
	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/entity"
)

// JobID derives the content-addressed identity of a job from its
// (name, filename) pair. The same pair always hashes to the same id.
// The separator keeps distinct pairs from concatenating to the same
// input and matches ids already present in existing deployments.
func JobID(name, filename string) string {
	sum := sha256.Sum256([]byte(name + "-" + filename))
	return hex.EncodeToString(sum[:])
}

type JobRepository interface {
	// Resolve returns the job for (name, filename), creating it on first
	// sight. Repeated calls never create a duplicate row.
	Resolve(ctx context.Context, name, filename, description string) (*entity.Job, error)
	Get(ctx context.Context, id string) (*entity.Job, error)
	List(ctx context.Context) ([]*entity.Job, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.Job, error)
	SetDescription(ctx context.Context, id, description string) (*entity.Job, error)
	AttachRuleGroup(ctx context.Context, jobID string, groupID uuid.UUID) error
	DetachRuleGroup(ctx context.Context, jobID string, groupID uuid.UUID) error
	RuleGroups(ctx context.Context, jobID string) ([]*entity.RuleGroup, error)
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{client: client, logger: logger}
}

func (r *jobRepository) Resolve(ctx context.Context, name, filename, description string) (*entity.Job, error) {
	id := JobID(name, filename)

	j, err := r.client.Job.Get(ctx, id)
	if err == nil {
		return toJob(j), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("job lookup failed", "job_id", id, "error", err)
		return nil, err
	}

	builder := r.client.Job.Create().
		SetID(id).
		SetJobName(name).
		SetJobFilename(filename).
		SetIsActive(true)
	if description != "" {
		builder = builder.SetDescription(description)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// Two first-sight submissions can race; the loser re-reads.
		if ent.IsConstraintError(err) {
			if j, gerr := r.client.Job.Get(ctx, id); gerr == nil {
				return toJob(j), nil
			}
		}
		r.logger.Error("job create failed", "job_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("job registered", "job_id", id, "job_name", name, "job_filename", filename)
	return toJob(created), nil
}

func (r *jobRepository) Get(ctx context.Context, id string) (*entity.Job, error) {
	j, err := r.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_NOT_FOUND", "job não encontrado: "+id, common.ErrNotFound)
		}
		return nil, err
	}
	return toJob(j), nil
}

func (r *jobRepository) List(ctx context.Context) ([]*entity.Job, error) {
	rows, err := r.client.Job.Query().Order(job.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "error", err)
		return nil, err
	}
	out := make([]*entity.Job, len(rows))
	for i, j := range rows {
		out[i] = toJob(j)
	}
	return out, nil
}

func (r *jobRepository) SetActive(ctx context.Context, id string, active bool) (*entity.Job, error) {
	j, err := r.client.Job.UpdateOneID(id).SetIsActive(active).Save(ctx)
	if err != nil {
		r.logger.Error("job update failed", "job_id", id, "error", err)
		return nil, err
	}
	return toJob(j), nil
}

func (r *jobRepository) SetDescription(ctx context.Context, id, description string) (*entity.Job, error) {
	j, err := r.client.Job.UpdateOneID(id).SetDescription(description).Save(ctx)
	if err != nil {
		r.logger.Error("job update failed", "job_id", id, "error", err)
		return nil, err
	}
	return toJob(j), nil
}

func (r *jobRepository) AttachRuleGroup(ctx context.Context, jobID string, groupID uuid.UUID) error {
	err := r.client.Job.UpdateOneID(jobID).AddRuleGroupIDs(groupID).Exec(ctx)
	if err != nil {
		r.logger.Error("rule group attach failed", "job_id", jobID, "group_id", groupID, "error", err)
	}
	return err
}

func (r *jobRepository) DetachRuleGroup(ctx context.Context, jobID string, groupID uuid.UUID) error {
	err := r.client.Job.UpdateOneID(jobID).RemoveRuleGroupIDs(groupID).Exec(ctx)
	if err != nil {
		r.logger.Error("rule group detach failed", "job_id", jobID, "group_id", groupID, "error", err)
	}
	return err
}

func (r *jobRepository) RuleGroups(ctx context.Context, jobID string) ([]*entity.RuleGroup, error) {
	groups, err := r.client.Job.Query().
		Where(job.ID(jobID)).
		QueryRuleGroups().
		Order(rulegroup.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.RuleGroup, len(groups))
	for i, g := range groups {
		out[i] = toRuleGroup(g)
	}
	return out, nil
}

func toJob(j *ent.Job) *entity.Job {
	return &entity.Job{
		ID:          j.ID,
		JobName:     j.JobName,
		JobFilename: j.JobFilename,
		Description: j.Description,
		IsActive:    j.IsActive,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
