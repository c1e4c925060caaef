package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/rule"
	"github.com/monailabs/monai/gen/ent/rulegroup"
	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/entity"
)

// DefaultRuleText is always the first rule of every evaluation,
// regardless of what is attached to the job.
const DefaultRuleText = "Considere que os dados mais recentes do histórico têm maior peso na avaliação de consistência do novo envio."

// SaveRuleParams carries the mutable attributes of a rule.
type SaveRuleParams struct {
	Name        string
	Description string
	RuleText    string
	IsActive    *bool
}

type RuleRepository interface {
	Create(ctx context.Context, p SaveRuleParams) (*entity.Rule, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Rule, error)
	List(ctx context.Context) ([]*entity.Rule, error)
	Update(ctx context.Context, id uuid.UUID, p SaveRuleParams) (*entity.Rule, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ActiveRuleTexts aggregates the rule texts applicable to a job:
	// the default rule first, then the texts of active rules reachable
	// through the job's active rule groups, in (group, rule) creation
	// order. Duplicate texts across groups collapse to one occurrence.
	ActiveRuleTexts(ctx context.Context, jobID string) ([]string, error)
}

type ruleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRuleRepository(client *ent.Client, logger *slog.Logger) RuleRepository {
	return &ruleRepository{client: client, logger: logger}
}

func (r *ruleRepository) Create(ctx context.Context, p SaveRuleParams) (*entity.Rule, error) {
	builder := r.client.Rule.Create().
		SetName(p.Name).
		SetRuleText(p.RuleText)
	if p.Description != "" {
		builder = builder.SetDescription(p.Description)
	}
	if p.IsActive != nil {
		builder = builder.SetIsActive(*p.IsActive)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("rule create failed", "name", p.Name, "error", err)
		return nil, err
	}
	return toRule(created), nil
}

func (r *ruleRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Rule, error) {
	row, err := r.client.Rule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("RULE_NOT_FOUND", "regra não encontrada: "+id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toRule(row), nil
}

func (r *ruleRepository) List(ctx context.Context) ([]*entity.Rule, error) {
	rows, err := r.client.Rule.Query().Order(rule.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list rules", "error", err)
		return nil, err
	}
	out := make([]*entity.Rule, len(rows))
	for i, row := range rows {
		out[i] = toRule(row)
	}
	return out, nil
}

func (r *ruleRepository) Update(ctx context.Context, id uuid.UUID, p SaveRuleParams) (*entity.Rule, error) {
	builder := r.client.Rule.UpdateOneID(id)
	if p.Name != "" {
		builder = builder.SetName(p.Name)
	}
	if p.Description != "" {
		builder = builder.SetDescription(p.Description)
	}
	if p.RuleText != "" {
		builder = builder.SetRuleText(p.RuleText)
	}
	if p.IsActive != nil {
		builder = builder.SetIsActive(*p.IsActive)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("rule update failed", "rule_id", id, "error", err)
		return nil, err
	}
	return toRule(row), nil
}

func (r *ruleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Rule.DeleteOneID(id).Exec(ctx)
	if err != nil {
		r.logger.Error("rule delete failed", "rule_id", id, "error", err)
	}
	return err
}

func (r *ruleRepository) ActiveRuleTexts(ctx context.Context, jobID string) ([]string, error) {
	groups, err := r.client.Job.Query().
		Where(job.ID(jobID)).
		QueryRuleGroups().
		Where(rulegroup.IsActive(true)).
		Order(rulegroup.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query rule groups", "job_id", jobID, "error", err)
		return nil, err
	}

	texts := []string{DefaultRuleText}
	seen := map[string]struct{}{DefaultRuleText: {}}
	for _, g := range groups {
		rules, err := r.client.RuleGroup.QueryRules(g).
			Where(rule.IsActive(true)).
			Order(rule.ByCreatedAt()).
			All(ctx)
		if err != nil {
			r.logger.Error("failed to query group rules", "group_id", g.ID, "error", err)
			return nil, err
		}
		for _, row := range rules {
			if _, dup := seen[row.RuleText]; dup {
				continue
			}
			seen[row.RuleText] = struct{}{}
			texts = append(texts, row.RuleText)
		}
	}
	return texts, nil
}

func toRule(r *ent.Rule) *entity.Rule {
	return &entity.Rule{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		RuleText:    r.RuleText,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
