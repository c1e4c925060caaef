package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/gen/ent/rule"
	"github.com/monailabs/monai/gen/ent/rulegroup"
	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/entity"
)

// SaveRuleGroupParams carries the mutable attributes of a rule group.
type SaveRuleGroupParams struct {
	Name        string
	Description string
	IsActive    *bool
}

type RuleGroupRepository interface {
	Create(ctx context.Context, p SaveRuleGroupParams) (*entity.RuleGroup, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.RuleGroup, error)
	List(ctx context.Context) ([]*entity.RuleGroup, error)
	Update(ctx context.Context, id uuid.UUID, p SaveRuleGroupParams) (*entity.RuleGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddRule(ctx context.Context, groupID, ruleID uuid.UUID) error
	RemoveRule(ctx context.Context, groupID, ruleID uuid.UUID) error
	Rules(ctx context.Context, groupID uuid.UUID) ([]*entity.Rule, error)
}

type ruleGroupRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRuleGroupRepository(client *ent.Client, logger *slog.Logger) RuleGroupRepository {
	return &ruleGroupRepository{client: client, logger: logger}
}

func (r *ruleGroupRepository) Create(ctx context.Context, p SaveRuleGroupParams) (*entity.RuleGroup, error) {
	builder := r.client.RuleGroup.Create().SetName(p.Name)
	if p.Description != "" {
		builder = builder.SetDescription(p.Description)
	}
	if p.IsActive != nil {
		builder = builder.SetIsActive(*p.IsActive)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("rule group create failed", "name", p.Name, "error", err)
		return nil, err
	}
	return toRuleGroup(created), nil
}

func (r *ruleGroupRepository) Get(ctx context.Context, id uuid.UUID) (*entity.RuleGroup, error) {
	row, err := r.client.RuleGroup.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("RULE_GROUP_NOT_FOUND", "grupo de regras não encontrado: "+id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toRuleGroup(row), nil
}

func (r *ruleGroupRepository) List(ctx context.Context) ([]*entity.RuleGroup, error) {
	rows, err := r.client.RuleGroup.Query().Order(rulegroup.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list rule groups", "error", err)
		return nil, err
	}
	out := make([]*entity.RuleGroup, len(rows))
	for i, row := range rows {
		out[i] = toRuleGroup(row)
	}
	return out, nil
}

func (r *ruleGroupRepository) Update(ctx context.Context, id uuid.UUID, p SaveRuleGroupParams) (*entity.RuleGroup, error) {
	builder := r.client.RuleGroup.UpdateOneID(id)
	if p.Name != "" {
		builder = builder.SetName(p.Name)
	}
	if p.Description != "" {
		builder = builder.SetDescription(p.Description)
	}
	if p.IsActive != nil {
		builder = builder.SetIsActive(*p.IsActive)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("rule group update failed", "group_id", id, "error", err)
		return nil, err
	}
	return toRuleGroup(row), nil
}

func (r *ruleGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.RuleGroup.DeleteOneID(id).Exec(ctx)
	if err != nil {
		r.logger.Error("rule group delete failed", "group_id", id, "error", err)
	}
	return err
}

func (r *ruleGroupRepository) AddRule(ctx context.Context, groupID, ruleID uuid.UUID) error {
	err := r.client.RuleGroup.UpdateOneID(groupID).AddRuleIDs(ruleID).Exec(ctx)
	if err != nil {
		r.logger.Error("rule add to group failed", "group_id", groupID, "rule_id", ruleID, "error", err)
	}
	return err
}

func (r *ruleGroupRepository) RemoveRule(ctx context.Context, groupID, ruleID uuid.UUID) error {
	err := r.client.RuleGroup.UpdateOneID(groupID).RemoveRuleIDs(ruleID).Exec(ctx)
	if err != nil {
		r.logger.Error("rule remove from group failed", "group_id", groupID, "rule_id", ruleID, "error", err)
	}
	return err
}

func (r *ruleGroupRepository) Rules(ctx context.Context, groupID uuid.UUID) ([]*entity.Rule, error) {
	rows, err := r.client.RuleGroup.Query().
		Where(rulegroup.ID(groupID)).
		QueryRules().
		Order(rule.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Rule, len(rows))
	for i, row := range rows {
		out[i] = toRule(row)
	}
	return out, nil
}

func toRuleGroup(g *ent.RuleGroup) *entity.RuleGroup {
	return &entity.RuleGroup{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
