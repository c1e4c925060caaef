package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestRuleRepository_CRUD(t *testing.T) {
	client := newTestClient(t)
	repo := NewRuleRepository(client, slog.Default())
	ctx := context.Background()

	created, err := repo.Create(ctx, SaveRuleParams{
		Name:        "Validação de Máximo",
		Description: "max deve superar min",
		RuleText:    "O valor de 'max' deve ser maior que o valor de 'min'.",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	updated, err := repo.Update(ctx, created.ID, SaveRuleParams{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.RuleText, updated.RuleText)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.Get(ctx, created.ID)
	assert.Error(t, err)
}

func TestActiveRuleTexts_DefaultAlwaysFirst(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	jobs := NewJobRepository(client, logger)
	rules := NewRuleRepository(client, logger)
	ctx := context.Background()

	job, err := jobs.Resolve(ctx, "job-r", "r.csv", "")
	require.NoError(t, err)

	texts, err := rules.ActiveRuleTexts(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, DefaultRuleText, texts[0])
}

func TestActiveRuleTexts_AggregationOrderAndFilters(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	jobs := NewJobRepository(client, logger)
	rules := NewRuleRepository(client, logger)
	groups := NewRuleGroupRepository(client, logger)
	ctx := context.Background()

	job, err := jobs.Resolve(ctx, "job-s", "s.csv", "")
	require.NoError(t, err)

	g1, err := groups.Create(ctx, SaveRuleGroupParams{Name: "grupo 1"})
	require.NoError(t, err)
	g2, err := groups.Create(ctx, SaveRuleGroupParams{Name: "grupo 2"})
	require.NoError(t, err)
	inactive, err := groups.Create(ctx, SaveRuleGroupParams{Name: "grupo inativo", IsActive: boolPtr(false)})
	require.NoError(t, err)

	r1, err := rules.Create(ctx, SaveRuleParams{Name: "r1", RuleText: "regra um"})
	require.NoError(t, err)
	r2, err := rules.Create(ctx, SaveRuleParams{Name: "r2", RuleText: "regra dois"})
	require.NoError(t, err)
	rInactive, err := rules.Create(ctx, SaveRuleParams{Name: "r3", RuleText: "regra inativa", IsActive: boolPtr(false)})
	require.NoError(t, err)
	rDup, err := rules.Create(ctx, SaveRuleParams{Name: "r4", RuleText: "regra um"})
	require.NoError(t, err)
	rOther, err := rules.Create(ctx, SaveRuleParams{Name: "r5", RuleText: "regra de grupo inativo"})
	require.NoError(t, err)

	require.NoError(t, groups.AddRule(ctx, g1.ID, r1.ID))
	require.NoError(t, groups.AddRule(ctx, g1.ID, rInactive.ID))
	require.NoError(t, groups.AddRule(ctx, g2.ID, r2.ID))
	require.NoError(t, groups.AddRule(ctx, g2.ID, rDup.ID))
	require.NoError(t, groups.AddRule(ctx, inactive.ID, rOther.ID))

	require.NoError(t, jobs.AttachRuleGroup(ctx, job.ID, g1.ID))
	require.NoError(t, jobs.AttachRuleGroup(ctx, job.ID, g2.ID))
	require.NoError(t, jobs.AttachRuleGroup(ctx, job.ID, inactive.ID))

	texts, err := rules.ActiveRuleTexts(ctx, job.ID)
	require.NoError(t, err)

	// Default first, then active rules of active groups in creation
	// order. The duplicate text and everything inactive are dropped.
	assert.Equal(t, []string{DefaultRuleText, "regra um", "regra dois"}, texts)
}
