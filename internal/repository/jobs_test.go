package repository

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/common"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestJobID(t *testing.T) {
	id := JobID("Envio Diário Base Full - Banco Joelma", "BASEDIARIA.csv")
	assert.Regexp(t, hexID, id)

	// The id of the initial job is pinned: existing deployments already
	// hold rows under it.
	assert.Equal(t, "476ff69a79039e89d7044ebb9959fede2cc2468744b5c3ea7adda58423f4aebd", id)

	// Same pair, same id; different pair, different id.
	assert.Equal(t, id, JobID("Envio Diário Base Full - Banco Joelma", "BASEDIARIA.csv"))
	assert.NotEqual(t, id, JobID("Envio Diário Base Full - Banco Joelma", "OUTRA.csv"))
	assert.NotEqual(t, id, JobID("Outro Job", "BASEDIARIA.csv"))

	// Pairs that concatenate to the same string must not merge.
	assert.NotEqual(t, JobID("job-a", "b.csv"), JobID("job-ab", ".csv"))
}

func TestJobRepository_ResolveDistinguishesConcatenatedPairs(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, slog.Default())
	ctx := context.Background()

	first, err := repo.Resolve(ctx, "job-a", "b.csv", "")
	require.NoError(t, err)
	second, err := repo.Resolve(ctx, "job-ab", ".csv", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "job-ab", second.JobName)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestJobRepository_ResolveCreatesOnce(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, slog.Default())
	ctx := context.Background()

	first, err := repo.Resolve(ctx, "job-a", "a.csv", "primeiro envio")
	require.NoError(t, err)
	assert.Equal(t, JobID("job-a", "a.csv"), first.ID)
	assert.True(t, first.IsActive)
	assert.Equal(t, "primeiro envio", first.Description)

	// A second resolve returns the same row and ignores the new description.
	second, err := repo.Resolve(ctx, "job-a", "a.csv", "descrição diferente")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "primeiro envio", second.Description)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobRepository_GetNotFound(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, slog.Default())

	_, err := repo.Get(context.Background(), JobID("missing", "missing.csv"))
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestJobRepository_SetActive(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, slog.Default())
	ctx := context.Background()

	job, err := repo.Resolve(ctx, "job-b", "b.csv", "")
	require.NoError(t, err)

	updated, err := repo.SetActive(ctx, job.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	got, err := repo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestJobRepository_RuleGroupAttachment(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	jobs := NewJobRepository(client, logger)
	groups := NewRuleGroupRepository(client, logger)
	ctx := context.Background()

	job, err := jobs.Resolve(ctx, "job-c", "c.csv", "")
	require.NoError(t, err)
	group, err := groups.Create(ctx, SaveRuleGroupParams{Name: "grupo"})
	require.NoError(t, err)

	require.NoError(t, jobs.AttachRuleGroup(ctx, job.ID, group.ID))
	attached, err := jobs.RuleGroups(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.Equal(t, group.ID, attached[0].ID)

	require.NoError(t, jobs.DetachRuleGroup(ctx, job.ID, group.ID))
	attached, err = jobs.RuleGroups(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, attached)
}
