package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/entity"
	"github.com/monailabs/monai/internal/repository"
)

// fakeStore backs all four repositories with slices, so evaluator
// behavior can be tested without a database.
type fakeStore struct {
	job       *entity.Job
	history   []*entity.JobData
	ruleTexts []string
	inserted  []repository.InsertJobDataParams
	audited   []repository.RecordParams
}

type fakeJobs struct{ s *fakeStore }

func (f fakeJobs) Resolve(_ context.Context, name, filename, description string) (*entity.Job, error) {
	if f.s.job == nil {
		f.s.job = &entity.Job{
			ID:          repository.JobID(name, filename),
			JobName:     name,
			JobFilename: filename,
			Description: description,
			IsActive:    true,
		}
	}
	return f.s.job, nil
}
func (f fakeJobs) Get(context.Context, string) (*entity.Job, error)         { return f.s.job, nil }
func (f fakeJobs) List(context.Context) ([]*entity.Job, error)              { return nil, nil }
func (f fakeJobs) SetActive(context.Context, string, bool) (*entity.Job, error) {
	return f.s.job, nil
}
func (f fakeJobs) SetDescription(context.Context, string, string) (*entity.Job, error) {
	return f.s.job, nil
}
func (f fakeJobs) AttachRuleGroup(context.Context, string, uuid.UUID) error { return nil }
func (f fakeJobs) DetachRuleGroup(context.Context, string, uuid.UUID) error { return nil }
func (f fakeJobs) RuleGroups(context.Context, string) ([]*entity.RuleGroup, error) {
	return nil, nil
}

type fakeData struct{ s *fakeStore }

func (f fakeData) History(_ context.Context, _ string, limit int, excludeOutliers bool) ([]*entity.JobData, error) {
	out := make([]*entity.JobData, 0, limit)
	for _, h := range f.s.history {
		if excludeOutliers && h.IsOutlier {
			continue
		}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
func (f fakeData) Insert(_ context.Context, p repository.InsertJobDataParams) (*entity.JobData, error) {
	f.s.inserted = append(f.s.inserted, p)
	return &entity.JobData{ID: uuid.New(), JobID: p.JobID}, nil
}

type fakeRules struct{ s *fakeStore }

func (f fakeRules) Create(context.Context, repository.SaveRuleParams) (*entity.Rule, error) {
	return nil, nil
}
func (f fakeRules) Get(context.Context, uuid.UUID) (*entity.Rule, error)  { return nil, nil }
func (f fakeRules) List(context.Context) ([]*entity.Rule, error)          { return nil, nil }
func (f fakeRules) Update(context.Context, uuid.UUID, repository.SaveRuleParams) (*entity.Rule, error) {
	return nil, nil
}
func (f fakeRules) Delete(context.Context, uuid.UUID) error { return nil }
func (f fakeRules) ActiveRuleTexts(context.Context, string) ([]string, error) {
	return f.s.ruleTexts, nil
}

type fakeAudit struct{ s *fakeStore }

func (f fakeAudit) Record(_ context.Context, p repository.RecordParams) (*entity.QueryLogEntry, error) {
	f.s.audited = append(f.s.audited, p)
	return &entity.QueryLogEntry{ID: uuid.New(), JobID: p.JobID, Result: p.Result}, nil
}
func (f fakeAudit) List(context.Context, *time.Time, *time.Time) ([]*entity.QueryLogEntry, error) {
	return nil, nil
}
func (f fakeAudit) CountByResult(context.Context) (map[string]int, error) { return nil, nil }

type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Invoke(_ context.Context, prompt string, _ int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func newTestEvaluator(t *testing.T, s *fakeStore, client *fakeLLM) *Evaluator {
	t.Helper()
	calendar, err := NewCalendar("America/Sao_Paulo")
	require.NoError(t, err)
	return NewEvaluator(
		fakeJobs{s}, fakeData{s}, fakeRules{s}, fakeAudit{s},
		client, calendar, 200, nil,
	)
}

func historyRows(n int) []*entity.JobData {
	rows := make([]*entity.JobData, n)
	for i := range rows {
		rows[i] = &entity.JobData{
			ID:         uuid.New(),
			Attributes: map[string]string{"quantidade_linhas": "70000"},
			ReceivedAt: time.Now().Add(-time.Duration(i+1) * 24 * time.Hour),
			Weekday:    "Monday",
			Month:      "June",
		}
	}
	return rows
}

func baseRequest() Request {
	return Request{
		JobName:      "Envio Diário Base Full - Banco Joelma",
		JobFilename:  "BASEDIARIA.csv",
		Attributes:   map[string]string{"quantidade_linhas": "70100"},
		HistoryLimit: 5,
		Provenance:   entity.Provenance{IPAddress: "10.0.0.1"},
	}
}

func TestEvaluate_Consistent(t *testing.T) {
	s := &fakeStore{
		history:   historyRows(5),
		ruleTexts: []string{repository.DefaultRuleText},
	}
	client := &fakeLLM{response: `{"result": "true", "explain": "dentro do padrão"}`}
	ev := newTestEvaluator(t, s, client)

	out, err := ev.Evaluate(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, OutcomeEvaluated, out.Kind)
	assert.Equal(t, "true", out.Result)
	assert.Equal(t, "dentro do padrão", out.Explanation)
	assert.False(t, out.Outlier)

	require.Len(t, s.inserted, 1)
	assert.False(t, s.inserted[0].IsOutlier)
	assert.False(t, s.inserted[0].ForcedResult)
	require.Len(t, s.audited, 1)
	assert.Equal(t, "true", s.audited[0].Result)
	assert.Equal(t, 5, s.audited[0].HistoryCount)

	// The prompt carried the rules and the submission.
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], repository.DefaultRuleText)
	assert.Contains(t, client.prompts[0], "70100")
}

func TestEvaluate_Anomalous(t *testing.T) {
	s := &fakeStore{history: historyRows(5)}
	client := &fakeLLM{response: `{"result": "false", "explain": "queda abrupta"}`}
	ev := newTestEvaluator(t, s, client)

	out, err := ev.Evaluate(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "false", out.Result)
	assert.True(t, out.Outlier)

	require.Len(t, s.inserted, 1)
	assert.True(t, s.inserted[0].IsOutlier)
	require.Len(t, s.audited, 1)
	assert.Equal(t, "false", s.audited[0].Result)
}

func TestEvaluate_ForceTrue(t *testing.T) {
	s := &fakeStore{history: historyRows(5)}
	client := &fakeLLM{response: `{"result": "false", "explain": "fora do padrão"}`}
	ev := newTestEvaluator(t, s, client)

	req := baseRequest()
	req.ForceTrue = true
	out, err := ev.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "true", out.Result)
	assert.True(t, out.Forced)
	assert.False(t, out.Outlier)
	assert.True(t, strings.HasPrefix(out.Explanation, ForcedResultNote))
	assert.Contains(t, out.Explanation, "fora do padrão")

	require.Len(t, s.inserted, 1)
	assert.False(t, s.inserted[0].IsOutlier)
	assert.True(t, s.inserted[0].ForcedResult)
}

func TestEvaluate_InsufficientHistory(t *testing.T) {
	s := &fakeStore{history: historyRows(3)}
	client := &fakeLLM{response: `{"result": "true", "explain": "ok"}`}
	ev := newTestEvaluator(t, s, client)

	out, err := ev.Evaluate(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, OutcomeInsufficientHistory, out.Kind)
	assert.Equal(t, "null", out.Result)
	assert.Contains(t, out.Message, "Histórico insuficiente")
	assert.Equal(t, 3, out.HistoryUsed)

	// No inference happened, but the submission and the attempt were
	// both recorded.
	assert.Empty(t, client.prompts)
	require.Len(t, s.inserted, 1)
	assert.False(t, s.inserted[0].IsOutlier)
	require.Len(t, s.audited, 1)
	assert.Equal(t, "null", s.audited[0].Result)
}

func TestEvaluate_InvalidHistoryLimit(t *testing.T) {
	s := &fakeStore{}
	ev := newTestEvaluator(t, s, &fakeLLM{})

	req := baseRequest()
	req.HistoryLimit = 0
	_, err := ev.Evaluate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Empty(t, s.inserted)
	assert.Empty(t, s.audited)
}

func TestEvaluate_InactiveJob(t *testing.T) {
	s := &fakeStore{
		job: &entity.Job{ID: repository.JobID("j", "f"), JobName: "j", IsActive: false},
	}
	client := &fakeLLM{response: `{"result": "true", "explain": "ok"}`}
	ev := newTestEvaluator(t, s, client)

	_, err := ev.Evaluate(context.Background(), baseRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	// Audited with the skip sentinel, but no submission row.
	assert.Empty(t, s.inserted)
	require.Len(t, s.audited, 1)
	assert.Equal(t, "null", s.audited[0].Result)
	assert.Empty(t, client.prompts)
}

func TestEvaluate_InferenceFailure(t *testing.T) {
	s := &fakeStore{history: historyRows(5)}
	client := &fakeLLM{err: errors.New("connection refused")}
	ev := newTestEvaluator(t, s, client)

	_, err := ev.Evaluate(context.Background(), baseRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInference))
	assert.Empty(t, s.inserted)
	assert.Empty(t, s.audited)
}

func TestEvaluate_ContractViolationPersistsNothing(t *testing.T) {
	s := &fakeStore{history: historyRows(5)}
	client := &fakeLLM{response: "os dados parecem bons"}
	ev := newTestEvaluator(t, s, client)

	_, err := ev.Evaluate(context.Background(), baseRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrContract))
	assert.Empty(t, s.inserted)
	assert.Empty(t, s.audited)
}

func TestEvaluate_InvalidResultValue(t *testing.T) {
	s := &fakeStore{history: historyRows(5)}
	client := &fakeLLM{response: `{"result": "maybe", "explain": "?"}`}
	ev := newTestEvaluator(t, s, client)

	_, err := ev.Evaluate(context.Background(), baseRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrContract))
	assert.Empty(t, s.inserted)
}
