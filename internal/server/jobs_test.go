package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/pipeline"
)

type stubEvaluator struct {
	outcome *pipeline.Outcome
	err     error
	last    pipeline.Request
	calls   int
}

func (s *stubEvaluator) Evaluate(_ context.Context, req pipeline.Request) (*pipeline.Outcome, error) {
	s.calls++
	s.last = req
	return s.outcome, s.err
}

func newTestRouter(t *testing.T, ev Evaluator) *httptest.Server {
	t.Helper()
	cfg := &common.Config{
		Eval: common.EvalConfig{HistoryExecutions: 10},
	}
	registry := prometheus.NewRegistry()
	srv := httptest.NewServer(NewRouter(Deps{
		Config:    cfg,
		Evaluator: ev,
		Metrics:   NewMetrics(registry),
		Registry:  registry,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postSubmission(t *testing.T, srv *httptest.Server, payload map[string]any) (*http.Response, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/jobs/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func basePayload() map[string]any {
	return map[string]any{
		"job_name":     "Envio Diário Base Full - Banco Joelma",
		"job_filename": "BASEDIARIA.csv",
		"attributes":   map[string]string{"quantidade_linhas": "70100"},
	}
}

func TestEvaluateHandler_Consistent(t *testing.T) {
	ev := &stubEvaluator{outcome: &pipeline.Outcome{
		Kind:        pipeline.OutcomeEvaluated,
		Result:      "true",
		Explanation: "dentro do padrão histórico",
	}}
	srv := newTestRouter(t, ev)

	resp, body := postSubmission(t, srv, basePayload())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", body["result"])
	assert.Equal(t, "dentro do padrão histórico", body["explanation"])
	assert.NotContains(t, body, "detail")
}

func TestEvaluateHandler_AnomalousIsBusiness400(t *testing.T) {
	ev := &stubEvaluator{outcome: &pipeline.Outcome{
		Kind:        pipeline.OutcomeEvaluated,
		Result:      "false",
		Explanation: "queda abrupta na contagem",
		Outlier:     true,
	}}
	srv := newTestRouter(t, ev)

	resp, body := postSubmission(t, srv, basePayload())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "false", body["result"])
	assert.Equal(t, "queda abrupta na contagem", body["explanation"])
	assert.NotContains(t, body, "detail")
}

func TestEvaluateHandler_InsufficientHistory(t *testing.T) {
	ev := &stubEvaluator{outcome: &pipeline.Outcome{
		Kind:    pipeline.OutcomeInsufficientHistory,
		Result:  "null",
		Message: "Histórico insuficiente para avaliação: são necessárias 10 execuções anteriores e apenas 3 estão disponíveis. O envio foi registrado.",
	}}
	srv := newTestRouter(t, ev)

	resp, body := postSubmission(t, srv, basePayload())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "Histórico insuficiente")
	assert.NotContains(t, body, "result")
}

func TestEvaluateHandler_ForcedResult(t *testing.T) {
	ev := &stubEvaluator{outcome: &pipeline.Outcome{
		Kind:        pipeline.OutcomeEvaluated,
		Result:      "true",
		Explanation: pipeline.ForcedResultNote + "fora do padrão",
		Forced:      true,
	}}
	srv := newTestRouter(t, ev)

	payload := basePayload()
	payload["force_true"] = true
	resp, body := postSubmission(t, srv, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", body["result"])
	assert.Contains(t, body["explanation"], pipeline.ForcedResultNote)
	assert.True(t, ev.last.ForceTrue)
}

func TestEvaluateHandler_PipelineErrorIsDetail400(t *testing.T) {
	ev := &stubEvaluator{err: common.NewAppError("INACTIVE_JOB",
		`job "x" está inativo e não aceita envios`, common.ErrValidation)}
	srv := newTestRouter(t, ev)

	resp, body := postSubmission(t, srv, basePayload())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["detail"], "inativo")
	assert.NotContains(t, body, "result")
}

func TestEvaluateHandler_MalformedBody(t *testing.T) {
	ev := &stubEvaluator{}
	srv := newTestRouter(t, ev)

	resp, err := http.Post(srv.URL+"/jobs/", "application/json",
		bytes.NewReader([]byte(`{"job_name": 42}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "detail")
	assert.Zero(t, ev.calls)
}

func TestEvaluateHandler_MissingRequiredFields(t *testing.T) {
	ev := &stubEvaluator{}
	srv := newTestRouter(t, ev)

	resp, body := postSubmission(t, srv, map[string]any{
		"attributes": map[string]string{"quantidade_linhas": "1"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "detail")
	assert.Zero(t, ev.calls)
}

func TestEvaluateHandler_HistoryLimitDefaultAndOverride(t *testing.T) {
	ev := &stubEvaluator{outcome: &pipeline.Outcome{
		Kind:   pipeline.OutcomeEvaluated,
		Result: "true",
	}}
	srv := newTestRouter(t, ev)

	_, _ = postSubmission(t, srv, basePayload())
	assert.Equal(t, 10, ev.last.HistoryLimit)

	payload := basePayload()
	payload["monai_history_executions"] = 25
	payload["use_historical_outlier"] = true
	_, _ = postSubmission(t, srv, payload)
	assert.Equal(t, 25, ev.last.HistoryLimit)
	assert.True(t, ev.last.IncludeOutliers)
}
