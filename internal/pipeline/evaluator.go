package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/entity"
	"github.com/monailabs/monai/internal/llm"
	"github.com/monailabs/monai/internal/repository"
)

// ResultSentinelNull marks audit entries for attempts where no
// classification was produced (insufficient history, inactive job).
const ResultSentinelNull = "null"

// OutcomeKind distinguishes the terminal non-error outcomes of an
// evaluation. True error conditions (validation, inference, contract)
// are returned as errors instead, so callers cannot conflate the two.
type OutcomeKind int

const (
	// OutcomeEvaluated means inference ran and produced a verdict.
	OutcomeEvaluated OutcomeKind = iota
	// OutcomeInsufficientHistory means the history window was smaller
	// than requested; the submission was recorded but not evaluated.
	OutcomeInsufficientHistory
)

// Outcome is the terminal result of one submission.
type Outcome struct {
	Kind        OutcomeKind
	Job         *entity.Job
	Result      string // "true", "false" or "null"
	Explanation string
	Message     string // set for OutcomeInsufficientHistory
	Outlier     bool
	Forced      bool
	HistoryUsed int
}

// Request is one submission to evaluate.
type Request struct {
	JobName         string
	JobFilename     string
	Description     string
	Attributes      map[string]string
	HistoryLimit    int
	IncludeOutliers bool // opt flagged outliers back into the baseline
	ForceTrue       bool
	Provenance      entity.Provenance
}

// Evaluator runs the anomaly-evaluation pipeline. All dependencies are
// injected at construction; the only cross-request state is the
// provider client, which is read-only.
type Evaluator struct {
	jobs      repository.JobRepository
	data      repository.JobDataRepository
	rules     repository.RuleRepository
	audit     repository.QueryLogRepository
	provider  llm.Client
	calendar  *Calendar
	maxTokens int
	logger    *slog.Logger
}

func NewEvaluator(
	jobs repository.JobRepository,
	data repository.JobDataRepository,
	rules repository.RuleRepository,
	audit repository.QueryLogRepository,
	provider llm.Client,
	calendar *Calendar,
	maxTokens int,
	logger *slog.Logger,
) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		jobs:      jobs,
		data:      data,
		rules:     rules,
		audit:     audit,
		provider:  provider,
		calendar:  calendar,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Evaluate runs one submission through the pipeline:
// resolve job -> history window -> rules -> prompt -> inference ->
// validate -> classify -> persist submission + audit entry.
//
// Every accepted submission writes exactly one job_data row and one
// query_log row. The history read and the submission write are not
// serialized per job: two concurrent submissions for the same job may
// observe the same window.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (*Outcome, error) {
	if req.HistoryLimit <= 0 {
		return nil, common.NewAppError("INVALID_HISTORY_LIMIT",
			"monai_history_executions must be a positive integer", common.ErrValidation)
	}

	job, err := e.jobs.Resolve(ctx, req.JobName, req.JobFilename, req.Description)
	if err != nil {
		return nil, common.WrapError(err, "resolve job")
	}
	now := time.Now()
	tc := e.calendar.At(now)

	e.logger.Info("eval.start",
		"job_id", job.ID,
		"job_name", job.JobName,
		"history_limit", req.HistoryLimit,
		"include_outliers", req.IncludeOutliers,
		"force_true", req.ForceTrue,
	)

	if !job.IsActive {
		// Rejected before any evaluation work, but still audited.
		_, aerr := e.audit.Record(ctx, repository.RecordParams{
			JobID:        job.ID,
			Attributes:   req.Attributes,
			Result:       ResultSentinelNull,
			Explanation:  "job inativo: envio rejeitado sem avaliação",
			Provenance:   req.Provenance,
			ReceivedAt:   tc.At,
			HistoryCount: req.HistoryLimit,
		})
		if aerr != nil {
			e.logger.Error("eval.audit_failed", "job_id", job.ID, "error", aerr)
		}
		return nil, common.NewAppError("INACTIVE_JOB",
			fmt.Sprintf("job %q está inativo e não aceita envios", job.JobName), common.ErrValidation)
	}

	history, err := e.data.History(ctx, job.ID, req.HistoryLimit, !req.IncludeOutliers)
	if err != nil {
		return nil, common.WrapError(err, "select history window")
	}

	if len(history) < req.HistoryLimit {
		return e.recordInsufficientHistory(ctx, job, req, tc, len(history))
	}

	ruleTexts, err := e.rules.ActiveRuleTexts(ctx, job.ID)
	if err != nil {
		return nil, common.WrapError(err, "aggregate rules")
	}

	prompt := BuildPrompt(ruleTexts, history, req.Attributes, tc)

	raw, err := e.provider.Invoke(ctx, prompt, e.maxTokens)
	if err != nil {
		e.logger.Error("eval.inference_failed", "job_id", job.ID, "error", err)
		return nil, common.NewAppError("INFERENCE_FAILED",
			"erro ao interagir com o provedor de inferência: "+err.Error(), common.ErrInference)
	}

	verdict, err := llm.ParseVerdict(raw)
	if err != nil {
		// Contract violation: surfaced to the caller, nothing persisted.
		e.logger.Error("eval.contract_violation", "job_id", job.ID, "error", err, "raw_len", len(raw))
		return nil, common.NewAppError("INVALID_RESPONSE", err.Error(), common.ErrContract)
	}

	cls, err := Classify(verdict, req.ForceTrue)
	if err != nil {
		e.logger.Error("eval.invalid_result", "job_id", job.ID, "result", verdict.Result)
		return nil, err
	}

	if _, err := e.data.Insert(ctx, repository.InsertJobDataParams{
		JobID:        job.ID,
		Attributes:   req.Attributes,
		ReceivedAt:   tc.At,
		Weekday:      tc.Weekday,
		Month:        tc.Month,
		IsHoliday:    tc.IsHoliday,
		IsOutlier:    cls.Outlier,
		ForcedResult: cls.Forced,
	}); err != nil {
		return nil, common.WrapError(err, "persist submission")
	}

	result := "false"
	if cls.Final {
		result = "true"
	}
	if _, err := e.audit.Record(ctx, repository.RecordParams{
		JobID:        job.ID,
		Attributes:   req.Attributes,
		Result:       result,
		Explanation:  cls.Explanation,
		Provenance:   req.Provenance,
		ReceivedAt:   tc.At,
		HistoryCount: req.HistoryLimit,
	}); err != nil {
		return nil, common.WrapError(err, "persist audit entry")
	}

	e.logger.Info("eval.done",
		"job_id", job.ID,
		"result", result,
		"outlier", cls.Outlier,
		"forced", cls.Forced,
	)
	return &Outcome{
		Kind:        OutcomeEvaluated,
		Job:         job,
		Result:      result,
		Explanation: cls.Explanation,
		Outlier:     cls.Outlier,
		Forced:      cls.Forced,
		HistoryUsed: req.HistoryLimit,
	}, nil
}

func (e *Evaluator) recordInsufficientHistory(ctx context.Context, job *entity.Job, req Request, tc TemporalContext, available int) (*Outcome, error) {
	if _, err := e.data.Insert(ctx, repository.InsertJobDataParams{
		JobID:      job.ID,
		Attributes: req.Attributes,
		ReceivedAt: tc.At,
		Weekday:    tc.Weekday,
		Month:      tc.Month,
		IsHoliday:  tc.IsHoliday,
	}); err != nil {
		return nil, common.WrapError(err, "persist submission")
	}

	msg := fmt.Sprintf(
		"Histórico insuficiente para avaliação: são necessárias %d execuções anteriores e apenas %d estão disponíveis. O envio foi registrado.",
		req.HistoryLimit, available)

	if _, err := e.audit.Record(ctx, repository.RecordParams{
		JobID:        job.ID,
		Attributes:   req.Attributes,
		Result:       ResultSentinelNull,
		Explanation:  msg,
		Provenance:   req.Provenance,
		ReceivedAt:   tc.At,
		HistoryCount: req.HistoryLimit,
	}); err != nil {
		return nil, common.WrapError(err, "persist audit entry")
	}

	e.logger.Info("eval.insufficient_history",
		"job_id", job.ID,
		"required", req.HistoryLimit,
		"available", available,
	)
	return &Outcome{
		Kind:        OutcomeInsufficientHistory,
		Job:         job,
		Result:      ResultSentinelNull,
		Message:     msg,
		HistoryUsed: available,
	}, nil
}
