package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/entity"
	"github.com/monailabs/monai/internal/pipeline"
)

// evaluateRequest is the submission payload. monai_history_executions
// falls back to the configured default when omitted.
type evaluateRequest struct {
	JobName              string            `json:"job_name" binding:"required"`
	JobFilename          string            `json:"job_filename" binding:"required"`
	Description          string            `json:"description"`
	Attributes           map[string]string `json:"attributes" binding:"required"`
	HistoryExecutions    *int              `json:"monai_history_executions"`
	UseHistoricalOutlier bool              `json:"use_historical_outlier"`
	ForceTrue            bool              `json:"force_true"`
}

func (h *handlers) evaluate(c *gin.Context) {
	start := time.Now()

	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Metrics.Evaluations.WithLabelValues(outcomeError).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"detail": "corpo da requisição inválido: " + err.Error()})
		return
	}

	limit := h.Config.Eval.HistoryExecutions
	if req.HistoryExecutions != nil {
		limit = *req.HistoryExecutions
	}

	outcome, err := h.Evaluator.Evaluate(c.Request.Context(), pipeline.Request{
		JobName:         req.JobName,
		JobFilename:     req.JobFilename,
		Description:     req.Description,
		Attributes:      req.Attributes,
		HistoryLimit:    limit,
		IncludeOutliers: req.UseHistoricalOutlier,
		ForceTrue:       req.ForceTrue,
		Provenance: entity.Provenance{
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Referer:   c.Request.Referer(),
		},
	})
	h.Metrics.EvalLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, common.ErrInference):
			h.Metrics.LLMFailures.WithLabelValues("inference").Inc()
			h.Metrics.Evaluations.WithLabelValues(outcomeError).Inc()
		case errors.Is(err, common.ErrContract):
			h.Metrics.LLMFailures.WithLabelValues("contract").Inc()
			h.Metrics.Evaluations.WithLabelValues(outcomeError).Inc()
		default:
			h.Metrics.Evaluations.WithLabelValues(outcomeRejected).Inc()
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": common.Detail(err)})
		return
	}

	switch outcome.Kind {
	case pipeline.OutcomeInsufficientHistory:
		h.Metrics.Evaluations.WithLabelValues(outcomeInsufficient).Inc()
		c.JSON(http.StatusOK, gin.H{"message": outcome.Message})
	default:
		switch {
		case outcome.Forced:
			h.Metrics.Evaluations.WithLabelValues(outcomeForced).Inc()
		case outcome.Result == "true":
			h.Metrics.Evaluations.WithLabelValues(outcomeConsistent).Inc()
		default:
			h.Metrics.Evaluations.WithLabelValues(outcomeAnomalous).Inc()
		}
		status := http.StatusOK
		if outcome.Result == "false" {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"result":      outcome.Result,
			"explanation": outcome.Explanation,
		})
	}
}

func (h *handlers) listJobs(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *handlers) getJob(c *gin.Context) {
	job, err := h.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

type patchJobRequest struct {
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

func (h *handlers) patchJob(c *gin.Context) {
	var req patchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.IsActive == nil && req.Description == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "nenhum campo para atualizar"})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	var job *entity.Job
	var err error
	if req.IsActive != nil {
		job, err = h.Jobs.SetActive(ctx, id, *req.IsActive)
		if err != nil {
			h.fail(c, http.StatusInternalServerError, err)
			return
		}
	}
	if req.Description != nil {
		job, err = h.Jobs.SetDescription(ctx, id, *req.Description)
		if err != nil {
			h.fail(c, http.StatusInternalServerError, err)
			return
		}
	}
	c.JSON(http.StatusOK, job)
}

func (h *handlers) jobRuleGroups(c *gin.Context) {
	groups, err := h.Jobs.RuleGroups(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *handlers) attachRuleGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "group_id inválido"})
		return
	}
	if err := h.Jobs.AttachRuleGroup(c.Request.Context(), c.Param("id"), groupID); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) detachRuleGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "group_id inválido"})
		return
	}
	if err := h.Jobs.DetachRuleGroup(c.Request.Context(), c.Param("id"), groupID); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
