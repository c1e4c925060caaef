package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/export"
	"github.com/monailabs/monai/internal/pipeline"
	"github.com/monailabs/monai/internal/repository"
)

// Evaluator is the slice of the pipeline the evaluation handler needs.
type Evaluator interface {
	Evaluate(ctx context.Context, req pipeline.Request) (*pipeline.Outcome, error)
}

// Deps carries everything the HTTP surface needs. All fields are
// required unless noted.
type Deps struct {
	Config    *common.Config
	Evaluator Evaluator
	Jobs      repository.JobRepository
	Rules     repository.RuleRepository
	Groups    repository.RuleGroupRepository
	Audit     repository.QueryLogRepository
	Export    *export.Service
	Metrics   *Metrics
	Registry  *prometheus.Registry
	Logger    *slog.Logger
}

// NewRouter wires the full route table.
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(d.Logger))

	h := &handlers{Deps: d}

	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	jobs := r.Group("/jobs")
	{
		jobs.POST("/", h.evaluate)
		jobs.GET("/", h.listJobs)
		jobs.GET("/:id", h.getJob)
		jobs.PATCH("/:id", h.patchJob)
		jobs.GET("/:id/rule-groups", h.jobRuleGroups)
		jobs.POST("/:id/rule-groups/:group_id", h.attachRuleGroup)
		jobs.DELETE("/:id/rule-groups/:group_id", h.detachRuleGroup)
	}

	rules := r.Group("/rules")
	{
		rules.POST("/", h.createRule)
		rules.GET("/", h.listRules)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}

	groups := r.Group("/rule-groups")
	{
		groups.POST("/", h.createRuleGroup)
		groups.GET("/", h.listRuleGroups)
		groups.GET("/:id", h.getRuleGroup)
		groups.PUT("/:id", h.updateRuleGroup)
		groups.DELETE("/:id", h.deleteRuleGroup)
		groups.GET("/:id/rules", h.ruleGroupRules)
		groups.POST("/:id/rules/:rule_id", h.addRuleToGroup)
		groups.DELETE("/:id/rules/:rule_id", h.removeRuleFromGroup)
	}

	dash := r.Group("/dashboard")
	{
		dash.GET("/", h.dashboard)
		dash.GET("/export", h.dashboardExport)
	}

	return r
}

type handlers struct {
	Deps
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail maps an error to the wire shape {"detail": "..."}. Status
// selection is by sentinel: not-found becomes 404, everything else the
// caller's default.
func (h *handlers) fail(c *gin.Context, status int, err error) {
	if common.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"detail": common.Detail(err)})
}
