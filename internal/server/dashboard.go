package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// dashboard summarizes the audit log: totals by result plus the most
// recent entries, optionally bounded by from/to (YYYY-MM-DD).
func (h *handlers) dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.Audit.CountByResult(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	from, to, err := parseDateWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	entries, err := h.Audit.List(ctx, from, to)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"consistent": counts["true"],
		"anomalous":  counts["false"],
		"unresolved": counts["null"],
		"entries":    entries,
	})
}

func (h *handlers) dashboardExport(c *gin.Context) {
	from, to, err := parseDateWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	data, err := h.Export.ExportAuditLogXLSX(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("monai-audit-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func parseDateWindow(c *gin.Context) (from, to *time.Time, err error) {
	if v := c.Query("from"); v != "" {
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return nil, nil, fmt.Errorf("parâmetro from inválido: %q", v)
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return nil, nil, fmt.Errorf("parâmetro to inválido: %q", v)
		}
		to = &t
	}
	return from, to, nil
}
