package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/monailabs/monai/internal/repository"
)

type ruleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	RuleText    string `json:"rule_text" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

func (h *handlers) createRule(c *gin.Context) {
	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	rule, err := h.Rules.Create(c.Request.Context(), repository.SaveRuleParams{
		Name:        req.Name,
		Description: req.Description,
		RuleText:    req.RuleText,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *handlers) listRules(c *gin.Context) {
	rules, err := h.Rules.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

func (h *handlers) getRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	rule, err := h.Rules.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *handlers) updateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	rule, err := h.Rules.Update(c.Request.Context(), id, repository.SaveRuleParams{
		Name:        req.Name,
		Description: req.Description,
		RuleText:    req.RuleText,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *handlers) deleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	if err := h.Rules.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
