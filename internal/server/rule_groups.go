package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/monailabs/monai/internal/repository"
)

type ruleGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (h *handlers) createRuleGroup(c *gin.Context) {
	var req ruleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	group, err := h.Groups.Create(c.Request.Context(), repository.SaveRuleGroupParams{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *handlers) listRuleGroups(c *gin.Context) {
	groups, err := h.Groups.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *handlers) getRuleGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	group, err := h.Groups.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *handlers) updateRuleGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	var req ruleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	group, err := h.Groups.Update(c.Request.Context(), id, repository.SaveRuleGroupParams{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *handlers) deleteRuleGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	if err := h.Groups.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) ruleGroupRules(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	rules, err := h.Groups.Rules(c.Request.Context(), id)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

func (h *handlers) addRuleToGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	ruleID, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "rule_id inválido"})
		return
	}
	if err := h.Groups.AddRule(c.Request.Context(), groupID, ruleID); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) removeRuleFromGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido"})
		return
	}
	ruleID, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "rule_id inválido"})
		return
	}
	if err := h.Groups.RemoveRule(c.Request.Context(), groupID, ruleID); err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
