package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
)

// CreateGlobalRule handles POST /api/global-rules. Global rules apply to
// every court at availability time; there is no per-court fan-out to wait
// for.
func (h *VenueHandler) CreateGlobalRule(c *gin.Context) {
	var rule models.GlobalPriceRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid global rule payload", "details": err.Error()})
		return
	}
	if err := h.Service.CreateGlobalRule(c.Request.Context(), &rule); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *VenueHandler) ListGlobalRules(c *gin.Context) {
	rules, err := h.Service.ListGlobalRules(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// SetGlobalRuleActive handles PATCH /api/admin/global-rules/:ruleID.
func (h *VenueHandler) SetGlobalRuleActive(c *gin.Context) {
	var body struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing active flag"})
		return
	}
	if err := h.Service.SetGlobalRuleActive(c.Request.Context(), c.Param("ruleID"), *body.Active); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Global rule updated"})
}

func (h *VenueHandler) DeleteGlobalRule(c *gin.Context) {
	if err := h.Service.DeleteGlobalRule(c.Request.Context(), c.Param("ruleID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Global rule deleted"})
}
