package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
)

func (h *VenueHandler) CreateCourt(c *gin.Context) {
	var court models.Court
	if err := c.ShouldBindJSON(&court); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court payload", "details": err.Error()})
		return
	}
	if err := h.Service.CreateCourt(c.Request.Context(), &court); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, court)
}

func (h *VenueHandler) GetCourt(c *gin.Context) {
	court, err := h.Service.GetCourt(c.Request.Context(), c.Param("courtID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

func (h *VenueHandler) UpdateCourt(c *gin.Context) {
	var court models.Court
	if err := c.ShouldBindJSON(&court); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court payload", "details": err.Error()})
		return
	}
	court.ID = c.Param("courtID")
	if err := h.Service.UpdateCourt(c.Request.Context(), &court); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

// SetPriceRules handles PUT /api/courts/:courtID/price-rules, replacing the
// court's full rule list.
func (h *VenueHandler) SetPriceRules(c *gin.Context) {
	var rules []models.PriceRule
	if err := c.ShouldBindJSON(&rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price rules payload", "details": err.Error()})
		return
	}
	if err := h.Service.SetPriceRules(c.Request.Context(), c.Param("courtID"), rules); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price rules updated", "count": len(rules)})
}

// SetBlockedRules handles PUT /api/courts/:courtID/blocked-rules.
func (h *VenueHandler) SetBlockedRules(c *gin.Context) {
	var rules []models.UnavailabilityRule
	if err := c.ShouldBindJSON(&rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blocked rules payload", "details": err.Error()})
		return
	}
	if err := h.Service.SetBlockedRules(c.Request.Context(), c.Param("courtID"), rules); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked rules updated", "count": len(rules)})
}

func (h *VenueHandler) DeleteCourt(c *gin.Context) {
	if err := h.Service.DeleteCourt(c.Request.Context(), c.Param("courtID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}
