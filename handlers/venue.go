package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/venue"
	"courtside/utils"
)

// VenueHandler serves the admin CRUD surface for venues, courts and rules.
type VenueHandler struct {
	Service venue.AdminService
}

func NewVenueHandler(service venue.AdminService) *VenueHandler {
	return &VenueHandler{Service: service}
}

func (h *VenueHandler) respondError(c *gin.Context, err error) {
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	utils.GetLogger().Error("venue admin request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "details": err.Error()})
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var v models.Venue
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue payload", "details": err.Error()})
		return
	}
	if err := h.Service.CreateVenue(c.Request.Context(), &v); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VenueHandler) GetVenue(c *gin.Context) {
	v, courts, err := h.Service.GetVenue(c.Request.Context(), c.Param("venueID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venue": v, "courts": courts})
}

func (h *VenueHandler) ListVenues(c *gin.Context) {
	venues, err := h.Service.ListVenues(c.Request.Context(), c.Query("city"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	var v models.Venue
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue payload", "details": err.Error()})
		return
	}
	v.ID = c.Param("venueID")
	if err := h.Service.UpdateVenue(c.Request.Context(), &v); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// SetOpeningHours handles PUT /api/venues/:venueID/opening-hours.
func (h *VenueHandler) SetOpeningHours(c *gin.Context) {
	var hours map[string]models.DayHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opening hours payload", "details": err.Error()})
		return
	}
	if err := h.Service.SetOpeningHours(c.Request.Context(), c.Param("venueID"), hours); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Opening hours updated"})
}

func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	if err := h.Service.DeleteVenue(c.Request.Context(), c.Param("venueID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}
