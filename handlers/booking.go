package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"courtside/services/booking"
	"courtside/services/slotengine"
	"courtside/utils"
)

// BookingHandler serves the availability read path and the booking write
// path.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// statusForError maps engine errors to HTTP statuses: bad client input is
// 400, "never offered" rejections are 422 and races are 409 so the client
// can distinguish "pick another slot" from "someone beat you to it".
func statusForError(err error) (int, string) {
	switch slotengine.ErrorCode(err) {
	case slotengine.CodeInvalidTime, slotengine.CodeInvalidDate:
		return http.StatusBadRequest, "Invalid request"
	case slotengine.CodeVenueClosed:
		return http.StatusUnprocessableEntity, "Slot not available"
	case slotengine.CodeSlotBlocked:
		return http.StatusUnprocessableEntity, "Slot blocked by venue"
	case slotengine.CodeSlotConflict:
		return http.StatusConflict, "Slot already booked"
	}
	if errors.Is(err, booking.ErrQuoteNotFound) {
		return http.StatusGone, "Quote expired"
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return http.StatusNotFound, "Not found"
	}
	return http.StatusInternalServerError, "Internal error"
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	status, message := statusForError(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	body := gin.H{"error": message, "details": err.Error()}
	if se, ok := err.(*slotengine.SlotError); ok {
		body["hour"] = slotengine.FormatHour(se.Hour)
		body["code"] = se.Code
	}
	c.JSON(status, body)
}

// GetAvailability handles GET /api/courts/:courtID/availability?date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	courtID := c.Param("courtID")
	date := c.Query("date")
	if courtID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courtID and date (YYYY-MM-DD) are required"})
		return
	}

	slots, err := h.Service.GetAvailability(c.Request.Context(), courtID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courtId": courtID, "date": date, "slots": slots})
}

// QuoteBooking handles POST /api/bookings/quote.
func (h *BookingHandler) QuoteBooking(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	req.UserID = c.GetString("userID")

	quote, err := h.Service.QuoteBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBooking handles POST /api/bookings. The payload carries either a
// quoteId from a prior quote or the full court/date/hours request.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req struct {
		QuoteID string   `json:"quoteId"`
		CourtID string   `json:"courtId"`
		Date    string   `json:"date"`
		Hours   []string `json:"hours"`
		Players int      `json:"players"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	userID := c.GetString("userID")

	if req.QuoteID != "" {
		b, err := h.Service.CreateBookingFromQuote(c.Request.Context(), req.QuoteID, userID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
		return
	}

	if req.CourtID == "" || req.Date == "" || len(req.Hours) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either quoteId or courtId, date and hours are required"})
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), booking.BookingRequest{
		CourtID: req.CourtID,
		Date:    req.Date,
		Hours:   req.Hours,
		Players: req.Players,
		UserID:  userID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CancelBooking handles DELETE /api/bookings/:bookingID.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	userID := c.GetString("userID")

	if err := h.Service.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// GetBooking handles GET /api/bookings/:bookingID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUserBookings handles GET /api/bookings/user/:userID.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.Service.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListCourtBookings handles GET /api/bookings/court/:courtID.
func (h *BookingHandler) ListCourtBookings(c *gin.Context) {
	bookings, err := h.Service.ListByCourt(c.Request.Context(), c.Param("courtID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
