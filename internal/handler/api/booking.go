package api

import (
	"errors"
	"net/http"

	reqdto "barber-booking/internal/handler/dto/request"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/pkg/ident"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book an appointment slot; each (date, time) pair can be taken once
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bookingCommands.Create(c.Request.Context(), req.ToCandidate())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingDetails):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing booking details",
			})
		case errors.Is(err, commands.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This time slot is already booked. Please choose another time.",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{
		Message: "Booking successful",
		ID:      id.String(),
	})
}

// @Summary List bookings
// @Description All bookings in creation order, for the admin dashboard
// @Tags bookings
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	records, err := h.bookingQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRecords(records))
}

// @Summary Delete booking
// @Description Remove a booking; deleting an unknown id still succeeds
// @Tags bookings
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id := ident.Normalize(c.Param("id"))

	if err := h.bookingCommands.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deleted successfully",
	})
}

// @Summary Confirm booking
// @Description Flip a booking to confirmed and dispatch the confirmation email
// @Tags bookings
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/bookings/{id}/confirm [patch]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id := ident.Normalize(c.Param("id"))

	rec, err := h.bookingCommands.Confirm(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRecord(rec))
}

// @Summary Booking stats
// @Description Bookings per day over the dashboard chart window
// @Tags stats
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /api/stats/bookings [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.bookingQueries.StatsByDate(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, stats)
}
