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

type TestimonialHandler struct {
	testimonialCommands commands.TestimonialCommands
	catalogQueries      queries.CatalogQueries
}

func NewTestimonialHandler(testimonialCommands commands.TestimonialCommands, catalogQueries queries.CatalogQueries) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialCommands: testimonialCommands,
		catalogQueries:      catalogQueries,
	}
}

// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} resdto.TestimonialResponse
// @Router /api/testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.catalogQueries.ListTestimonials(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTestimonials(items))
}

// @Summary Submit testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTestimonialRequest true "Testimonial"
// @Success 201 {object} resdto.TestimonialResponse
// @Failure 400 {object} map[string]string
// @Router /api/testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req reqdto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	t, err := h.testimonialCommands.Create(c.Request.Context(), req.Name, req.Role, req.Story)
	if err != nil {
		if errors.Is(err, commands.ErrMissingTestimonialFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Story are required"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTestimonial(t))
}

// @Summary Delete testimonial
// @Tags testimonials
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Testimonial ID"
// @Success 200 {object} map[string]string
// @Router /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialCommands.Delete(c.Request.Context(), ident.Normalize(c.Param("id"))); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
