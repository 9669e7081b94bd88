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

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServices(items))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /api/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	svc, err := h.catalogCommands.CreateService(c.Request.Context(), req.Name, req.Price, req.Desc)
	if err != nil {
		if errors.Is(err, commands.ErrMissingServiceFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Price are required"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromService(svc))
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /api/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	patch := commands.ServicePatch{Name: req.Name, Price: req.Price, Desc: req.Desc}
	svc, err := h.catalogCommands.UpdateService(c.Request.Context(), ident.Normalize(c.Param("id")), patch)
	if err != nil {
		if errors.Is(err, commands.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromService(svc))
}

// @Summary Delete service
// @Tags services
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Router /api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalogCommands.DeleteService(c.Request.Context(), ident.Normalize(c.Param("id"))); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// @Summary List gallery
// @Tags gallery
// @Produce json
// @Success 200 {array} resdto.GalleryItemResponse
// @Router /api/gallery [get]
func (h *CatalogHandler) ListGallery(c *gin.Context) {
	items, err := h.catalogQueries.ListGallery(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGalleryItems(items))
}

// @Summary Add gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param request body reqdto.CreateGalleryItemRequest true "Gallery item"
// @Success 201 {object} resdto.GalleryItemResponse
// @Failure 400 {object} map[string]string
// @Router /api/gallery [post]
func (h *CatalogHandler) CreateGalleryItem(c *gin.Context) {
	var req reqdto.CreateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.catalogCommands.CreateGalleryItem(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, commands.ErrMissingGalleryURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGalleryItem(item))
}

// @Summary Update gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Gallery item ID"
// @Param request body reqdto.UpdateGalleryItemRequest true "Fields to change"
// @Success 200 {object} resdto.GalleryItemResponse
// @Failure 404 {object} map[string]string
// @Router /api/gallery/{id} [put]
func (h *CatalogHandler) UpdateGalleryItem(c *gin.Context) {
	var req reqdto.UpdateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.catalogCommands.UpdateGalleryItem(c.Request.Context(), ident.Normalize(c.Param("id")), commands.GalleryPatch{URL: req.URL})
	if err != nil {
		if errors.Is(err, commands.ErrGalleryItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryItem(item))
}

// @Summary Delete gallery item
// @Tags gallery
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Param id path string true "Gallery item ID"
// @Success 200 {object} map[string]string
// @Router /api/gallery/{id} [delete]
func (h *CatalogHandler) DeleteGalleryItem(c *gin.Context) {
	if err := h.catalogCommands.DeleteGalleryItem(c.Request.Context(), ident.Normalize(c.Param("id"))); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
