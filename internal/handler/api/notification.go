package api

import (
	"net/http"

	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		notificationQueries: notificationQueries,
	}
}

// @Summary Recent notifications
// @Description Latest feed lines, most recent first
// @Tags notifications
// @Produce json
// @Param X-Admin-Secret header string true "Admin shared secret"
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Router /api/notifications [get]
func (h *NotificationHandler) Recent(c *gin.Context) {
	lines, err := h.notificationQueries.Recent(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if lines == nil {
		lines = []string{}
	}
	c.JSON(http.StatusOK, lines)
}
