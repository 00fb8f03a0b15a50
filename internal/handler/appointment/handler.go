package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medorahq/clinic-api/internal/model"
	appointmentservice "github.com/medorahq/clinic-api/internal/service/appointment"
	"github.com/medorahq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *appointmentservice.Service
}

func NewHandler(service *appointmentservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	appointments, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": appointment.ID})
}
