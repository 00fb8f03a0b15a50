package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medorahq/clinic-api/internal/model"
	patientservice "github.com/medorahq/clinic-api/internal/service/patient"
	"github.com/medorahq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *patientservice.Service
}

func NewHandler(service *patientservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	patient, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": patient.ID})
}
