package clinical

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medorahq/clinic-api/internal/middleware"
	"github.com/medorahq/clinic-api/internal/model"
	clinicalservice "github.com/medorahq/clinic-api/internal/service/clinical"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
	"github.com/medorahq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *clinicalservice.Service
}

func NewHandler(service *clinicalservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.service.ListNotes(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *Handler) CreateNote(c *gin.Context) {
	var req model.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	author, ok := authorFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.Unauthorized("missing authorization header"))
		return
	}

	note, err := h.service.CreateNote(c.Request.Context(), &req, author)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": note.ID})
}

func (h *Handler) ListTreatmentPlans(c *gin.Context) {
	plans, err := h.service.ListTreatmentPlans(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *Handler) CreateTreatmentPlan(c *gin.Context) {
	var req model.CreateTreatmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	author, ok := authorFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.Unauthorized("missing authorization header"))
		return
	}

	plan, err := h.service.CreateTreatmentPlan(c.Request.Context(), &req, author)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": plan.ID})
}

func (h *Handler) ListPrescriptions(c *gin.Context) {
	prescriptions, err := h.service.ListPrescriptions(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	author, ok := authorFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.Unauthorized("missing authorization header"))
		return
	}

	prescription, err := h.service.CreatePrescription(c.Request.Context(), &req, author)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": prescription.ID})
}

func authorFromContext(c *gin.Context) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return "", false
	}
	return claims.Username, true
}
