package billing

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/pdf"
	billingservice "github.com/medorahq/clinic-api/internal/service/billing"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
	"github.com/medorahq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *billingservice.Service
}

func NewHandler(service *billingservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	invoice, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": invoice.ID})
}

// DownloadPDF streams the invoice document. The record is resolved before
// any bytes are written so a missing id is still a clean 404.
func (h *Handler) DownloadPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NotFound("invoice"))
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(detail.ID)))
	c.Status(http.StatusOK)

	if err := pdf.RenderInvoice(c.Writer, detail); err != nil {
		// Headers are already gone; all we can do is log through gin.
		c.Error(err) //nolint:errcheck
	}
}
