package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medorahq/clinic-api/internal/middleware"
	"github.com/medorahq/clinic-api/internal/model"
	authservice "github.com/medorahq/clinic-api/internal/service/auth"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
	"github.com/medorahq/clinic-api/pkg/httputil"
)

type Handler struct {
	service *authservice.Service
}

func NewHandler(service *authservice.Service) *Handler {
	return &Handler{service: service}
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated token claims.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.Unauthorized("missing authorization header"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":       claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	}})
}
