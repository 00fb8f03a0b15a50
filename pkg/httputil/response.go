package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/medorahq/clinic-api/pkg/errors"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError maps application errors onto JSON {error} replies.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := apperrors.As(err); ok {
		status = appErr.HTTPStatus()
		message = appErr.Message
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// RespondWithBindingError turns a gin binding failure into a 400 with a
// readable field message instead of the raw validator error string.
func RespondWithBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error: fieldMessage(fe),
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
