package response

import (
	"errors"
	"net/http"

	"esign-webhook-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AckResponse is the acknowledgement envelope the e-signature provider
// expects for a fully processed delivery.
type AckResponse struct {
	Success    bool   `json:"success"`
	ContractID string `json:"contract_id"`
	Message    string `json:"message"`
}

// ErrorResponse is the provider-facing error envelope. Message is only set
// for internal errors, where the provider is expected to redeliver.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Ack sends a 200 acknowledgement for a processed delivery.
func Ack(c *gin.Context, contractID uuid.UUID, message string) {
	c.JSON(http.StatusOK, AckResponse{
		Success:    true,
		ContractID: contractID.String(),
		Message:    message,
	})
}

// OK sends a 200 response with arbitrary data (health endpoint).
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. An *apperror.AppError maps to its HTTP
// status with its message; anything else becomes a 500 whose message
// carries the raw error so the provider's retry log is actionable.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		c.JSON(appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal server error",
		Message: err.Error(),
	})
}
