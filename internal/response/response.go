// Package response implements the API response envelope. Every endpoint
// answers with the same shape: a success flag, a human-readable message, an
// optional payload and, for business failures, a machine-readable error code.
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moodeary/flow-backend/internal/apperror"
)

// Body is the envelope written on every JSON response.
type Body struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
}

// OK writes a success envelope with the default message.
func OK(c *gin.Context, data interface{}) {
	OKMessage(c, data, "성공")
}

// OKMessage writes a success envelope with an explicit message.
func OKMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. Business errors keep their status, code
// and message; anything else is logged and reduced to a generic internal
// error so callers never observe raw failure detail.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, Body{
			Success:   false,
			Message:   appErr.Message,
			ErrorCode: appErr.Code,
		})
		return
	}

	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, Body{
		Success:   false,
		Message:   "서버 내부 오류가 발생했습니다.",
		ErrorCode: "INTERNAL_SERVER_ERROR",
	})
}
