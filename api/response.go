package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pagamentos/service"
)

// Response common response envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrors data of a 400 caused by rule violations
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// Success 200 response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 200 response with a message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalError 500 response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// respondError maps service errors to responses; anything unknown is a 500
// carrying fallback in release mode.
func respondError(c *gin.Context, err error, notFound, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, Response{
			Code:    http.StatusBadRequest,
			Message: verr.Error(),
			Data:    ValidationErrors{Errors: verr.Messages},
		})
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, notFound)
	case errors.Is(err, service.ErrUnauthenticated):
		Unauthorized(c, "Please log in to access this page.")
	case errors.Is(err, service.ErrInvalidCredentials):
		Unauthorized(c, "Invalid credentials.")
	default:
		_ = c.Error(err)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
