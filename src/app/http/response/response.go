// Package response defines consistent HTTP error responses.
// Successful employee responses are written as the bare resource.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"employeeapi/src/core/domain"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NotFoundEmpty sends a 404 with no body.
func NotFoundEmpty(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

func abort(c *gin.Context, status int, code, message, field, requestID string) {
	c.JSON(status, Error{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Field:     field,
			RequestID: requestID,
		},
	})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	abort(c, http.StatusBadRequest, "BAD_REQUEST", message, "", requestID)
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	abort(c, http.StatusBadRequest, "VALIDATION_ERROR", message, field, requestID)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	abort(c, http.StatusNotFound, "NOT_FOUND", message, "", requestID)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message, requestID string) {
	abort(c, http.StatusConflict, "CONFLICT", message, "", requestID)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", "", requestID)
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// The error is also attached to the gin context for the access log.
func FromDomainError(c *gin.Context, err error, requestID string) {
	_ = c.Error(err)

	var domainErr *domain.DomainError
	hasDetail := errors.As(err, &domainErr)

	switch {
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsValidationError(err):
		if hasDetail {
			ValidationError(c, domainErr.Field, domainErr.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsConflict(err):
		message := err.Error()
		if hasDetail && domainErr.Message != "" {
			message = domainErr.Message
		}
		Conflict(c, message, requestID)
	default:
		InternalError(c, requestID)
	}
}
