package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"safesign/internal/http/middleware"
	"safesign/internal/service"
	"safesign/internal/template"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError translates the service error taxonomy into HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	var missing *template.MissingSignerError

	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, template.ErrUnknownTemplate):
		return writeError(c, fiber.StatusBadRequest, "UNKNOWN_TEMPLATE", "unknown document type")
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, service.ErrUnknownSigner):
		return writeError(c, fiber.StatusNotFound, "UNKNOWN_SIGNER", "signer not found")
	case errors.Is(err, service.ErrInvalidState):
		return writeError(c, fiber.StatusConflict, "INVALID_STATE", "operation not allowed in current status")
	case errors.Is(err, service.ErrAlreadySigned):
		return writeError(c, fiber.StatusConflict, "ALREADY_SIGNED", "signer has already signed")
	case errors.Is(err, service.ErrLinkInactive):
		return writeError(c, fiber.StatusGone, "LINK_INACTIVE", "share link is not active")
	case errors.Is(err, service.ErrDocumentClosed):
		return writeError(c, fiber.StatusGone, "DOCUMENT_CLOSED", "document is no longer open for signing")
	case errors.As(err, &missing):
		return writeError(c, fiber.StatusUnprocessableEntity, "MISSING_SIGNER", "required signer missing: "+missing.Role)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
