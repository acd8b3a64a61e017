package handler

import (
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2"

	"mdlib/internal/http/middleware"
	"mdlib/internal/repository"
	"mdlib/internal/service"
	"mdlib/internal/storage"
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

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

func writeNotFound(c *fiber.Ctx, what string) error {
	return writeError(c, fiber.StatusNotFound, "NOT_FOUND", what+" not found")
}

var validationErrors = []error{
	service.ErrTitleRequired,
	service.ErrNameRequired,
	service.ErrQueryRequired,
	service.ErrPathRequired,
	service.ErrKeyRequired,
}

// writeServiceError maps service and store failures onto the error envelope.
// Only sentinel messages reach the client.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", v.Error())
		}
	}

	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", service.ErrIDRequired.Error())
	case errors.Is(err, repository.ErrConstraintViolation):
		return writeError(c, fiber.StatusConflict, "CONSTRAINT_VIOLATION", "referenced record does not exist or value already taken")
	case errors.Is(err, storage.ErrInvalidKey):
		return writeInvalidKey(c)
	case errors.Is(err, repository.ErrInvalidQuery):
		return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid search query")
	case errors.Is(err, fs.ErrNotExist):
		return writeError(c, fiber.StatusNotFound, "FILE_NOT_FOUND", "file not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusUnprocessableEntity:
			return writeError(c, status, "INVALID_BODY", "request body must be JSON")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
