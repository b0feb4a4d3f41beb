package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/circuitsmith/quantity-service/internal/domain"
	"github.com/circuitsmith/quantity-service/internal/domain/units"
)

// MapError maps any error surfaced by a handler to an HTTP status code
// and error response. Binding and request validation failures map to 400,
// domain errors to their natural status, everything else to 500 with a
// generic message.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(
			ErrorCodeBadRequest,
			"request body could not be parsed",
		)

	case errors.Is(err, ErrInvalidCursor):
		return http.StatusBadRequest, NewErrorResponse(
			ErrorCodeBadRequest,
			"pagination cursor is invalid",
		)

	case IsValidationError(err):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		)

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(
			ErrorCodeNotFound,
			err.Error(),
		)

	case domain.IsValidation(err):
		return http.StatusBadRequest, domainValidationResponse(err)

	default:
		// Unknown errors get a generic message to avoid leaking internals.
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// domainValidationResponse builds the response for a domain validation
// failure, attaching machine-readable detail for quantity parse errors.
func domainValidationResponse(err error) *ErrorResponse {
	resp := NewErrorResponse(ErrorCodeValidation, err.Error())

	var parseErr *units.ParseError
	if errors.As(err, &parseErr) {
		details := map[string]string{
			"kind":  string(parseErr.Kind),
			"value": parseErr.Text,
		}

		if parseErr.Unit != "" {
			details["unit"] = parseErr.Unit
		}

		if parseErr.Context != "" {
			details["context"] = string(parseErr.Context)
		}

		resp.Error.Details = details

		return resp
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		resp.Error.Details = map[string]string{
			validationErr.Field: validationErr.Message,
		}
	}

	return resp
}

// HandleError writes an error response to the gin.Context, including the
// OpenTelemetry trace ID when one is present.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapError(err)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	} else {
		errResp.TraceID = GetTraceID(c)
	}

	c.JSON(status, errResp)
}
