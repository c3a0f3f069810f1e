package api

import (
	"errors"
	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/services"
)

// mapServiceError writes the envelope for a service-layer error. Business
// failures keep HTTP 200; only unexpected errors log at Error level.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return fail(c, CodeInvalidParam, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, CodeNotFound, "")
	}
	if errors.Is(err, services.ErrNotCancellable) {
		return fail(c, CodeConflict, "task is not in a cancellable state")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return fail(c, CodeConflict, "")
	}
	if errors.Is(err, services.ErrNoTranscript) {
		return fail(c, CodeNotFound, "task has no transcript")
	}
	if errors.Is(err, selector.ErrAllExhausted) {
		return fail(c, CodeAllExhausted, "")
	}
	if errors.Is(err, selector.ErrNoProviders) || errors.Is(err, selector.ErrPreferredUnavailable) {
		return fail(c, CodeVendorError, "no provider available")
	}

	var provErr *providers.Error
	if errors.As(err, &provErr) {
		switch provErr.Kind {
		case providers.KindQuotaExceeded:
			return fail(c, CodeQuotaExceeded, "")
		case providers.KindInvalidFormat:
			return fail(c, CodeInvalidParam, provErr.Error())
		default:
			return fail(c, CodeVendorError, "")
		}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "trace_id", traceID(c), "error", err)
	return fail(c, CodeSystemError, "")
}
