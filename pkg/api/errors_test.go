package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation error", services.NewValidationError("source_type", "is required"), CodeInvalidParam},
		{"not found", services.ErrNotFound, CodeNotFound},
		{"wrapped not found", errors.Join(errors.New("lookup"), services.ErrNotFound), CodeNotFound},
		{"not cancellable", services.ErrNotCancellable, CodeConflict},
		{"no transcript", services.ErrNoTranscript, CodeNotFound},
		{"all quotas exhausted", selector.ErrAllExhausted, CodeAllExhausted},
		{"no providers", selector.ErrNoProviders, CodeVendorError},
		{"provider quota exceeded", providers.Errorf(providers.KindQuotaExceeded, "deepgram", "quota exhausted"), CodeQuotaExceeded},
		{"provider invalid format", providers.Errorf(providers.KindInvalidFormat, "deepgram", "unsupported codec"), CodeInvalidParam},
		{"provider transient", providers.Errorf(providers.KindTransient, "deepgram", "http 503"), CodeVendorError},
		{"unexpected", errors.New("boom"), CodeSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c, rec := newTestContext(t, req)

			require.NoError(t, mapServiceError(c, tt.err))
			assert.Equal(t, http.StatusOK, rec.Code)

			var env Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}
