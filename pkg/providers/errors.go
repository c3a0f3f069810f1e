package providers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provider failure for retry and breaker decisions.
type ErrorKind int

// Error kinds.
const (
	// KindTransient covers network failures, timeouts, and vendor 5xx.
	// Retry eligible.
	KindTransient ErrorKind = iota
	// KindQuotaExceeded means the vendor-side quota is spent.
	KindQuotaExceeded
	// KindInvalidFormat means the input cannot be processed, terminal.
	KindInvalidFormat
	// KindUnavailable means the vendor rejected the call outright
	// (auth, permission, unsupported), terminal.
	KindUnavailable
	// KindConfig means the local provider configuration is incomplete.
	KindConfig
)

// Error is a classified provider failure.
type Error struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with a kind and the provider name.
func NewError(kind ErrorKind, provider string, err error) *Error {
	return &Error{Kind: kind, Provider: provider, Err: err}
}

// Errorf is NewError with fmt-style message construction.
func Errorf(kind ErrorKind, provider, format string, args ...any) *Error {
	return &Error{Kind: kind, Provider: provider, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the classification of err. Unclassified errors are treated
// as transient so the retry layer gets a chance at them.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}

// IsTransient reports whether err is retry eligible.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}

// Sentinel errors for registry and capability lookups.
var (
	// ErrDuplicateRegistration is returned when a (service_type, name) pair
	// is registered twice.
	ErrDuplicateRegistration = errors.New("provider already registered")

	// ErrNotRegistered is returned when a provider lookup misses.
	ErrNotRegistered = errors.New("provider not registered")

	// ErrStreamingUnsupported is returned by ChatStream on non-streaming clients.
	ErrStreamingUnsupported = errors.New("streaming not supported by this provider")
)
