package savings

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that user input failed a constraint check.
// It is always recoverable; callers surface it as field-level feedback.
var ErrValidation = errors.New("validation error")

// ErrNotFound indicates that a referenced goal does not exist in the ledger.
var ErrNotFound = errors.New("not found")

// validationErrorf wraps ErrValidation with a message. Errors built this way
// satisfy errors.Is(err, ErrValidation).
func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// FetchErrorKind classifies a rate provider failure.
type FetchErrorKind int

const (
	// FetchUnknown covers any failure not otherwise classified, including
	// malformed payloads and provider-reported business errors.
	FetchUnknown FetchErrorKind = iota
	// FetchRateLimited means the provider signaled throttling (429).
	FetchRateLimited
	// FetchUnauthorized means the credential was rejected (401/403).
	FetchUnauthorized
	// FetchNotFound means the endpoint or API version is wrong (404).
	FetchNotFound
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchRateLimited:
		return "rate-limited"
	case FetchUnauthorized:
		return "unauthorized"
	case FetchNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// FetchError is a rate provider failure with its classification.
// The fetcher reports it as-is; the fallback policy belongs to the caller.
type FetchError struct {
	Kind FetchErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("rate fetch failed (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StorageError is a persistence read or write failure. The in-memory ledger
// stays authoritative; callers surface this as a "changes may not be saved"
// warning rather than aborting.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error on %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
