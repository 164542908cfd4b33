package catalog

import (
	"errors"
	"fmt"

	"github.com/ecocart/ecocart-backend/internal/modules/enrichment"
)

// ErrNotFound is returned by single-entity lookups when no product
// matches. Listing operations return empty slices instead.
var ErrNotFound = errors.New("catalog: product not found")

// ValidationError reports a malformed or missing draft field. Raised
// before any external enrichment call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: invalid %s: %s", e.Field, e.Reason)
}

// PersistFailedError means enrichment succeeded but the storage write
// did not. It carries the computed enrichment so the caller can retry
// persistence without re-invoking the external generation calls.
type PersistFailedError struct {
	Enrichment *enrichment.Result
	Err        error
}

func (e *PersistFailedError) Error() string {
	return fmt.Sprintf("catalog: product enriched but not persisted: %v", e.Err)
}

func (e *PersistFailedError) Unwrap() error { return e.Err }
