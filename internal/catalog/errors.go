package catalog

import (
	"errors"
	"fmt"
)

// ErrMappingLoad is matched by every mapping load failure.
var ErrMappingLoad = errors.New("mapping load failed")

// LoadError reports why the mapping resource could not be retrieved.
type LoadError struct {
	Path   string
	Status int // HTTP status, 0 for non-HTTP failures
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("Failed to load %s (status %d)", e.Path, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("Failed to load %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("Failed to load %s", e.Path)
	}
}

func (e *LoadError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMappingLoad, e.Err}
	}
	return []error{ErrMappingLoad}
}
