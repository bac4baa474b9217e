package render

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned when an index statement has no key columns.
	ErrNoColumns = errors.New("index requires at least one column")

	// ErrUnsupportedIndexColumn is returned for expression index keys,
	// which no dialect renders.
	ErrUnsupportedIndexColumn = errors.New("expression index columns are not supported")

	// ErrMissingName is returned when a dialect requires an index name and none is set.
	ErrMissingName = errors.New("index name is required")

	// ErrMissingTable is returned when a statement does not name its table.
	ErrMissingTable = errors.New("table is required")

	// ErrInvalidOrder is returned for a key order other than ASC or DESC.
	ErrInvalidOrder = errors.New("invalid index order")
)

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Err     error
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// Unwrap exposes the sentinel cause, if any.
func (e UnsupportedFeatureError) Unwrap() error {
	return e.Err
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
