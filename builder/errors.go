package builder

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrMissingField matches every *MissingFieldError via errors.Is.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError is returned by Build when a required field was never set.
type MissingFieldError struct {
	Record string // record type name, e.g. "Order"
	Field  string // source field name, e.g. "ID"
}

func (e *MissingFieldError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
	}

	return fmt.Sprintf("%s: %s.%s", ErrMissingField, e.Record, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ClonePtr returns a pointer to a copy of *p, or nil when p is nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

// CloneSlicePtr is ClonePtr for slices. The copy has its own backing array.
func CloneSlicePtr[S ~[]E, E any](p *S) *S {
	if p == nil {
		return nil
	}

	v := slices.Clone(*p)

	return &v
}

// CloneMapPtr is ClonePtr for maps. The copy is a separate map.
func CloneMapPtr[M ~map[K]V, K comparable, V any](p *M) *M {
	if p == nil {
		return nil
	}

	v := maps.Clone(*p)

	return &v
}
