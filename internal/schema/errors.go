package schema

import (
	"errors"
	"fmt"

	"builder-generator/internal/common"
)

// ErrorKind is the class of a generation-time schema error.
type ErrorKind int

const (
	_ ErrorKind = iota

	// KindAttributeTypeMismatch: a builder attribute on a field that is not a slice.
	KindAttributeTypeMismatch
	// KindMalformedAttribute: the attribute payload is not exactly one accessor option.
	KindMalformedAttribute
	// KindMultipleAttributes: more than one builder attribute on one field.
	KindMultipleAttributes
	// KindTypeExtractionFailed: a wrapper type whose parameter cannot be extracted.
	KindTypeExtractionFailed
	// KindNameCollision: two builder members would share a Go identifier.
	KindNameCollision
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrAttributeTypeMismatch = errors.New("attribute type mismatch")
	ErrMalformedAttribute    = errors.New("malformed attribute")
	ErrMultipleAttributes    = errors.New("multiple attributes")
	ErrTypeExtractionFailed  = errors.New("type extraction failed")
	ErrNameCollision         = errors.New("name collision")
)

// String returns the diagnostic code of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindAttributeTypeMismatch:
		return "AttributeTypeMismatch"
	case KindMalformedAttribute:
		return "MalformedAttribute"
	case KindMultipleAttributes:
		return "MultipleAttributes"
	case KindTypeExtractionFailed:
		return "TypeExtractionFailed"
	case KindNameCollision:
		return "NameCollision"
	default:
		return common.UnknownStr
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindAttributeTypeMismatch:
		return ErrAttributeTypeMismatch
	case KindMalformedAttribute:
		return ErrMalformedAttribute
	case KindMultipleAttributes:
		return ErrMultipleAttributes
	case KindTypeExtractionFailed:
		return ErrTypeExtractionFailed
	case KindNameCollision:
		return ErrNameCollision
	default:
		return nil
	}
}

// Error is a schema error. It aborts builder generation for Record.
type Error struct {
	Kind   ErrorKind
	Record string // record name, filled in by the planner
	Field  string // offending field, empty for record-level errors
	Detail string
}

// Errorf returns a new *Error for field.
func Errorf(kind ErrorKind, field, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	msg := "schema error"
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		msg = sentinel.Error()
	}

	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	switch {
	case e.Record != "" && e.Field != "":
		return e.Record + "." + e.Field + ": " + msg
	case e.Field != "":
		return e.Field + ": " + msg
	case e.Record != "":
		return e.Record + ": " + msg
	default:
		return msg
	}
}

// Is reports whether target is the sentinel of e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// InRecord returns e with Record set.
func (e *Error) InRecord(name string) *Error {
	e.Record = name
	return e
}
