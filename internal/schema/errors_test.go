package schema

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := Errorf(KindAttributeTypeMismatch, "Count", "field type is int, not a slice")
	assert.Equal(t, "Count: attribute type mismatch: field type is int, not a slice", err.Error())

	err.InRecord("Order")
	assert.Equal(t, "Order.Count: attribute type mismatch: field type is int, not a slice", err.Error())

	recordOnly := &Error{Kind: KindNameCollision, Record: "Order"}
	assert.Equal(t, "Order: name collision", recordOnly.Error())
}

func TestError_Is(t *testing.T) {
	kinds := map[ErrorKind]error{
		KindAttributeTypeMismatch: ErrAttributeTypeMismatch,
		KindMalformedAttribute:    ErrMalformedAttribute,
		KindMultipleAttributes:    ErrMultipleAttributes,
		KindTypeExtractionFailed:  ErrTypeExtractionFailed,
		KindNameCollision:         ErrNameCollision,
	}

	for kind, sentinel := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			wrapped := fmt.Errorf("deriving: %w", Errorf(kind, "F", "detail"))
			assert.ErrorIs(t, wrapped, sentinel)

			var se *Error
			require.True(t, errors.As(wrapped, &se))
			assert.Equal(t, kind, se.Kind)

			for other, otherSentinel := range kinds {
				if other != kind {
					assert.NotErrorIs(t, wrapped, otherSentinel)
				}
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "AttributeTypeMismatch", KindAttributeTypeMismatch.String())
	assert.Equal(t, "MalformedAttribute", KindMalformedAttribute.String())
	assert.Equal(t, "MultipleAttributes", KindMultipleAttributes.String())
	assert.Equal(t, "TypeExtractionFailed", KindTypeExtractionFailed.String())
	assert.Equal(t, "NameCollision", KindNameCollision.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
