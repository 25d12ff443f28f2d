package classify

import (
	"builder-generator/internal/common"
	"builder-generator/internal/schema"
)

// ShapeKind is the wrapper structure of a declared type.
type ShapeKind int

const (
	ShapePlain      ShapeKind = iota // T
	ShapeOptional                    // *T
	ShapeCollection                  // []T
)

// String returns a human-readable representation of the ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case ShapePlain:
		return "plain"
	case ShapeOptional:
		return "optional"
	case ShapeCollection:
		return "collection"
	default:
		return common.UnknownStr
	}
}

// wrapperName is how a wrapper is spelled in messages.
func (k ShapeKind) wrapperName() string {
	switch k {
	case ShapeOptional:
		return "pointer (*T)"
	case ShapeCollection:
		return "slice ([]T)"
	default:
		return "plain type"
	}
}

// Shape is a declared type reduced to Plain(T), OptionalOf(T) or CollectionOf(T).
type Shape struct {
	Kind     ShapeKind
	Declared *schema.TypeRef // the field's declared type
	Inner    *schema.TypeRef // T; equal to Declared for ShapePlain
}

// ResolveShape classifies the top level of t.
// Pointers and slices must carry their element type.
func ResolveShape(t *schema.TypeRef) (Shape, error) {
	if t == nil {
		return Shape{}, schema.Errorf(schema.KindTypeExtractionFailed, "", "field has no declared type")
	}

	switch t.Kind {
	case schema.TypeKindPointer:
		inner, err := Unwrap(t, ShapeOptional)
		if err != nil {
			return Shape{}, err
		}

		return Shape{Kind: ShapeOptional, Declared: t, Inner: inner}, nil

	case schema.TypeKindSlice:
		inner, err := Unwrap(t, ShapeCollection)
		if err != nil {
			return Shape{}, err
		}

		return Shape{Kind: ShapeCollection, Declared: t, Inner: inner}, nil

	default:
		return Shape{Kind: ShapePlain, Declared: t, Inner: t}, nil
	}
}

// Unwrap extracts the single type parameter of the wrapper named by want.
// It fails with KindTypeExtractionFailed when t is a different wrapper or
// has no parameter.
func Unwrap(t *schema.TypeRef, want ShapeKind) (*schema.TypeRef, error) {
	var wantKind schema.TypeKind

	switch want {
	case ShapeOptional:
		wantKind = schema.TypeKindPointer
	case ShapeCollection:
		wantKind = schema.TypeKindSlice
	default:
		return nil, schema.Errorf(schema.KindTypeExtractionFailed, "",
			"%s has no type parameter to extract", want.wrapperName())
	}

	if t == nil || t.Kind != wantKind {
		return nil, schema.Errorf(schema.KindTypeExtractionFailed, "",
			"expected %s, got %s", want.wrapperName(), t)
	}

	if t.Elem == nil {
		return nil, schema.Errorf(schema.KindTypeExtractionFailed, "",
			"%s without element type", want.wrapperName())
	}

	return t.Elem, nil
}
