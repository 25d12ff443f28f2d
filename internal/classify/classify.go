package classify

import (
	"errors"

	"builder-generator/internal/common"
	"builder-generator/internal/schema"
)

// Kind is the accumulation strategy of a field.
type Kind int

const (
	KindRequired    Kind = iota // single slot, missing is an error
	KindOptional                // single slot, missing is nil
	KindAccumulated             // growable list, appended through the accessor
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindOptional:
		return "optional"
	case KindAccumulated:
		return "accumulated"
	default:
		return common.UnknownStr
	}
}

// Classification is the derived accumulation strategy of one field.
type Classification struct {
	Kind     Kind
	Elem     *schema.TypeRef // T: the value type a mutator takes
	Accessor string          // KindAccumulated only
}

// Required returns Required(t).
func Required(t *schema.TypeRef) Classification {
	return Classification{Kind: KindRequired, Elem: t}
}

// Optional returns Optional(t).
func Optional(t *schema.TypeRef) Classification {
	return Classification{Kind: KindOptional, Elem: t}
}

// Accumulated returns Accumulated(t, accessor).
func Accumulated(t *schema.TypeRef, accessor string) Classification {
	return Classification{Kind: KindAccumulated, Elem: t, Accessor: accessor}
}

// Classifier classifies record fields. The zero value uses DefaultAccessorKey.
type Classifier struct {
	AccessorKey string
}

// DefaultAccessorKey is the attribute option naming the accessor mutator.
const DefaultAccessorKey = "each"

// New returns a Classifier recognizing accessorKey in builder attributes.
func New(accessorKey string) *Classifier {
	return &Classifier{AccessorKey: accessorKey}
}

func (c *Classifier) accessorKey() string {
	if c == nil || c.AccessorKey == "" {
		return DefaultAccessorKey
	}

	return c.AccessorKey
}

// Classify returns the classification of f. It is a pure function of the
// declared type shape and the field's attributes.
func (c *Classifier) Classify(f schema.Field) (Classification, error) {
	if len(f.Attributes) > 1 {
		return Classification{}, schema.Errorf(schema.KindMultipleAttributes, f.Name,
			"%d builder attributes, only one is supported", len(f.Attributes))
	}

	var opts *schema.Options

	if len(f.Attributes) == 1 {
		parsed, err := schema.ParseAttribute(f.Attributes[0], c.accessorKey())
		if err != nil {
			return Classification{}, withField(err, f.Name)
		}

		opts = &parsed
	}

	shape, err := ResolveShape(f.Type)
	if err != nil {
		return Classification{}, withField(err, f.Name)
	}

	if opts != nil {
		if shape.Kind != ShapeCollection {
			return Classification{}, schema.Errorf(schema.KindAttributeTypeMismatch, f.Name,
				"%s=%s needs a slice field, declared type is %s",
				c.accessorKey(), opts.Accessor, f.Type)
		}

		return Accumulated(shape.Inner, opts.Accessor), nil
	}

	if shape.Kind == ShapeOptional {
		return Optional(shape.Inner), nil
	}

	return Required(shape.Declared), nil
}

// ClassifyAll classifies fields in order and stops at the first error.
func (c *Classifier) ClassifyAll(fields []schema.Field) ([]Classification, error) {
	out := make([]Classification, 0, len(fields))

	for _, f := range fields {
		cl, err := c.Classify(f)
		if err != nil {
			return nil, err
		}

		out = append(out, cl)
	}

	return out, nil
}

func withField(err error, field string) error {
	var se *schema.Error
	if errors.As(err, &se) && se.Field == "" {
		se.Field = field
	}

	return err
}
