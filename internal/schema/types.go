package schema

import (
	"strconv"
	"strings"

	"builder-generator/internal/common"
)

// RecordID uniquely identifies a record by its package path and name.
type RecordID struct {
	PkgPath string // e.g., "builder-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the RecordID.
func (id RecordID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// Record is one struct declaration selected for builder generation.
type Record struct {
	ID      RecordID
	PkgName string  // package clause name of PkgPath
	Dir     string  // directory of the package sources, empty for synthetic records
	Fields  []Field // declaration order
}

// Field returns the field with the given name.
func (r *Record) Field(name string) (*Field, bool) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i], true
		}
	}

	return nil, false
}

// Field describes one declared field of a record.
type Field struct {
	Name       string      // Go field name; the type name for embedded fields
	Type       *TypeRef    // declared type
	Attributes []Attribute // every builder tag entry, in tag order
	Embedded   bool        // whether the field is embedded (anonymous)
	Index      int         // field index in the struct
}

// TypeKind represents the kind of a type reference.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, any, etc.
	TypeKindNamed              // declared type, possibly instantiated
	TypeKindPointer            // *T
	TypeKindSlice              // []T
	TypeKindArray              // [N]T
	TypeKindMap                // map[K]V
	TypeKindChan               // chan T
	TypeKindFunc               // func(...) ...
	TypeKindInterface          // interface{ ... }
	TypeKindStruct             // struct{ ... }
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindNamed:
		return "named"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindChan:
		return "chan"
	case TypeKindFunc:
		return "func"
	case TypeKindInterface:
		return "interface"
	case TypeKindStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// ChanDir is the direction of a channel type.
type ChanDir int

const (
	ChanBoth ChanDir = iota
	ChanSend
	ChanRecv
)

// TypeRef is a reference to a declared type.
// Which fields are meaningful depends on Kind.
type TypeRef struct {
	Kind TypeKind

	PkgPath string     // named: defining package, empty for universe types
	Name    string     // basic and named
	Args    []*TypeRef // named: type arguments of an instantiation

	Elem *TypeRef // pointer, slice, array, chan, map value
	Key  *TypeRef // map key
	Len  int64    // array length
	Dir  ChanDir  // chan direction

	Params   []*TypeRef // func parameters
	Results  []*TypeRef // func results
	Variadic bool       // last param is ...T (stored as []T)

	Methods   []Method      // interface methods
	Embeddeds []*TypeRef    // interface embedded types
	Fields    []StructField // anonymous struct fields
}

// Method is one method of an anonymous interface type.
type Method struct {
	Name      string
	Signature *TypeRef // TypeKindFunc
}

// StructField is one field of an anonymous struct type.
type StructField struct {
	Name     string
	Type     *TypeRef
	Tag      string
	Embedded bool
}

// Basic returns a reference to a predeclared type such as "int".
func Basic(name string) *TypeRef {
	return &TypeRef{Kind: TypeKindBasic, Name: name}
}

// Named returns a reference to a declared type, optionally instantiated.
func Named(pkgPath, name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeKindNamed, PkgPath: pkgPath, Name: name, Args: args}
}

// PointerTo returns a reference to *elem.
func PointerTo(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeKindPointer, Elem: elem}
}

// SliceOf returns a reference to []elem.
func SliceOf(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeKindSlice, Elem: elem}
}

// MapOf returns a reference to map[key]elem.
func MapOf(key, elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeKindMap, Key: key, Elem: elem}
}

// String returns the Go spelling of the type with packages shortened to
// their last path element (e.g., "[]time.Time", "map[string]*store.Order").
func (t *TypeRef) String() string {
	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t *TypeRef) write(sb *strings.Builder) {
	if t == nil {
		sb.WriteString("<nil>")
		return
	}

	switch t.Kind {
	case TypeKindBasic:
		sb.WriteString(t.Name)

	case TypeKindNamed:
		if alias := common.Qualifier(t.PkgPath); alias != "" {
			sb.WriteString(alias)
			sb.WriteString(".")
		}

		sb.WriteString(t.Name)

		if len(t.Args) > 0 {
			sb.WriteString("[")
			writeList(sb, t.Args)
			sb.WriteString("]")
		}

	case TypeKindPointer:
		sb.WriteString("*")
		t.Elem.write(sb)

	case TypeKindSlice:
		sb.WriteString("[]")
		t.Elem.write(sb)

	case TypeKindArray:
		sb.WriteString("[" + strconv.FormatInt(t.Len, 10) + "]")
		t.Elem.write(sb)

	case TypeKindMap:
		sb.WriteString("map[")
		t.Key.write(sb)
		sb.WriteString("]")
		t.Elem.write(sb)

	case TypeKindChan:
		switch t.Dir {
		case ChanSend:
			sb.WriteString("chan<- ")
		case ChanRecv:
			sb.WriteString("<-chan ")
		default:
			sb.WriteString("chan ")
		}

		t.Elem.write(sb)

	case TypeKindFunc:
		sb.WriteString("func")
		t.writeSignature(sb)

	case TypeKindInterface:
		if len(t.Methods) == 0 && len(t.Embeddeds) == 0 {
			sb.WriteString("interface{}")
			return
		}

		sb.WriteString("interface{ ")

		for i, e := range t.Embeddeds {
			if i > 0 {
				sb.WriteString("; ")
			}

			e.write(sb)
		}

		for i, m := range t.Methods {
			if i > 0 || len(t.Embeddeds) > 0 {
				sb.WriteString("; ")
			}

			sb.WriteString(m.Name)
			m.Signature.writeSignature(sb)
		}

		sb.WriteString(" }")

	case TypeKindStruct:
		sb.WriteString("struct{")

		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteString(";")
			}

			sb.WriteString(" ")

			if !f.Embedded {
				sb.WriteString(f.Name)
				sb.WriteString(" ")
			}

			f.Type.write(sb)
		}

		if len(t.Fields) > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString("}")

	default:
		sb.WriteString(common.UnknownStr)
	}
}

func (t *TypeRef) writeSignature(sb *strings.Builder) {
	sb.WriteString("(")

	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		if t.Variadic && i == len(t.Params)-1 && p != nil && p.Kind == TypeKindSlice {
			sb.WriteString("...")
			p.Elem.write(sb)

			continue
		}

		p.write(sb)
	}

	sb.WriteString(")")

	switch len(t.Results) {
	case 0:
	case 1:
		sb.WriteString(" ")
		t.Results[0].write(sb)
	default:
		sb.WriteString(" (")
		writeList(sb, t.Results)
		sb.WriteString(")")
	}
}

func writeList(sb *strings.Builder, list []*TypeRef) {
	for i, a := range list {
		if i > 0 {
			sb.WriteString(", ")
		}

		a.write(sb)
	}
}
