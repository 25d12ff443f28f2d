package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordID_String(t *testing.T) {
	id := RecordID{PkgPath: "builder-generator/store", Name: "Order"}
	assert.Equal(t, "builder-generator/store.Order", id.String())

	// Empty package path
	idNoPkg := RecordID{Name: "Order"}
	assert.Equal(t, "Order", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "named", TypeKindNamed.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestTypeRef_String(t *testing.T) {
	timeT := Named("time", "Time")

	tests := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{"basic", Basic("int"), "int"},
		{"universe named", Named("", "error"), "error"},
		{"qualified", timeT, "time.Time"},
		{"pointer", PointerTo(Basic("string")), "*string"},
		{"slice of named", SliceOf(Named("builder-generator/store", "Item")), "[]store.Item"},
		{"map", MapOf(Basic("string"), PointerTo(timeT)), "map[string]*time.Time"},
		{"instantiated", Named("sync/atomic", "Pointer", Basic("int")), "atomic.Pointer[int]"},
		{"array", &TypeRef{Kind: TypeKindArray, Len: 4, Elem: Basic("byte")}, "[4]byte"},
		{"recv chan", &TypeRef{Kind: TypeKindChan, Dir: ChanRecv, Elem: Basic("int")}, "<-chan int"},
		{"empty interface", &TypeRef{Kind: TypeKindInterface}, "interface{}"},
		{
			"variadic func",
			&TypeRef{
				Kind:     TypeKindFunc,
				Params:   []*TypeRef{Basic("string"), SliceOf(Basic("any"))},
				Results:  []*TypeRef{Basic("int"), Named("", "error")},
				Variadic: true,
			},
			"func(string, ...any) (int, error)",
		},
		{
			"interface with method",
			&TypeRef{Kind: TypeKindInterface, Methods: []Method{{
				Name:      "String",
				Signature: &TypeRef{Kind: TypeKindFunc, Results: []*TypeRef{Basic("string")}},
			}}},
			"interface{ String() string }",
		},
		{
			"struct",
			&TypeRef{Kind: TypeKindStruct, Fields: []StructField{
				{Name: "A", Type: Basic("int")},
				{Name: "Time", Type: timeT, Embedded: true},
			}},
			"struct{ A int; time.Time }",
		},
		{"empty struct", &TypeRef{Kind: TypeKindStruct}, "struct{}"},
		{"nil elem", &TypeRef{Kind: TypeKindPointer}, "*<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

func TestRecord_Field(t *testing.T) {
	rec := Record{
		ID: RecordID{Name: "Order"},
		Fields: []Field{
			{Name: "ID", Type: Basic("int")},
			{Name: "Tags", Type: SliceOf(Basic("string"))},
		},
	}

	f, ok := rec.Field("Tags")
	assert.True(t, ok)
	assert.Equal(t, TypeKindSlice, f.Type.Kind)

	_, ok = rec.Field("Missing")
	assert.False(t, ok)
}
