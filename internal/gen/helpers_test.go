package gen

import (
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

// squash collapses whitespace runs so assertions ignore gofmt alignment.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func renderType(t *testing.T, ref *schema.TypeRef) string {
	t.Helper()

	code, err := typeCode(ref)
	require.NoError(t, err)

	f := jen.NewFile("p")
	f.Var().Id("_").Add(code)

	return squash(f.GoString())
}

func resolve(t *testing.T, records ...schema.Record) *plan.Plan {
	t.Helper()

	p := plan.NewResolver(plan.Options{
		AccessorKey: "each",
		Naming:      synth.DefaultOptions(),
		Logger:      zerolog.Nop(),
	}).Resolve(records)
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

	return p
}

func orderRecord() schema.Record {
	return schema.Record{
		ID:      schema.RecordID{PkgPath: "example/store", Name: "Order"},
		PkgName: "store",
		Dir:     "/src/store",
		Fields: []schema.Field{
			{Name: "X", Type: schema.Basic("int")},
			{Name: "Y", Type: schema.PointerTo(schema.Basic("string"))},
			{
				Name:       "Tags",
				Type:       schema.SliceOf(schema.Basic("string")),
				Attributes: []schema.Attribute{{Key: "builder", Payload: "each=Tag"}},
			},
		},
	}
}
