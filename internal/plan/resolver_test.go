package plan

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/assemble"
	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

func testResolver() *Resolver {
	return NewResolver(Options{
		AccessorKey: "each",
		Naming:      synth.DefaultOptions(),
		Logger:      zerolog.Nop(),
	})
}

func orderRecord() schema.Record {
	return schema.Record{
		ID:      schema.RecordID{PkgPath: "example/store", Name: "Order"},
		PkgName: "store",
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

func badRecord() schema.Record {
	return schema.Record{
		ID:      schema.RecordID{PkgPath: "example/store", Name: "Bad"},
		PkgName: "store",
		Fields: []schema.Field{
			{Name: "A", Type: schema.Basic("int")},
			{
				Name:       "Weight",
				Type:       schema.Basic("int"),
				Attributes: []schema.Attribute{{Key: "builder", Payload: "each=W"}},
			},
		},
	}
}

func TestResolveRecord(t *testing.T) {
	rec := orderRecord()

	rp, err := testResolver().ResolveRecord(&rec)
	require.NoError(t, err)

	assert.Same(t, &rec, rp.Record)
	assert.Equal(t, "OrderBuilder", rp.Builder.BuilderTypeName)

	names := make([]string, 0, len(rp.Builder.Entries))
	for _, m := range rp.Builder.Mutators() {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{"X", "Y", "Tag"}, names)

	require.Len(t, rp.Assembly.Rules, 3)
	assert.Equal(t, assemble.ReadTake, rp.Assembly.Rules[0].Mode)
	assert.Equal(t, assemble.ReadOptional, rp.Assembly.Rules[1].Mode)
	assert.Equal(t, assemble.ReadList, rp.Assembly.Rules[2].Mode)
}

func TestResolveRecord_SchemaErrorNamesRecord(t *testing.T) {
	rec := badRecord()

	_, err := testResolver().ResolveRecord(&rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrAttributeTypeMismatch))

	var se *schema.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Bad", se.Record)
	assert.Equal(t, "Weight", se.Field)
}

func TestResolveRecord_NameCollision(t *testing.T) {
	rec := schema.Record{
		ID: schema.RecordID{Name: "Job"},
		Fields: []schema.Field{
			{Name: "Build", Type: schema.Basic("string")},
		},
	}

	_, err := testResolver().ResolveRecord(&rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrNameCollision)
}

func TestResolve_AbortsOnlyFailingRecord(t *testing.T) {
	records := []schema.Record{badRecord(), orderRecord()}

	p := testResolver().Resolve(records)

	require.Len(t, p.Records, 1)
	assert.Equal(t, "Order", p.Records[0].Record.ID.Name)

	require.True(t, p.Diagnostics.HasErrors())
	require.Len(t, p.Diagnostics.Errors, 1)

	d := p.Diagnostics.Errors[0]
	assert.Equal(t, schema.KindAttributeTypeMismatch.String(), d.Code)
	assert.Equal(t, "example/store.Bad", d.Record)
	assert.Equal(t, "Weight", d.Field)
}

func TestResolve_Empty(t *testing.T) {
	p := testResolver().Resolve(nil)

	assert.Empty(t, p.Records)
	assert.True(t, p.Diagnostics.IsValid())
}

func TestPlan_ByPackage(t *testing.T) {
	other := orderRecord()
	other.ID = schema.RecordID{PkgPath: "example/billing", Name: "Invoice"}

	p := testResolver().Resolve([]schema.Record{orderRecord(), other})
	groups := p.ByPackage()

	require.Len(t, groups, 2)
	assert.Len(t, groups["example/store"], 1)
	assert.Equal(t, "Invoice", groups["example/billing"][0].Record.ID.Name)
}
