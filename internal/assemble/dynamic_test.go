package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

func TestDynamic_UnknownMutator(t *testing.T) {
	d := NewDynamic(scenarioSchema(t))

	err := d.Invoke("z", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PointBuilder has no mutator z")
}

func TestDynamic_FieldNameIsNotAccessor(t *testing.T) {
	d := NewDynamic(derive(t, "Post",
		schema.Field{Name: "Tags", Type: schema.SliceOf(schema.Basic("string")), Attributes: attr("each=Tag")},
	))

	assert.Error(t, d.Invoke("Tags", "a"))
}

func TestStorage_KindChecks(t *testing.T) {
	s := NewStorage([]synth.InitialValue{
		{Slot: "X", Kind: synth.StorageSlot},
		{Slot: "L", Kind: synth.StorageList},
	})

	assert.NoError(t, s.Replace("X", 1))
	assert.NoError(t, s.Append("L", 1))

	err := s.Append("X", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"X" is a slot, not a list`)

	assert.Error(t, s.Replace("L", 1))
	assert.Error(t, s.Replace("missing", 1))
}

func TestStorage_InitialState(t *testing.T) {
	s := NewStorage([]synth.InitialValue{
		{Slot: "X", Kind: synth.StorageSlot},
		{Slot: "L", Kind: synth.StorageList},
	})

	_, ok := s.Slot("X")
	assert.False(t, ok)
	assert.Equal(t, []any{}, s.List("L"))
}
