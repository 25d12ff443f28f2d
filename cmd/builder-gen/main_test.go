package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/plan"
)

const (
	storePkg     = "builder-generator/store"
	warehousePkg = "builder-generator/warehouse"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestDescribe_JSON(t *testing.T) {
	out, _, err := execute(t, "describe", "--format", "json", "--type", "Product", storePkg)
	require.NoError(t, err)

	var doc plan.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Builders, 1)

	bd := doc.Builders[0]
	assert.Equal(t, "ProductBuilder", bd.Builder)
	assert.Equal(t, "NewProductBuilder", bd.Constructor)

	var mutators []string
	for _, m := range bd.Mutators {
		mutators = append(mutators, m.Name)
	}

	assert.Contains(t, mutators, "Tag")
	assert.NotContains(t, mutators, "Tags")
}

func TestDescribe_YAMLWithNamingFlags(t *testing.T) {
	out, _, err := execute(t, "describe", "--type", "Product", "--suffix", "Draft", "--build-method", "Finish", storePkg)
	require.NoError(t, err)

	assert.Contains(t, out, "builder: ProductDraft")
	assert.Contains(t, out, "constructor: NewProductDraft")
	assert.Contains(t, out, "build_method: Finish")
}

func TestDescribe_EnvOverride(t *testing.T) {
	t.Setenv("BUILDERGEN_CONSTRUCTOR_PREFIX", "Make")

	out, _, err := execute(t, "describe", "--type", "Product", storePkg)
	require.NoError(t, err)
	assert.Contains(t, out, "constructor: MakeProductBuilder")
}

func TestDescribe_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "describe", "--format", "toml", storePkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGenerate_DryRun(t *testing.T) {
	out, _, err := execute(t, "--dry-run", "--type", "Product", storePkg)
	require.NoError(t, err)

	assert.Contains(t, out, "product_builder.go")
	assert.Contains(t, out, "type ProductBuilder struct")
	assert.Contains(t, out, "func (b *ProductBuilder) Tag(tag string) *ProductBuilder")
}

func TestGenerate_WritesFiles(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "generate", "--output", dir, storePkg)
	require.NoError(t, err)

	for _, name := range []string{"product_builder.go", "order_builder.go", "event_builder.go"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	assert.NoFileExists(t, filepath.Join(dir, "customer_builder.go"))
	assert.Contains(t, stderr, "Builder written")

	content, err := os.ReadFile(filepath.Join(dir, "order_builder.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "func (b *OrderBuilder) Item(item OrderItem) *OrderBuilder")
}

func TestGenerate_RejectedRecordsFail(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "generate", "--output", dir, warehousePkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record(s) rejected")

	assert.Contains(t, stderr, "AttributeTypeMismatch")
	assert.Contains(t, stderr, "MultipleAttributes")
	assert.Contains(t, stderr, "MalformedAttribute")
	assert.Contains(t, stderr, "GenericRecord")

	// valid records of the same package are still written
	assert.FileExists(t, filepath.Join(dir, "crate_builder.go"))
}

func TestGenerate_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--dry-run", "--suffix=-bad", storePkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suffix")
}

func TestGenerate_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "builder.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("suffix: Maker\n"), 0o644))

	out, _, err := execute(t, "--dry-run", "--config", cfgPath, "--type", "Product", storePkg)
	require.NoError(t, err)
	assert.Contains(t, out, "type ProductMaker struct")
}
