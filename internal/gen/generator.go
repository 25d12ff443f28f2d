package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/stoewer/go-strcase"

	"builder-generator/internal/plan"
)

// RuntimePkg is the import path of the package generated builders depend on.
const RuntimePkg = "builder-generator/builder"

// ToolName appears in the generated file header.
const ToolName = "builder-gen"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// BuildTag excludes generated files while records are loaded.
	BuildTag string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		BuildTag:         "buildergen",
		GenerateComments: true,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the record's package.
	Dir string
	// Filename is the name of the file (e.g., "order_builder.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator generates builder source from a plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Generate renders one file per record of p, in plan order.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(p.Records))

	for i := range p.Records {
		rp := &p.Records[i]

		file, err := g.GenerateRecord(rp)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", rp.Record.ID, err)
		}

		files = append(files, file)
	}

	return files, nil
}

// GenerateRecord renders the builder file of a single record.
func (g *Generator) GenerateRecord(rp *plan.RecordPlan) (GeneratedFile, error) {
	bs := rp.Builder

	out := jen.NewFilePathName(bs.Record.PkgPath, bs.PkgName)
	out.HeaderComment(fmt.Sprintf("Code generated by %s. DO NOT EDIT.", ToolName))

	if g.config.BuildTag != "" {
		out.HeaderComment("//go:build !" + g.config.BuildTag)
	}

	out.ImportName(RuntimePkg, "builder")

	e := &emitter{
		out:      out,
		schema:   bs,
		assembly: rp.Assembly,
		comments: g.config.GenerateComments,
	}
	if err := e.emit(); err != nil {
		return GeneratedFile{}, err
	}

	var buf bytes.Buffer
	if err := out.Render(&buf); err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering code: %w", err)
	}

	return GeneratedFile{
		Dir:      rp.Record.Dir,
		Filename: FileName(bs.BuilderTypeName),
		Content:  buf.Bytes(),
	}, nil
}

// FileName returns the file name used for a builder type.
func FileName(builderType string) string {
	return strcase.SnakeCase(builderType) + ".go"
}
