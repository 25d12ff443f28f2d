package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/match"
	"builder-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// BuildTag excludes generated builders while loading.
const BuildTag = "buildergen"

// Options controls record extraction.
type Options struct {
	// TypeNames selects records by name. When empty, records are selected
	// by Directive.
	TypeNames []string
	// Tag is the struct tag key carrying builder attributes.
	Tag string
	// Directive marks a record in its doc comment (without the leading //).
	Directive string
	// Dir is the working directory for package patterns.
	Dir string
	// Logger receives per-record debug output.
	Logger zerolog.Logger
}

// Result is the outcome of loading packages.
type Result struct {
	// Records are the successfully extracted records, sorted by package
	// path and declaration position.
	Records []schema.Record
	// Diagnostics reports records that could not be extracted.
	Diagnostics diagnostic.Diagnostics
}

// Loader loads Go packages and extracts records.
type Loader struct {
	opts Options
	log  zerolog.Logger
}

// NewLoader creates a new Loader.
func NewLoader(opts Options) *Loader {
	return &Loader{
		opts: opts,
		log:  opts.Logger.With().Str("component", "analyze").Logger(),
	}
}

// Load loads the packages matching patterns (e.g., "./store",
// "builder-generator/warehouse") and extracts the selected records.
func (l *Loader) Load(patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        l.opts.Dir,
		BuildFlags: []string{"-tags=" + BuildTag},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	res := &Result{}
	found := make(map[string]bool)

	var known []string

	for _, pkg := range pkgs {
		known = append(known, pkg.Types.Scope().Names()...)

		for _, obj := range l.selectTypes(pkg) {
			found[obj.Name()] = true

			rec, ok := l.extractRecord(pkg, obj, &res.Diagnostics)
			if ok {
				res.Records = append(res.Records, rec)
			}
		}
	}

	for _, name := range l.opts.TypeNames {
		if !found[name] {
			return nil, fmt.Errorf("type %s not found in %s%s",
				name, strings.Join(patterns, ", "), match.Hint(name, known))
		}
	}

	l.log.Debug().Int("records", len(res.Records)).Int("packages", len(pkgs)).Msg("packages loaded")

	return res, nil
}

// selectTypes returns the type names chosen for generation, in source order.
func (l *Loader) selectTypes(pkg *packages.Package) []*types.TypeName {
	var out []*types.TypeName

	if len(l.opts.TypeNames) > 0 {
		for _, name := range l.opts.TypeNames {
			if tn, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
				out = append(out, tn)
			}
		}
	} else {
		for _, file := range pkg.Syntax {
			out = append(out, l.directiveTypes(pkg, file)...)
		}
	}

	slices.SortFunc(out, func(a, b *types.TypeName) int {
		return int(a.Pos() - b.Pos())
	})

	return out
}

// directiveTypes returns the types in file whose doc comment has the directive.
func (l *Loader) directiveTypes(pkg *packages.Package, file *ast.File) []*types.TypeName {
	var out []*types.TypeName

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			if !hasDirective(doc, l.opts.Directive) {
				continue
			}

			if tn, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
				out = append(out, tn)
			}
		}
	}

	return out
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil || directive == "" {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimRight(c.Text, " \t") == "//"+directive {
			return true
		}
	}

	return false
}

// extractRecord converts a struct type into a record. Problems are reported
// to diags and the record is skipped.
func (l *Loader) extractRecord(pkg *packages.Package, obj *types.TypeName, diags *diagnostic.Diagnostics) (schema.Record, bool) {
	id := schema.RecordID{PkgPath: pkg.PkgPath, Name: obj.Name()}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		diags.AddError(diagnostic.CodeNotAStruct, "type aliases cannot have builders", id.String(), "")
		return schema.Record{}, false
	}

	if named.TypeParams().Len() > 0 {
		diags.AddError(diagnostic.CodeGenericRecord, "generic records are not supported", id.String(), "")
		return schema.Record{}, false
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		diags.AddError(diagnostic.CodeNotAStruct,
			fmt.Sprintf("underlying type is %s, not a struct", named.Underlying()), id.String(), "")
		return schema.Record{}, false
	}

	rec := schema.Record{
		ID:      id,
		PkgName: pkg.Name,
		Dir:     packageDir(pkg),
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Name() == "_" {
			continue
		}

		attrs, err := parseAttributes(st.Tag(i), l.opts.Tag)
		if err != nil {
			diags.AddSchemaError(id.String(), schema.Errorf(schema.KindMalformedAttribute, field.Name(),
				"invalid struct tag %q: %v", st.Tag(i), err))
			return schema.Record{}, false
		}

		rec.Fields = append(rec.Fields, schema.Field{
			Name:       field.Name(),
			Type:       typeRef(field.Type()),
			Attributes: attrs,
			Embedded:   field.Embedded(),
			Index:      i,
		})
	}

	if len(rec.Fields) == 0 {
		diags.AddWarning(diagnostic.CodeNoFields, "record has no fields, its builder only builds the zero value", id.String(), "")
	}

	l.log.Debug().Str("record", id.String()).Int("fields", len(rec.Fields)).Msg("record extracted")

	return rec, true
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(pkg.GoFiles[0])
}
