package plan

import (
	"builder-generator/internal/assemble"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

// RecordPlan is the full derivation of one record.
type RecordPlan struct {
	Record   *schema.Record
	Builder  *synth.BuilderSchema
	Assembly *assemble.Plan
}

// Plan is the outcome of one generation pass.
type Plan struct {
	// Records holds the records that derived cleanly, in input order.
	Records []RecordPlan
	// Diagnostics reports the records that were aborted.
	Diagnostics diagnostic.Diagnostics
}

// ByPackage groups record plans by package path, preserving order.
func (p *Plan) ByPackage() map[string][]RecordPlan {
	out := make(map[string][]RecordPlan)
	for _, rp := range p.Records {
		out[rp.Record.ID.PkgPath] = append(out[rp.Record.ID.PkgPath], rp)
	}

	return out
}
