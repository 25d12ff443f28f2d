package plan

import (
	"errors"

	"github.com/rs/zerolog"

	"builder-generator/internal/assemble"
	"builder-generator/internal/classify"
	"builder-generator/internal/schema"
	"builder-generator/internal/synth"
)

// Options configures a Resolver.
type Options struct {
	// AccessorKey is the attribute option naming accessor mutators.
	AccessorKey string
	// Naming controls builder, constructor and build method names.
	Naming synth.Options
	// Logger receives per-record debug output.
	Logger zerolog.Logger
}

// Resolver derives builders for records.
type Resolver struct {
	classifier *classify.Classifier
	naming     synth.Options
	log        zerolog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(opts Options) *Resolver {
	return &Resolver{
		classifier: classify.New(opts.AccessorKey),
		naming:     opts.Naming,
		log:        opts.Logger.With().Str("component", "plan").Logger(),
	}
}

// Resolve derives every record. Records with schema errors are left out of
// the plan and reported in its diagnostics.
func (r *Resolver) Resolve(records []schema.Record) *Plan {
	p := &Plan{}

	for i := range records {
		rec := &records[i]

		rp, err := r.ResolveRecord(rec)
		if err != nil {
			r.log.Debug().Err(err).Str("record", rec.ID.String()).Msg("record aborted")
			p.Diagnostics.AddSchemaError(rec.ID.String(), err)

			continue
		}

		p.Records = append(p.Records, rp)
	}

	return p
}

// ResolveRecord runs classification, synthesis and assembly derivation for
// one record. A returned *schema.Error names the record and field.
func (r *Resolver) ResolveRecord(rec *schema.Record) (RecordPlan, error) {
	classes, err := r.classifier.ClassifyAll(rec.Fields)
	if err != nil {
		return RecordPlan{}, inRecord(err, rec.ID.Name)
	}

	bs, err := synth.Synthesize(rec, classes, r.naming)
	if err != nil {
		return RecordPlan{}, inRecord(err, rec.ID.Name)
	}

	r.log.Debug().
		Str("record", rec.ID.String()).
		Str("builder", bs.BuilderTypeName).
		Int("mutators", len(bs.Entries)).
		Msg("builder derived")

	return RecordPlan{
		Record:   rec,
		Builder:  bs,
		Assembly: assemble.Derive(bs),
	}, nil
}

func inRecord(err error, record string) error {
	var se *schema.Error
	if errors.As(err, &se) {
		se.InRecord(record)
	}

	return err
}
