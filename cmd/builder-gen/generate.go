package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"builder-generator/internal/analyze"
	"builder-generator/internal/gen"
)

func newGenerateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Write builder files next to their records (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	addGenerateFlags(cmd, opts)

	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print generated files instead of writing them")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Write every file into this directory instead of the record's package")
}

// runGenerate writes the builders of every valid record, then fails if any
// record was rejected.
func runGenerate(cmd *cobra.Command, opts *options, patterns []string) error {
	pl, err := runPipeline(cmd, opts, patterns)
	if err != nil {
		return err
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.BuildTag = analyze.BuildTag

	files, err := gen.NewGenerator(genCfg).Generate(pl.plan)
	if err != nil {
		return err
	}

	if opts.dryRun {
		out := cmd.OutOrStdout()
		for _, f := range files {
			fmt.Fprintf(out, "// >>> %s\n%s\n", f.Path(), f.Content)
		}
	} else {
		if err := gen.WriteFiles(files, opts.outputDir); err != nil {
			return err
		}

		for _, f := range files {
			pl.logger.Info().Str("file", f.Path()).Msg("Builder written")
		}
	}

	pl.logger.Debug().Int("files", len(files)).Msg("Generation finished")

	return pl.err()
}
