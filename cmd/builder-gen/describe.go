package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"builder-generator/internal/plan"
)

func newDescribeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [packages]",
		Short: "Print the derived builder descriptors without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Output format: yaml or json")

	return cmd
}

func runDescribe(cmd *cobra.Command, opts *options, patterns []string) error {
	var export func(*plan.Plan) ([]byte, error)

	switch opts.format {
	case "yaml":
		export = plan.ExportYAML
	case "json":
		export = plan.ExportJSON
	default:
		return fmt.Errorf("unknown format %q, expected yaml or json", opts.format)
	}

	pl, err := runPipeline(cmd, opts, patterns)
	if err != nil {
		return err
	}

	out, err := export(pl.plan)
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return pl.err()
}
