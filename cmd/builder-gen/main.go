// Package main provides the CLI entrypoint for builder-gen.
//
// builder-gen reads Go struct declarations and writes a companion builder
// type for each one. It is meant to run from a go:generate directive:
//
//	//go:generate go run builder-generator/cmd/builder-gen
//
// Records are selected by --type, or by a //buildergen:builder line in the
// type's doc comment.
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"builder-generator/internal/config"
)

// options holds flag values shared by all commands.
type options struct {
	configFile string
	typeNames  []string
	pretty     bool
	verbose    bool

	dryRun    bool
	outputDir string

	format string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "builder-gen [packages]",
		Short: "Generate builder types for Go structs",
		Long: `builder-gen writes a <Record>Builder type next to every selected struct.
Required fields must be set before Build succeeds, pointer fields are optional,
and slice fields tagged builder:"each=Name" grow one element per Name call.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	def := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Config file (default ./"+config.FileName+".yaml)")
	pf.StringSliceVarP(&opts.typeNames, "type", "t", nil, "Record names to generate builders for (default: records marked by the directive)")
	pf.BoolVar(&opts.pretty, "pretty", false, "Use pretty console logging instead of structured JSON")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("suffix", def.Suffix, "Suffix appended to record names to name builders")
	pf.String("tag", def.Tag, "Struct tag key carrying builder attributes")
	pf.String("accessor-key", def.AccessorKey, "Attribute option naming the element mutator")
	pf.String("constructor-prefix", def.ConstructorPrefix, "Prefix of builder constructors")
	pf.String("build-method", def.BuildMethod, "Name of the assembling method")
	pf.String("directive", def.Directive, "Doc comment directive marking records")

	addGenerateFlags(rootCmd, opts)

	rootCmd.AddCommand(newGenerateCmd(opts), newDescribeCmd(opts))

	return rootCmd
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"suffix":             config.KeySuffix,
	"tag":                config.KeyTag,
	"accessor-key":       config.KeyAccessorKey,
	"constructor-prefix": config.KeyConstructorPrefix,
	"build-method":       config.KeyBuildMethod,
	"directive":          config.KeyDirective,
}

// loadConfig merges defaults, the config file, environment and flags.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	v, err := config.NewViper(opts.configFile)
	if err != nil {
		return config.Config{}, err
	}

	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}

	return config.Load(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}

func newLogger(w io.Writer, opts *options) zerolog.Logger {
	output := w
	if opts.pretty {
		output = zerolog.ConsoleWriter{Out: w}
	}

	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
