// Package config holds builder-gen settings. Values come from defaults, an
// optional .buildergen.yaml, BUILDERGEN_* environment variables and flags,
// in increasing priority.
package config

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/viper"

	"builder-generator/internal/synth"
)

// Config keys.
const (
	KeySuffix            = "suffix"
	KeyTag               = "tag"
	KeyAccessorKey       = "accessor_key"
	KeyConstructorPrefix = "constructor_prefix"
	KeyBuildMethod       = "build_method"
	KeyDirective         = "directive"
)

// EnvPrefix prefixes environment overrides, e.g. BUILDERGEN_SUFFIX.
const EnvPrefix = "BUILDERGEN"

// FileName is the config file looked up in the working directory.
const FileName = ".buildergen"

// Config holds configuration for builder generation.
type Config struct {
	// Suffix is appended to the record name to name its builder.
	Suffix string `mapstructure:"suffix"`
	// Tag is the struct tag key carrying builder attributes.
	Tag string `mapstructure:"tag"`
	// AccessorKey is the attribute option naming the accessor mutator.
	AccessorKey string `mapstructure:"accessor_key"`
	// ConstructorPrefix is prepended to the builder name for its constructor.
	ConstructorPrefix string `mapstructure:"constructor_prefix"`
	// BuildMethod names the assembling method.
	BuildMethod string `mapstructure:"build_method"`
	// Directive marks records for generation when no type names are given,
	// written as a //<directive> line in the type's doc comment.
	Directive string `mapstructure:"directive"`
}

// Default returns the default configuration.
func Default() Config {
	opts := synth.DefaultOptions()

	return Config{
		Suffix:            opts.Suffix,
		Tag:               "builder",
		AccessorKey:       "each",
		ConstructorPrefix: opts.ConstructorPrefix,
		BuildMethod:       opts.BuildMethod,
		Directive:         "buildergen:builder",
	}
}

// NewViper returns a viper instance with defaults and environment binding.
// When configFile is empty, .buildergen.yaml is looked up in the working
// directory and its absence is not an error.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeySuffix, def.Suffix)
	v.SetDefault(KeyTag, def.Tag)
	v.SetDefault(KeyAccessorKey, def.AccessorKey)
	v.SetDefault(KeyConstructorPrefix, def.ConstructorPrefix)
	v.SetDefault(KeyBuildMethod, def.BuildMethod)
	v.SetDefault(KeyDirective, def.Directive)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every setting produces valid Go identifiers and tags.
func (c Config) Validate() error {
	var errs []error

	if c.Suffix == "" || !token.IsIdentifier("X"+c.Suffix) {
		errs = append(errs, fmt.Errorf("%s %q cannot extend a type name", KeySuffix, c.Suffix))
	}

	if c.ConstructorPrefix == "" || !token.IsIdentifier(c.ConstructorPrefix+"X") {
		errs = append(errs, fmt.Errorf("%s %q cannot prefix a function name", KeyConstructorPrefix, c.ConstructorPrefix))
	}

	if !token.IsIdentifier(c.BuildMethod) {
		errs = append(errs, fmt.Errorf("%s %q is not a valid Go identifier", KeyBuildMethod, c.BuildMethod))
	}

	if c.Tag == "" || strings.ContainsAny(c.Tag, " \t\":`") {
		errs = append(errs, fmt.Errorf("%s %q is not a valid struct tag key", KeyTag, c.Tag))
	}

	if c.AccessorKey == "" || strings.ContainsAny(c.AccessorKey, " \t\"'=,") {
		errs = append(errs, fmt.Errorf("%s %q is not a valid attribute option", KeyAccessorKey, c.AccessorKey))
	}

	if c.Directive == "" || strings.ContainsAny(c.Directive, " \t\n") {
		errs = append(errs, fmt.Errorf("%s %q must be a single word", KeyDirective, c.Directive))
	}

	return errors.Join(errs...)
}

// SynthOptions returns the naming options for the synthesizer.
func (c Config) SynthOptions() synth.Options {
	return synth.Options{
		Suffix:            c.Suffix,
		ConstructorPrefix: c.ConstructorPrefix,
		BuildMethod:       c.BuildMethod,
	}
}
