package cleanup

// ABOUTME: Layered option sources: the YAML config file and NMCLEANUP_*
// ABOUTME: environment variables, each overriding only what it sets.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to every environment variable name.
const envPrefix = "NMCLEANUP"

// Overrides is a partial set of options. Nil fields are left untouched by
// Apply; a non-nil empty list clears the corresponding option.
//
// Environment names derive from the field names, e.g. NMCLEANUP_SEPARATE_NESTED.
// Do not add envconfig tags: tagged fields are also looked up without the prefix.
type Overrides struct {
	Name           *string  `yaml:"name"`
	Exclude        *string  `yaml:"exclude"`
	Ignore         []string `yaml:"ignore"`
	Project        []string `yaml:"project"`
	Time           *int     `yaml:"time"`
	SeparateNested *bool    `yaml:"separate_nested" split_words:"true"`
	Yes            *bool    `yaml:"yes"`
	DryRun         *bool    `yaml:"dry_run" split_words:"true"`
}

// Apply copies every set field onto opts.
func (ov *Overrides) Apply(opts *Options) {
	if ov == nil {
		return
	}
	if ov.Name != nil {
		opts.TargetPattern = *ov.Name
	}
	if ov.Exclude != nil {
		opts.ExcludePattern = *ov.Exclude
	}
	if ov.Ignore != nil {
		opts.IgnorePaths = append([]string(nil), ov.Ignore...)
	}
	if ov.Project != nil {
		opts.IndicatorFiles = append([]string(nil), ov.Project...)
	}
	if ov.Time != nil {
		opts.ThresholdDays = *ov.Time
	}
	if ov.SeparateNested != nil {
		opts.SeparateNested = *ov.SeparateNested
	}
	if ov.Yes != nil {
		opts.AutoConfirm = *ov.Yes
	}
	if ov.DryRun != nil {
		opts.DryRun = *ov.DryRun
	}
}

// EnvConfig holds the environment overrides plus the config file location.
type EnvConfig struct {
	Overrides
	Config string // NMCLEANUP_CONFIG
}

// LoadEnv reads NMCLEANUP_* environment variables. Lists are comma separated.
func LoadEnv() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, NewConfigError("parse environment: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads the YAML config file at path. A missing file yields
// empty overrides unless required is set, in which case it is a
// *ConfigError wrapping ErrConfigNotFound. Unknown keys are rejected.
func LoadConfigFile(path string, required bool) (*Overrides, error) {
	data, err := os.ReadFile(expandTilde(path)) //nolint:gosec // G304: path is the user's config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return nil, &ConfigError{Err: fmt.Errorf("%w: %s", ErrConfigNotFound, path)}
			}
			return &Overrides{}, nil
		}
		return nil, NewConfigError("read config file: %w", err)
	}

	var ov Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ov); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigError("parse config file %s: %w", path, err)
	}
	return &ov, nil
}
