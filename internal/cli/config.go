// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pitheorem/buckingham"
	"github.com/katalvlaran/pitheorem/matrix"
)

// Configuration keys. Each is also a flag name and, upper-cased with the
// PITHEOREM_ prefix, an environment variable.
const (
	keyConfig       = "config"
	keyOutput       = "output"
	keyLogLevel     = "log-level"
	keyJobs         = "jobs"
	keyIntegerBasis = "integer-basis"
	keyVerify       = "verify"

	envPrefix = "PITHEOREM"
)

// Defaults.
const (
	DefaultOutput   = "text"
	DefaultLogLevel = "warning"
	DefaultJobs     = 4
	DefaultVerify   = true
)

// Output names beyond the buckingham.Format renderings.
const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// Config is the resolved configuration of one invocation. Precedence is
// flag, then environment, then config file, then default.
type Config struct {
	Output       string
	LogLevel     logrus.Level
	Jobs         int
	IntegerBasis bool
	Verify       bool
}

// newViper returns a viper instance reading PITHEOREM_* variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyOutput, DefaultOutput)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyJobs, DefaultJobs)
	v.SetDefault(keyIntegerBasis, matrix.DefaultIntegerBasis)
	v.SetDefault(keyVerify, DefaultVerify)

	return v
}

// bindFlags attaches every flag of fs that viper knows about.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == keyConfig {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})

	return err
}

// readConfigFile loads path into v when path is not empty.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// loadConfig resolves and validates the configuration held by v.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Output:       strings.ToLower(strings.TrimSpace(v.GetString(keyOutput))),
		Jobs:         v.GetInt(keyJobs),
		IntegerBasis: v.GetBool(keyIntegerBasis),
		Verify:       v.GetBool(keyVerify),
	}

	lvl, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("--%s: %w", keyLogLevel, err)
	}
	cfg.LogLevel = lvl

	switch cfg.Output {
	case outputYAML, outputJSON:
	default:
		if _, err = buckingham.ParseFormat(cfg.Output); err != nil {
			return Config{}, fmt.Errorf("--%s: %w", keyOutput, err)
		}
	}
	if cfg.Jobs < 1 {
		return Config{}, fmt.Errorf("--%s must be at least 1, got %d", keyJobs, cfg.Jobs)
	}

	return cfg, nil
}

// options maps the configuration onto the solver's functional options.
func (c Config) options() []matrix.Option {
	return []matrix.Option{matrix.WithIntegerBasis(c.IntegerBasis)}
}
