package main

import (
	"os"
	"runtime"

	"github.com/hexaflex/aoc/input"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config defines program configuration.
type Config struct {
	InputDir string `yaml:"input_dir"` // Directory holding puzzle inputs.
	Debug    bool   `yaml:"debug"`     // Trace every executed Intcode instruction.
	Verbose  bool   `yaml:"verbose"`   // Enable debug logging.
	Workers  int    `yaml:"workers"`   // Goroutines available to parallel solutions.
}

// defaultConfig returns the configuration used when nothing else is specified.
func defaultConfig() *Config {
	return &Config{
		InputDir: input.DefaultDir,
		Workers:  runtime.NumCPU(),
	}
}

// addConfigFlags registers the flags parseConfig reads.
func addConfigFlags(cmd *cobra.Command) {
	c := defaultConfig()
	flags := cmd.PersistentFlags()

	flags.String("config", "", "YAML configuration file.")
	flags.String("input-dir", c.InputDir, "Directory holding puzzle inputs.")
	flags.Bool("debug", c.Debug, "Trace every executed Intcode instruction. Implies --verbose.")
	flags.BoolP("verbose", "v", c.Verbose, "Increase logging verbosity.")
	flags.Int("workers", c.Workers, "Number of goroutines used by parallel solutions. 1 disables parallelism.")
}

// parseConfig builds the configuration for cmd. Defaults are overridden by
// the configuration file, if any, which is overridden by explicitly set flags.
func parseConfig(cmd *cobra.Command) (*Config, error) {
	c := defaultConfig()
	flags := cmd.Flags()

	if file, _ := flags.GetString("config"); file != "" {
		if err := c.load(file); err != nil {
			return nil, err
		}
	}

	var err error
	if flags.Changed("input-dir") {
		c.InputDir, err = flags.GetString("input-dir")
	}
	if err == nil && flags.Changed("debug") {
		c.Debug, err = flags.GetBool("debug")
	}
	if err == nil && flags.Changed("verbose") {
		c.Verbose, err = flags.GetBool("verbose")
	}
	if err == nil && flags.Changed("workers") {
		c.Workers, err = flags.GetInt("workers")
	}
	if err != nil {
		return nil, err
	}

	if c.Workers < 1 {
		return nil, errors.Errorf("workers must be positive, have %d", c.Workers)
	}

	return c, nil
}

// load reads YAML configuration from the given file into c.
func (c *Config) load(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "config")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "config %s", file)
	}

	return nil
}

// applyLogging sets the log level for the configuration.
func (c *Config) applyLogging() {
	if c.Verbose || c.Debug {
		log.SetLevel(log.DebugLevel)
	}
}
