// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/barrier-pricing/internal/pricing"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
	"github.com/iwvelando/barrier-pricing/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for barrier-pricing.
type Configuration struct {
	Option     OptionConfig
	Experiment ExperimentConfig
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// OptionConfig describes the contract and market as written in the config
// file. The enum strings are parsed into pricing types by OptionParams, so an
// unknown value fails at construction time rather than mid-pricing.
type OptionConfig struct {
	InitialPrice float64
	Strike       float64
	Rate         float64
	Volatility   float64
	Maturity     float64
	Barrier      float64
	BarrierType  string
	OptionType   string
}

// ExperimentConfig holds the convergence sweep grid. A nil Seed means every
// run draws a fresh random stream.
type ExperimentConfig struct {
	MonteCarloSteps []int
	TreeSteps       []int
	Paths           int
	Antithetic      bool
	Seed            *int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format and location configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"` // pretty, csv
	ResultsFile    string `yaml:"resultsFile,omitempty"`
	PlotsDirectory string `yaml:"plotsDirectory,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()

	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.Output.ResultsFile == "" {
		c.Output.ResultsFile = constants.DefaultResultsFile
	}
	if c.Output.PlotsDirectory == "" {
		c.Output.PlotsDirectory = constants.DefaultPlotsDir
	}
}

// OptionParams parses the configured contract into the pricing value object.
func (c *Configuration) OptionParams() (pricing.OptionParams, error) {
	barrierType, err := pricing.ParseBarrierType(c.Option.BarrierType)
	if err != nil {
		return pricing.OptionParams{}, err
	}
	optionType, err := pricing.ParseOptionType(c.Option.OptionType)
	if err != nil {
		return pricing.OptionParams{}, err
	}

	return pricing.OptionParams{
		InitialPrice: c.Option.InitialPrice,
		Strike:       c.Option.Strike,
		Rate:         c.Option.Rate,
		Volatility:   c.Option.Volatility,
		Maturity:     c.Option.Maturity,
		Barrier:      c.Option.Barrier,
		BarrierType:  barrierType,
		OptionType:   optionType,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration. It
// returns warnings for settings that are legal but suspicious and an error
// for settings the engines cannot price at all.
func (c *Configuration) ValidateConfiguration() ([]string, error) {
	if c.Option.InitialPrice <= 0 {
		return nil, fmt.Errorf("option.initialPrice must be positive, got %v", c.Option.InitialPrice)
	}
	if c.Option.Strike <= 0 {
		return nil, fmt.Errorf("option.strike must be positive, got %v", c.Option.Strike)
	}
	if c.Option.Maturity <= 0 {
		return nil, fmt.Errorf("option.maturity must be positive, got %v", c.Option.Maturity)
	}
	if c.Option.Volatility < 0 {
		return nil, fmt.Errorf("option.volatility must not be negative, got %v", c.Option.Volatility)
	}
	if c.Experiment.Paths < 1 {
		return nil, fmt.Errorf("experiment.paths must be at least 1, got %d", c.Experiment.Paths)
	}
	if len(c.Experiment.MonteCarloSteps) == 0 {
		return nil, fmt.Errorf("experiment.monteCarloSteps must not be empty")
	}
	if len(c.Experiment.TreeSteps) == 0 {
		return nil, fmt.Errorf("experiment.treeSteps must not be empty")
	}
	for _, steps := range c.Experiment.MonteCarloSteps {
		if steps < 1 {
			return nil, fmt.Errorf("experiment.monteCarloSteps entries must be at least 1, got %d", steps)
		}
	}
	for _, steps := range c.Experiment.TreeSteps {
		if steps < 1 {
			return nil, fmt.Errorf("experiment.treeSteps entries must be at least 1, got %d", steps)
		}
	}

	params, err := c.OptionParams()
	if err != nil {
		return nil, err
	}

	warnings := validation.WarnOptionParams(params)
	if c.Experiment.Paths < 100 {
		warnings = append(warnings, fmt.Sprintf(
			"experiment.paths is only %d; Monte Carlo standard errors will be large", c.Experiment.Paths))
	}

	return warnings, nil
}
