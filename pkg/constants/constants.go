// Package constants provides shared constants for the barrier-pricing
// application.
package constants

// Method labels used in results and persisted CSV rows.
const (
	// MethodMonteCarlo labels rows produced by the Monte Carlo engine.
	MethodMonteCarlo = "MC"

	// MethodTree labels rows produced by the binomial tree engine.
	MethodTree = "Tree"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Default output locations
const (
	// DefaultResultsFile is where experiment rows are persisted
	DefaultResultsFile = "data/results.csv"

	// DefaultPlotsDir is where convergence plots are rendered
	DefaultPlotsDir = "plots"
)
