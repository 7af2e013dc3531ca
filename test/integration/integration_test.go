// Package integration exercises the full pipeline: configuration loading,
// both convergence sweeps, and result persistence.
package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/barrier-pricing/internal/config"
	"github.com/iwvelando/barrier-pricing/internal/experiment"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
	"github.com/iwvelando/barrier-pricing/pkg/output"
	"go.uber.org/zap"
)

const integrationConfigYAML = `---
option:
  initialPrice: 100.0
  strike: 100.0
  rate: 0.05
  volatility: 0.2
  maturity: 1.0
  barrier: 90.0
  barrierType: down-and-out
  optionType: call

experiment:
  monteCarloSteps: [25, 50]
  treeSteps: [50, 100]
  paths: 4000
  antithetic: true
  seed: 123

output:
  format: csv
`

func TestEndToEndConvergenceStudy(t *testing.T) {
	logger := zap.NewNop()
	workDir := t.TempDir()

	configPath := filepath.Join(workDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(integrationConfigYAML), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := config.LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings, err := conf.ValidateConfiguration()
	if err != nil {
		t.Fatalf("ValidateConfiguration() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected configuration warnings: %v", warnings)
	}

	params, err := conf.OptionParams()
	if err != nil {
		t.Fatalf("OptionParams() error = %v", err)
	}

	mcResults, err := experiment.RunMCConvergence(logger, params, conf.Experiment.Paths,
		conf.Experiment.MonteCarloSteps, conf.Experiment.Antithetic, conf.Experiment.Seed)
	if err != nil {
		t.Fatalf("RunMCConvergence() error = %v", err)
	}
	treeResults, err := experiment.RunTreeConvergence(logger, params, conf.Experiment.TreeSteps)
	if err != nil {
		t.Fatalf("RunTreeConvergence() error = %v", err)
	}

	results := append(mcResults, treeResults...)
	if len(results) != 4 {
		t.Fatalf("got %d results, expected 4", len(results))
	}

	// Every price should land in a plausible band around the converged value.
	for _, result := range results {
		if result.Price < 6.0 || result.Price > 10.5 {
			t.Errorf("%s price at %d steps = %.4f, far outside the expected band",
				result.Method, result.NSteps, result.Price)
		}
	}

	resultsPath := filepath.Join(workDir, "data", "results.csv")
	if err := output.SaveResultsCSV(results, resultsPath); err != nil {
		t.Fatalf("SaveResultsCSV() error = %v", err)
	}

	file, err := os.Open(resultsPath)
	if err != nil {
		t.Fatalf("failed to open results: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse results: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d CSV rows, expected header plus 4 results", len(records))
	}

	mcRows, treeRows := 0, 0
	for _, record := range records[1:] {
		switch record[0] {
		case constants.MethodMonteCarlo:
			mcRows++
			if record[2] == "" || record[4] == "" {
				t.Errorf("MC row missing n_paths or std_error: %v", record)
			}
		case constants.MethodTree:
			treeRows++
			if record[2] != "" || record[4] != "" {
				t.Errorf("tree row should leave n_paths and std_error empty: %v", record)
			}
		default:
			t.Errorf("unexpected method label %q", record[0])
		}
	}
	if mcRows != 2 || treeRows != 2 {
		t.Errorf("got %d MC rows and %d tree rows, expected 2 and 2", mcRows, treeRows)
	}

	plotsDir := filepath.Join(workDir, "plots")
	if err := output.PlotConvergence(results, plotsDir); err != nil {
		t.Fatalf("PlotConvergence() error = %v", err)
	}
	for _, name := range []string{"price_convergence.png", "runtime_comparison.png", "mc_std_error.png"} {
		if _, err := os.Stat(filepath.Join(plotsDir, name)); err != nil {
			t.Errorf("expected plot %s: %v", name, err)
		}
	}
}
