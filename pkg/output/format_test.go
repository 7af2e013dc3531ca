package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/barrier-pricing/internal/experiment"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
)

func testResults() []experiment.Result {
	return []experiment.Result{
		{
			Method:   constants.MethodMonteCarlo,
			NSteps:   100,
			NPaths:   50000,
			Price:    8.1234,
			StdError: 0.0456,
			Runtime:  125 * time.Millisecond,
		},
		{
			Method:  constants.MethodTree,
			NSteps:  100,
			Price:   8.2345,
			Runtime: 3 * time.Millisecond,
		},
	}
}

func TestSaveResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "results.csv")

	if err := SaveResultsCSV(testResults(), path); err != nil {
		t.Fatalf("SaveResultsCSV() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open results file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse results file: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d rows, expected header plus 2 results", len(records))
	}

	header := records[0]
	expectedHeader := []string{"method", "n_steps", "n_paths", "price", "std_error", "runtime"}
	for i, column := range expectedHeader {
		if header[i] != column {
			t.Errorf("header column %d = %q, expected %q", i, header[i], column)
		}
	}

	mcRow := records[1]
	if mcRow[0] != constants.MethodMonteCarlo {
		t.Errorf("MC row method = %q, expected %q", mcRow[0], constants.MethodMonteCarlo)
	}
	if mcRow[2] != "50000" {
		t.Errorf("MC row n_paths = %q, expected 50000", mcRow[2])
	}
	if mcRow[4] == "" {
		t.Errorf("MC row std_error is empty, expected a value")
	}

	treeRow := records[2]
	if treeRow[0] != constants.MethodTree {
		t.Errorf("tree row method = %q, expected %q", treeRow[0], constants.MethodTree)
	}
	if treeRow[2] != "" {
		t.Errorf("tree row n_paths = %q, expected empty", treeRow[2])
	}
	if treeRow[4] != "" {
		t.Errorf("tree row std_error = %q, expected empty", treeRow[4])
	}
}

func TestSaveResultsCSVCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "results.csv")

	if err := SaveResultsCSV(testResults(), path); err != nil {
		t.Fatalf("SaveResultsCSV() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("results file was not created: %v", err)
	}
}

func TestPlotConvergence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")

	if err := PlotConvergence(testResults(), dir); err != nil {
		t.Fatalf("PlotConvergence() error = %v", err)
	}

	for _, name := range []string{"price_convergence.png", "runtime_comparison.png", "mc_std_error.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("expected plot %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("plot %s is empty", name)
		}
	}
}

func TestPlotConvergenceTreeOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	treeOnly := []experiment.Result{testResults()[1]}

	if err := PlotConvergence(treeOnly, dir); err != nil {
		t.Fatalf("PlotConvergence() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "price_convergence.png")); err != nil {
		t.Errorf("expected price plot: %v", err)
	}
	// No MC rows means no standard error plot.
	if _, err := os.Stat(filepath.Join(dir, "mc_std_error.png")); !os.IsNotExist(err) {
		t.Errorf("expected no standard error plot for tree-only results, stat err = %v", err)
	}
}
