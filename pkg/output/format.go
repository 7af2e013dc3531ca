// Package output provides utilities for formatting, persisting, and plotting
// experiment results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iwvelando/barrier-pricing/internal/experiment"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// csvHeader is the persisted result schema, one row per experiment.
var csvHeader = []string{"method", "n_steps", "n_paths", "price", "std_error", "runtime"}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []experiment.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Method | Steps | Paths   | Price    | Std Error | Runtime\n")
	fmt.Printf("______ | _____ | _______ | ________ | _________ | _______\n")
	for _, result := range results {
		if result.Method == constants.MethodMonteCarlo {
			_, _ = p.Printf("%-6s | %5d | %7d | %8.4f | %9.4f | %.4fs\n",
				result.Method, result.NSteps, result.NPaths, result.Price, result.StdError, result.Runtime.Seconds())
		} else {
			_, _ = p.Printf("%-6s | %5d | %7s | %8.4f | %9s | %.4fs\n",
				result.Method, result.NSteps, "", result.Price, "", result.Runtime.Seconds())
		}
	}
}

// CsvFormat outputs in comma-separated value format on stdout.
func CsvFormat(results []experiment.Result) error {
	return writeRecords(os.Stdout, results)
}

// SaveResultsCSV persists the results to path, creating the parent directory
// if needed.
func SaveResultsCSV(results []experiment.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory %s: %v", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file %s: %v", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return writeRecords(file, results)
}

func writeRecords(w io.Writer, results []experiment.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, result := range results {
		// n_paths and std_error stay empty for tree rows.
		nPaths := ""
		stdError := ""
		if result.Method == constants.MethodMonteCarlo {
			nPaths = strconv.Itoa(result.NPaths)
			stdError = strconv.FormatFloat(result.StdError, 'g', -1, 64)
		}
		record := []string{
			result.Method,
			strconv.Itoa(result.NSteps),
			nPaths,
			strconv.FormatFloat(result.Price, 'g', -1, 64),
			stdError,
			strconv.FormatFloat(result.Runtime.Seconds(), 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
