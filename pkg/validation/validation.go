// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/barrier-pricing/internal/pricing"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported
// formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// WarnOptionParams returns warning strings for contract configurations that
// are legal but unlikely to be what the user wants. Nothing here is enforced;
// the engines price whatever they are given.
func WarnOptionParams(params pricing.OptionParams) []string {
	var warnings []string

	switch params.BarrierType {
	case pricing.DownAndOut:
		if params.Barrier >= params.InitialPrice {
			warnings = append(warnings, fmt.Sprintf(
				"down-and-out barrier %.4f is at or above the initial price %.4f; the option is knocked out immediately",
				params.Barrier, params.InitialPrice))
		}
	case pricing.UpAndOut:
		if params.Barrier <= params.InitialPrice {
			warnings = append(warnings, fmt.Sprintf(
				"up-and-out barrier %.4f is at or below the initial price %.4f; the option is knocked out immediately",
				params.Barrier, params.InitialPrice))
		}
	}

	if params.Volatility == 0 {
		warnings = append(warnings,
			"volatility is zero; both engines degenerate to a deterministic forward projection")
	}

	return warnings
}
