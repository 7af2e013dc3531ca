// Package experiment runs the convergence sweeps that compare the two
// pricing engines across step grids.
package experiment

import (
	"time"

	"github.com/iwvelando/barrier-pricing/internal/pricing"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
	"go.uber.org/zap"
)

// Result is one pricing run within a sweep. NPaths and StdError are only
// meaningful for Monte Carlo rows; tree rows leave them zero and they are
// omitted from persisted output.
type Result struct {
	Method   string
	NSteps   int
	NPaths   int
	Price    float64
	StdError float64
	Runtime  time.Duration
}

// RunMCConvergence prices the option by Monte Carlo at each step count in
// stepsList, reusing the same seed so runs differ only in time resolution.
func RunMCConvergence(logger *zap.Logger, params pricing.OptionParams, nPaths int, stepsList []int, antithetic bool, seed *int64) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(stepsList))
	for _, nSteps := range stepsList {
		mc, err := pricing.PriceBarrierMonteCarlo(logger, params, nPaths, nSteps, antithetic, seed)
		if err != nil {
			return results, err
		}
		results = append(results, Result{
			Method:   constants.MethodMonteCarlo,
			NSteps:   nSteps,
			NPaths:   nPaths,
			Price:    mc.Price,
			StdError: mc.StdError,
			Runtime:  mc.Runtime,
		})
		logger.Info("monte carlo sweep step complete",
			zap.String("op", "experiment.RunMCConvergence"),
			zap.Int("nSteps", nSteps),
			zap.Float64("price", mc.Price),
			zap.Float64("stdError", mc.StdError),
			zap.Duration("runtime", mc.Runtime),
		)
	}

	return results, nil
}

// RunTreeConvergence prices the option on the binomial lattice at each step
// count in stepsList.
func RunTreeConvergence(logger *zap.Logger, params pricing.OptionParams, stepsList []int) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(stepsList))
	for _, nSteps := range stepsList {
		tree, err := pricing.PriceBarrierBinomialTree(logger, params, nSteps)
		if err != nil {
			return results, err
		}
		results = append(results, Result{
			Method:  constants.MethodTree,
			NSteps:  nSteps,
			Price:   tree.Price,
			Runtime: tree.Runtime,
		})
		logger.Info("tree sweep step complete",
			zap.String("op", "experiment.RunTreeConvergence"),
			zap.Int("nSteps", nSteps),
			zap.Float64("price", tree.Price),
			zap.Duration("runtime", tree.Runtime),
		)
	}

	return results, nil
}
