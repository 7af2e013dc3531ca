package pricing

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/iwvelando/barrier-pricing/pkg/mathutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of base shock rows each simulation worker owns.
// Chunk seeds are drawn in chunk order before any worker starts, so the
// output is identical for any GOMAXPROCS.
const chunkSize = 1024

// MonteCarloResult is the outcome of one Monte Carlo pricing call.
type MonteCarloResult struct {
	Price    float64
	StdError float64
	Runtime  time.Duration
}

// NewPathRNG builds the generator owned by one simulation call. A nil seed
// produces a time-derived stream, so unseeded runs differ run to run.
func NewPathRNG(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

// SimulateGBMPaths simulates geometric Brownian motion price paths on a grid
// of nSteps intervals using the exact-in-log Euler update. The returned
// matrix has exactly nPaths rows of nSteps+1 prices, row 0 column 0 holding
// the initial price. With antithetic enabled, a base block of ceil(nPaths/2)
// shock rows is mirrored with its negation and the stacked block truncated to
// nPaths rows. Output is deterministic given the generator's seed; row i
// depends only on shock row i mod the base block.
func SimulateGBMPaths(params OptionParams, nPaths, nSteps int, antithetic bool, rng *rand.Rand) [][]float64 {
	dt := params.Maturity / float64(nSteps)
	drift := (params.Rate - 0.5*params.Volatility*params.Volatility) * dt
	diffusion := params.Volatility * math.Sqrt(dt)

	basePaths := nPaths
	if antithetic {
		basePaths = (nPaths + 1) / 2
	}

	shocks := make([][]float64, basePaths)
	nChunks := (basePaths + chunkSize - 1) / chunkSize
	chunkSeeds := make([]int64, nChunks)
	for i := range chunkSeeds {
		chunkSeeds[i] = rng.Int63()
	}

	var draws errgroup.Group
	draws.SetLimit(runtime.NumCPU())
	for c := 0; c < nChunks; c++ {
		c := c
		draws.Go(func() error {
			chunkRNG := rand.New(rand.NewSource(chunkSeeds[c]))
			lo := c * chunkSize
			hi := lo + chunkSize
			if hi > basePaths {
				hi = basePaths
			}
			for i := lo; i < hi; i++ {
				row := make([]float64, nSteps)
				for t := range row {
					row[t] = chunkRNG.NormFloat64()
				}
				shocks[i] = row
			}
			return nil
		})
	}
	// Workers write disjoint rows and never fail; the group is used for its
	// bounded fan-out.
	_ = draws.Wait()

	logS0 := math.Log(params.InitialPrice)
	paths := make([][]float64, nPaths)
	var evolve errgroup.Group
	evolve.SetLimit(runtime.NumCPU())
	for c := 0; c*chunkSize < nPaths; c++ {
		c := c
		evolve.Go(func() error {
			lo := c * chunkSize
			hi := lo + chunkSize
			if hi > nPaths {
				hi = nPaths
			}
			for i := lo; i < hi; i++ {
				var row []float64
				sign := 1.0
				if i >= basePaths {
					// Mirrored half of the antithetic stack.
					row = shocks[i-basePaths]
					sign = -1.0
				} else {
					row = shocks[i]
				}
				path := make([]float64, nSteps+1)
				path[0] = params.InitialPrice
				logS := logS0
				for t := 0; t < nSteps; t++ {
					logS += drift + diffusion*sign*row[t]
					path[t+1] = math.Exp(logS)
				}
				paths[i] = path
			}
			return nil
		})
	}
	_ = evolve.Wait()

	return paths
}

// PriceBarrierMonteCarlo estimates the discounted risk-neutral price of the
// barrier option by path simulation. The returned standard error is the plain
// sample standard deviation (n−1 denominator) over sqrt(nPaths); it is
// deliberately not adjusted for antithetic pairing, so it overstates the true
// error when antithetic is on.
func PriceBarrierMonteCarlo(logger *zap.Logger, params OptionParams, nPaths, nSteps int, antithetic bool, seed *int64) (MonteCarloResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if nPaths < 1 {
		return MonteCarloResult{}, fmt.Errorf("nPaths must be at least 1, got %d", nPaths)
	}
	if nSteps < 1 {
		return MonteCarloResult{}, fmt.Errorf("nSteps must be at least 1, got %d", nSteps)
	}

	start := time.Now()

	rng := NewPathRNG(seed)
	paths := SimulateGBMPaths(params, nPaths, nSteps, antithetic, rng)

	discount := math.Exp(-params.Rate * params.Maturity)
	discounted := make([]float64, nPaths)
	for i, path := range paths {
		payoff, err := PayoffFromPath(path, params)
		if err != nil {
			return MonteCarloResult{}, err
		}
		discounted[i] = discount * payoff
	}

	price := mathutil.Mean(discounted)
	stdError := mathutil.StandardError(discounted)
	elapsed := time.Since(start)

	logger.Debug("monte carlo pricing complete",
		zap.String("op", "pricing.PriceBarrierMonteCarlo"),
		zap.Int("nPaths", nPaths),
		zap.Int("nSteps", nSteps),
		zap.Bool("antithetic", antithetic),
		zap.Float64("price", price),
		zap.Float64("stdError", stdError),
		zap.Duration("runtime", elapsed),
	)

	return MonteCarloResult{Price: price, StdError: stdError, Runtime: elapsed}, nil
}
