package pricing

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// TreeResult is the outcome of one binomial tree pricing call.
type TreeResult struct {
	Price   float64
	Runtime time.Duration
}

// PriceBarrierBinomialTree prices the option on a Cox-Ross-Rubinstein lattice
// with the barrier checked at every node: a node at or beyond the barrier
// kills the option at that time, not just at maturity. The scheme is fully
// deterministic and reproducible from its inputs.
func PriceBarrierBinomialTree(logger *zap.Logger, params OptionParams, nSteps int) (TreeResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if nSteps < 1 {
		return TreeResult{}, fmt.Errorf("nSteps must be at least 1, got %d", nSteps)
	}

	start := time.Now()

	dt := params.Maturity / float64(nSteps)
	u := math.Exp(params.Volatility * math.Sqrt(dt))
	d := 1 / u
	a := math.Exp(params.Rate * dt)
	p := (a - d) / (u - d)
	disc := math.Exp(-params.Rate * dt)

	logger.Debug("CRR lattice parameters",
		zap.String("op", "pricing.PriceBarrierBinomialTree"),
		zap.Int("nSteps", nSteps),
		zap.Float64("up", u),
		zap.Float64("riskNeutralP", p),
	)

	// Two layer buffers ping-ponged through backward induction; next always
	// holds the later-time layer.
	next := make([]float64, nSteps+1)
	current := make([]float64, nSteps+1)

	for j := 0; j <= nSteps; j++ {
		terminal := params.InitialPrice * math.Pow(u, float64(j)) * math.Pow(d, float64(nSteps-j))
		breached, err := Breached(terminal, params)
		if err != nil {
			return TreeResult{}, err
		}
		if breached {
			next[j] = 0
			continue
		}
		payoff, err := VanillaPayoff(terminal, params)
		if err != nil {
			return TreeResult{}, err
		}
		next[j] = payoff
	}

	for i := nSteps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			price := params.InitialPrice * math.Pow(u, float64(j)) * math.Pow(d, float64(i-j))
			breached, err := Breached(price, params)
			if err != nil {
				return TreeResult{}, err
			}
			if breached {
				current[j] = 0
				continue
			}
			current[j] = disc * (p*next[j+1] + (1-p)*next[j])
		}
		current, next = next, current
	}

	elapsed := time.Since(start)
	return TreeResult{Price: next[0], Runtime: elapsed}, nil
}
