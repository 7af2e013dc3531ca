// Package pricing implements the numerical engines for pricing a single
// knock-out barrier option under geometric Brownian motion: a Monte Carlo
// path simulator with antithetic variance reduction and a Cox-Ross-Rubinstein
// binomial lattice with discrete barrier monitoring.
package pricing

import (
	"fmt"
	"math"
)

// BarrierType identifies the knock-out style of the contract.
type BarrierType string

// OptionType identifies the vanilla payoff shape.
type OptionType string

const (
	// DownAndOut options are extinguished when the price falls to or below
	// the barrier.
	DownAndOut BarrierType = "down-and-out"
	// UpAndOut options are extinguished when the price rises to or above
	// the barrier.
	UpAndOut BarrierType = "up-and-out"

	Call OptionType = "call"
	Put  OptionType = "put"
)

// ParseBarrierType validates a configured barrier type string so that
// unknown values fail at construction time rather than mid-pricing.
func ParseBarrierType(s string) (BarrierType, error) {
	switch BarrierType(s) {
	case DownAndOut, UpAndOut:
		return BarrierType(s), nil
	}
	return "", fmt.Errorf("unknown barrierType %q, expected %q or %q", s, DownAndOut, UpAndOut)
}

// ParseOptionType validates a configured option type string.
func ParseOptionType(s string) (OptionType, error) {
	switch OptionType(s) {
	case Call, Put:
		return OptionType(s), nil
	}
	return "", fmt.Errorf("unknown optionType %q, expected %q or %q", s, Call, Put)
}

// OptionParams describes one barrier option contract and the market it is
// priced in. It is constructed once per pricing request and read-only
// thereafter.
type OptionParams struct {
	InitialPrice float64 // spot at valuation
	Strike       float64
	Rate         float64 // risk-free rate, annual, continuously compounded
	Volatility   float64 // annualized
	Maturity     float64 // years
	Barrier      float64
	BarrierType  BarrierType
	OptionType   OptionType
}

// Breached reports whether a single observed price is at or beyond the
// barrier.
func Breached(price float64, params OptionParams) (bool, error) {
	switch params.BarrierType {
	case DownAndOut:
		return price <= params.Barrier, nil
	case UpAndOut:
		return price >= params.Barrier, nil
	}
	return false, fmt.Errorf("unknown barrierType %q", params.BarrierType)
}

// BarrierHit reports whether any price along the path breaches the barrier.
// Monitoring is discrete at the simulated grid points.
func BarrierHit(path []float64, params OptionParams) (bool, error) {
	for _, price := range path {
		hit, err := Breached(price, params)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}

// VanillaPayoff is the European payoff at a terminal price, ignoring the
// barrier.
func VanillaPayoff(terminal float64, params OptionParams) (float64, error) {
	switch params.OptionType {
	case Call:
		return math.Max(terminal-params.Strike, 0), nil
	case Put:
		return math.Max(params.Strike-terminal, 0), nil
	}
	return 0, fmt.Errorf("unknown optionType %q", params.OptionType)
}

// PayoffFromPath evaluates the knock-out payoff for one full simulated path.
// Once the barrier is breached the option is worth zero for the remainder of
// its life, regardless of where the path ends up.
func PayoffFromPath(path []float64, params OptionParams) (float64, error) {
	hit, err := BarrierHit(path, params)
	if err != nil {
		return 0, err
	}
	if hit {
		return 0, nil
	}
	return VanillaPayoff(path[len(path)-1], params)
}
