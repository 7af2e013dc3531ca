package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// VanillaBlackScholes returns the closed-form Black-Scholes price of the
// contract's vanilla counterpart, ignoring the barrier. Both engines should
// converge to it when the barrier is too far from spot to matter.
func VanillaBlackScholes(params OptionParams) (float64, error) {
	sqrtT := math.Sqrt(params.Maturity)
	variance := params.Volatility * params.Volatility
	d1 := (math.Log(params.InitialPrice/params.Strike) + (params.Rate+0.5*variance)*params.Maturity) /
		(params.Volatility * sqrtT)
	d2 := d1 - params.Volatility*sqrtT
	discountedStrike := params.Strike * math.Exp(-params.Rate*params.Maturity)

	switch params.OptionType {
	case Call:
		return params.InitialPrice*stdNormal.CDF(d1) - discountedStrike*stdNormal.CDF(d2), nil
	case Put:
		return discountedStrike*stdNormal.CDF(-d2) - params.InitialPrice*stdNormal.CDF(-d1), nil
	}
	return 0, fmt.Errorf("unknown optionType %q", params.OptionType)
}
