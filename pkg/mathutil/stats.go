// Package mathutil provides small numerical helpers shared by the pricing
// engines and their tests.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

// SampleStdDev returns the sample standard deviation of xs with the unbiased
// n−1 denominator.
func SampleStdDev(xs []float64) float64 {
	return stat.StdDev(xs, nil)
}

// StandardError returns the standard error of the mean of xs, i.e. the sample
// standard deviation over sqrt(len(xs)).
func StandardError(xs []float64) float64 {
	return SampleStdDev(xs) / math.Sqrt(float64(len(xs)))
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
