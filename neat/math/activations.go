package math

import "math"

// Sigmoid is the logistic activation function used by every hidden and output node of the
// evaluated network: σ(x) = 1/(1+e^-x). It is total over all of ℝ, including ±Inf.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
