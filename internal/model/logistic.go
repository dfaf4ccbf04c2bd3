package model

import "math"

// Batch gradient descent hyperparameters. Inputs are standardized, so a
// fixed learning rate converges without tuning per dataset.
const (
	logisticIterations   = 1000
	logisticLearningRate = 0.1
)

// trainLogistic fits logistic regression weights by batch gradient descent
// on standardized features. The returned slice is [bias, w1..wn]. The loop
// is fully deterministic: same inputs, same weights.
func trainLogistic(matrix [][]float64, labels []float64) []float64 {
	n := len(matrix)
	if n == 0 {
		return nil
	}
	dim := len(matrix[0]) + 1

	weights := make([]float64, dim)
	grad := make([]float64, dim)
	for iter := 0; iter < logisticIterations; iter++ {
		for k := range grad {
			grad[k] = 0
		}
		for i, row := range matrix {
			p := sigmoid(weights[0] + dot(weights[1:], row))
			d := p - labels[i]
			grad[0] += d
			for k, v := range row {
				grad[k+1] += d * v
			}
		}
		for k := range weights {
			weights[k] -= logisticLearningRate * grad[k] / float64(n)
		}
	}
	return weights
}

// sigmoid is the logistic function, clamped to avoid overflow in Exp.
func sigmoid(z float64) float64 {
	switch {
	case z > 20:
		return 1
	case z < -20:
		return 0
	}
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i, v := range a {
		sum += v * b[i]
	}
	return sum
}
