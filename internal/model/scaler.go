package model

import "math"

// standardScaler centers and scales feature vectors column by column to zero
// mean and unit variance.
type standardScaler struct {
	means  []float64
	scales []float64
}

// fitScaler computes per-column mean and population standard deviation
// (n denominator). Zero-variance columns get scale 1, so every value in such
// a column standardizes to exactly 0.
func fitScaler(matrix [][]float64) *standardScaler {
	if len(matrix) == 0 {
		return &standardScaler{}
	}

	dim := len(matrix[0])
	n := float64(len(matrix))

	means := make([]float64, dim)
	for _, row := range matrix {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= n
	}

	scales := make([]float64, dim)
	for _, row := range matrix {
		for j, v := range row {
			diff := v - means[j]
			scales[j] += diff * diff
		}
	}
	for j := range scales {
		scales[j] = math.Sqrt(scales[j] / n)
		if scales[j] == 0 {
			scales[j] = 1
		}
	}

	return &standardScaler{means: means, scales: scales}
}

// transform returns a standardized copy of row.
func (s *standardScaler) transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.means[j]) / s.scales[j]
	}
	return out
}
