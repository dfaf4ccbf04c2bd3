package model

import (
	"math"
	"sort"
)

// EvaluationResult holds held-out classification metrics.
type EvaluationResult struct {
	Accuracy float64
	LogLoss  float64
	ROCAUC   float64
}

// Probabilities are clipped into [eps, 1-eps] before taking logs so a hard
// 0 or 1 cannot blow up the loss.
const probabilityEpsilon = 1e-15

// computeAccuracy is the share of labels matched by thresholding the
// probabilities at threshold (>= is a positive call).
func computeAccuracy(labels []bool, probs []float64, threshold float64) float64 {
	if len(labels) == 0 {
		return 0
	}
	correct := 0
	for i, p := range probs {
		if (p >= threshold) == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels))
}

// computeLogLoss is the mean negative log-likelihood of the labels under the
// predicted probabilities.
func computeLogLoss(labels []bool, probs []float64) float64 {
	if len(labels) == 0 {
		return 0
	}
	sum := 0.0
	for i, p := range probs {
		p = clipProbability(p)
		if labels[i] {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(len(labels))
}

func clipProbability(p float64) float64 {
	if p < probabilityEpsilon {
		return probabilityEpsilon
	}
	if p > 1-probabilityEpsilon {
		return 1 - probabilityEpsilon
	}
	return p
}

// computeROCAUC computes the area under the ROC curve via the rank statistic:
// probabilities are ranked ascending with ties sharing their average rank,
// and the positive ranks are compared against the best possible case.
// Requires both classes to be present.
func computeROCAUC(labels []bool, probs []float64) float64 {
	n := len(probs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return probs[order[i]] < probs[order[j]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && probs[order[j]] == probs[order[i]] {
			j++
		}
		// Tied block [i, j) shares the average of ranks i+1..j.
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = avg
		}
		i = j
	}

	nPos, nNeg := 0, 0
	sumPosRanks := 0.0
	for i, label := range labels {
		if label {
			nPos++
			sumPosRanks += ranks[i]
		} else {
			nNeg++
		}
	}
	return (sumPosRanks - float64(nPos)*float64(nPos+1)/2) / (float64(nPos) * float64(nNeg))
}
