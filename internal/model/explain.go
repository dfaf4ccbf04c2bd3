package model

import (
	"math"
	"sort"
)

// FeatureContribution is one feature's pull on a prediction: its
// standardized value times the fitted coefficient. Positive pushes toward a
// win call, negative away from it.
type FeatureContribution struct {
	Column       string
	Contribution float64
}

// Explanation breaks a single prediction down into its strongest feature
// contributions.
type Explanation struct {
	Probability   float64
	Contributions []FeatureContribution
}

// Explain scores one feature row and ranks the per-feature contributions by
// absolute magnitude, strongest first. topN limits the list; zero or
// negative means all features. Ties keep fitted column order.
func (p *MatchupPredictor) Explain(features map[string]float64, topN int) (*Explanation, error) {
	matrix, err := p.prepare([]map[string]float64{features})
	if err != nil {
		return nil, err
	}
	standardized := matrix[0]

	contributions := make([]FeatureContribution, len(p.featureColumns))
	for i, col := range p.featureColumns {
		contributions[i] = FeatureContribution{
			Column:       col,
			Contribution: standardized[i] * p.weights[i+1],
		}
	}
	sort.SliceStable(contributions, func(i, j int) bool {
		return math.Abs(contributions[i].Contribution) > math.Abs(contributions[j].Contribution)
	})

	if topN > 0 && topN < len(contributions) {
		contributions = contributions[:topN]
	}

	return &Explanation{
		Probability:   sigmoid(p.weights[0] + dot(p.weights[1:], standardized)),
		Contributions: contributions,
	}, nil
}
