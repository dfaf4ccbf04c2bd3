package model

import (
	"sort"
)

// DefaultThreshold is the probability cutoff used when callers have no
// reason to pick another one.
const DefaultThreshold = 0.5

// Observation is one labeled training or evaluation example: a feature map
// keyed by column name and the game outcome for the row's team.
type Observation struct {
	Features map[string]float64
	Win      bool
}

// MatchupPredictor is a win classifier: feature standardization followed by
// logistic regression. The zero value is unfitted; Fit must succeed before
// any prediction call. Raw values for feature columns absent from a row are
// treated as 0 before standardization.
type MatchupPredictor struct {
	featureColumns []string
	scaler         *standardScaler
	weights        []float64 // [bias, one weight per feature column]
}

// NewMatchupPredictor returns an unfitted predictor.
func NewMatchupPredictor() *MatchupPredictor {
	return &MatchupPredictor{}
}

// Fitted reports whether Fit has completed successfully.
func (p *MatchupPredictor) Fitted() bool {
	return p.weights != nil
}

// FeatureColumns returns a copy of the fitted feature columns, or nil before
// Fit.
func (p *MatchupPredictor) FeatureColumns() []string {
	if p.featureColumns == nil {
		return nil
	}
	out := make([]string, len(p.featureColumns))
	copy(out, p.featureColumns)
	return out
}

// Fit trains the scaler and logistic weights on the observations, using
// exactly the given feature columns in the given order. A column that
// appears in no observation fails with MissingFeatureError; a successful
// Fit replaces any previous state.
func (p *MatchupPredictor) Fit(observations []Observation, featureColumns []string) error {
	if len(observations) == 0 || len(featureColumns) == 0 {
		return ErrEmptyTrainingSet
	}

	cols := make([]string, len(featureColumns))
	copy(cols, featureColumns)

	rows := make([]map[string]float64, len(observations))
	for i := range observations {
		rows[i] = observations[i].Features
	}
	if err := validateColumns(rows, cols); err != nil {
		return err
	}

	matrix := buildMatrix(rows, cols)
	scaler := fitScaler(matrix)
	for i := range matrix {
		matrix[i] = scaler.transform(matrix[i])
	}

	labels := make([]float64, len(observations))
	for i := range observations {
		if observations[i].Win {
			labels[i] = 1
		}
	}

	p.featureColumns = cols
	p.scaler = scaler
	p.weights = trainLogistic(matrix, labels)
	return nil
}

// PredictProba returns the win probability for each row, in input order.
func (p *MatchupPredictor) PredictProba(rows []map[string]float64) ([]float64, error) {
	matrix, err := p.prepare(rows)
	if err != nil {
		return nil, err
	}
	probs := make([]float64, len(matrix))
	for i, row := range matrix {
		probs[i] = sigmoid(p.weights[0] + dot(p.weights[1:], row))
	}
	return probs, nil
}

// Predict thresholds PredictProba at the given cutoff. A probability exactly
// on the cutoff is a predicted win.
func (p *MatchupPredictor) Predict(rows []map[string]float64, threshold float64) ([]bool, error) {
	probs, err := p.PredictProba(rows)
	if err != nil {
		return nil, err
	}
	wins := make([]bool, len(probs))
	for i, prob := range probs {
		wins[i] = prob >= threshold
	}
	return wins, nil
}

// Evaluate scores the predictor on labeled observations: accuracy at the
// default threshold, log-loss, and ROC-AUC. Labels must contain both
// classes, otherwise ErrSingleClassLabels. Evaluate never mutates the
// predictor, so repeated calls return identical results.
func (p *MatchupPredictor) Evaluate(observations []Observation) (EvaluationResult, error) {
	if !p.Fitted() {
		return EvaluationResult{}, ErrNotFitted
	}

	hasWin, hasLoss := false, false
	for i := range observations {
		if observations[i].Win {
			hasWin = true
		} else {
			hasLoss = true
		}
	}
	if !hasWin || !hasLoss {
		return EvaluationResult{}, ErrSingleClassLabels
	}

	rows := make([]map[string]float64, len(observations))
	labels := make([]bool, len(observations))
	for i := range observations {
		rows[i] = observations[i].Features
		labels[i] = observations[i].Win
	}

	probs, err := p.PredictProba(rows)
	if err != nil {
		return EvaluationResult{}, err
	}

	return EvaluationResult{
		Accuracy: computeAccuracy(labels, probs, DefaultThreshold),
		LogLoss:  computeLogLoss(labels, probs),
		ROCAUC:   computeROCAUC(labels, probs),
	}, nil
}

// prepare validates rows against the fitted columns and returns the
// standardized matrix.
func (p *MatchupPredictor) prepare(rows []map[string]float64) ([][]float64, error) {
	if !p.Fitted() {
		return nil, ErrNotFitted
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := validateColumns(rows, p.featureColumns); err != nil {
		return nil, err
	}
	matrix := buildMatrix(rows, p.featureColumns)
	for i := range matrix {
		matrix[i] = p.scaler.transform(matrix[i])
	}
	return matrix, nil
}

// validateColumns requires every configured column to appear in at least one
// row. Columns absent everywhere are reported sorted.
func validateColumns(rows []map[string]float64, cols []string) error {
	present := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			present[k] = true
		}
	}

	var missing []string
	for _, c := range cols {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingFeatureError{Columns: missing}
	}
	return nil
}

// buildMatrix lays rows out as dense vectors in column order, filling absent
// keys with 0.
func buildMatrix(rows []map[string]float64, cols []string) [][]float64 {
	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		vec := make([]float64, len(cols))
		for j, c := range cols {
			vec[j] = row[c]
		}
		matrix[i] = vec
	}
	return matrix
}
