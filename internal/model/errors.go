package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFitted is returned when a prediction is requested before a
	// successful Fit.
	ErrNotFitted = errors.New("predictor is not fitted")

	// ErrEmptyTrainingSet is returned when Fit receives no observations or
	// no feature columns.
	ErrEmptyTrainingSet = errors.New("empty training set")

	// ErrSingleClassLabels is returned by Evaluate when the labels do not
	// contain both classes. ROC-AUC is undefined in that case.
	ErrSingleClassLabels = errors.New("evaluation labels contain a single class")
)

// MissingFeatureError reports configured feature columns that appear in no
// input row.
type MissingFeatureError struct {
	Columns []string // sorted
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing feature columns: %s", strings.Join(e.Columns, ", "))
}
