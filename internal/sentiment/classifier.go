package sentiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	multiClassMultinomial = "multinomial"
	multiClassOVR         = "ovr"
)

// Linear is a fitted linear classifier: decision scores are coef·x + intercept.
// With a single coefficient row it is a binary model whose positive class is
// Classes()[1].
type Linear struct {
	classes   []string
	coef      [][]float64
	intercept []float64
	ovr       bool
}

// NewLinear validates a classifier artifact.
func NewLinear(a ClassifierArtifact) (*Linear, error) {
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidArtifact, len(a.Classes))
	}
	if len(a.Coef) == 0 || len(a.Coef) != len(a.Intercept) {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d intercepts", ErrInvalidArtifact, len(a.Coef), len(a.Intercept))
	}

	rows := len(a.Coef)
	switch {
	case rows == 1 && len(a.Classes) != 2:
		return nil, fmt.Errorf("%w: one coefficient row needs two classes, got %d", ErrInvalidArtifact, len(a.Classes))
	case rows > 1 && rows != len(a.Classes):
		return nil, fmt.Errorf("%w: %d coefficient rows for %d classes", ErrInvalidArtifact, rows, len(a.Classes))
	}

	dim := len(a.Coef[0])
	for i, row := range a.Coef {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: coefficient row %d has %d features, want %d", ErrDimensionMismatch, i, len(row), dim)
		}
	}

	var ovr bool
	switch a.MultiClass {
	case "", multiClassMultinomial:
	case multiClassOVR:
		ovr = true
	default:
		return nil, fmt.Errorf("%w: multi_class %q", ErrInvalidArtifact, a.MultiClass)
	}

	return &Linear{
		classes:   a.Classes,
		coef:      a.Coef,
		intercept: a.Intercept,
		ovr:       ovr,
	}, nil
}

// Dim returns the feature count the model expects.
func (m *Linear) Dim() int {
	return len(m.coef[0])
}

func (m *Linear) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// Predict returns the class with the highest decision score.
func (m *Linear) Predict(x []float64) string {
	scores := m.decision(x)
	if len(scores) == 1 {
		if scores[0] > 0 {
			return m.classes[1]
		}
		return m.classes[0]
	}
	return m.classes[floats.MaxIdx(scores)]
}

// PredictProba returns one probability per class, summing to 1.
func (m *Linear) PredictProba(x []float64) []float64 {
	scores := m.decision(x)

	if len(scores) == 1 {
		p := sigmoid(scores[0])
		return []float64{1 - p, p}
	}
	if m.ovr {
		probs := make([]float64, len(scores))
		for i, s := range scores {
			probs[i] = sigmoid(s)
		}
		floats.Scale(1/floats.Sum(probs), probs)
		return probs
	}
	return softmax(scores)
}

// decision returns coef·x + intercept per row. x is padded or cut to Dim.
func (m *Linear) decision(x []float64) []float64 {
	if len(x) != m.Dim() {
		fit := make([]float64, m.Dim())
		copy(fit, x)
		x = fit
	}

	scores := make([]float64, len(m.coef))
	for i, row := range m.coef {
		scores[i] = floats.Dot(row, x) + m.intercept[i]
	}
	return scores
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// softmax is computed through log-sum-exp so large scores do not overflow.
func softmax(z []float64) []float64 {
	lse := floats.LogSumExp(z)
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = math.Exp(v - lse)
	}
	return out
}
