package sentiment

import "context"

// Vectorizer turns raw text into the classifier's feature vector.
type Vectorizer interface {
	Transform(text string) []float64
}

// Classifier scores a feature vector over a fixed label set. PredictProba
// returns one probability per entry of Classes, in the same order.
type Classifier interface {
	Classes() []string
	Predict(x []float64) string
	PredictProba(x []float64) []float64
}

//go:generate mockery --name UseCase
type UseCase interface {
	Classify(ctx context.Context, text string) (Result, error)
}
