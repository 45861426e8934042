package sentiment

import (
	"context"
	"strings"

	"gemini-chat/pkg/log"
)

type implService struct {
	vec Vectorizer
	clf Classifier
	l   log.Logger
}

// New creates the classification use case over a loaded vectorizer/classifier pair.
func New(vec Vectorizer, clf Classifier, l log.Logger) UseCase {
	return &implService{vec: vec, clf: clf, l: l}
}

// Classify scores text. Blank text returns ErrEmptyText.
func (s *implService) Classify(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	x := s.vec.Transform(text)
	label := s.clf.Predict(x)
	proba := s.clf.PredictProba(x)
	classes := s.clf.Classes()

	res := Result{
		Text:          text,
		Label:         label,
		Probabilities: make([]ClassProbability, len(classes)),
	}
	for i, c := range classes {
		var p float64
		if i < len(proba) {
			p = proba[i]
		}
		res.Probabilities[i] = ClassProbability{Label: c, Probability: p}
		if p > res.Confidence {
			res.Confidence = p
		}
	}

	s.l.Debugf(ctx, "internal.sentiment.Classify: label=%s confidence=%.4f", res.Label, res.Confidence)
	return res, nil
}
