package sentiment

// ClassProbability is one bar of the result chart.
type ClassProbability struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Result is the outcome of classifying one text.
type Result struct {
	Text          string             `json:"text"`
	Label         string             `json:"label"`
	Probabilities []ClassProbability `json:"probabilities"`
	// Confidence is the highest class probability.
	Confidence float64 `json:"confidence"`
}

// Probability returns the probability of label, or false if the classifier
// does not know it.
func (r Result) Probability(label string) (float64, bool) {
	for _, p := range r.Probabilities {
		if p.Label == label {
			return p.Probability, true
		}
	}
	return 0, false
}

// --- Artifacts ---

// VectorizerArtifact is the exported state of a fitted TF-IDF vectorizer.
type VectorizerArtifact struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf,omitempty"`
	Lowercase    *bool          `json:"lowercase,omitempty"`
	NgramRange   [2]int         `json:"ngram_range"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Binary       bool           `json:"binary"`
	Norm         *string        `json:"norm,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty"`
	StopWords    []string       `json:"stop_words,omitempty"`
}

// ClassifierArtifact is the exported state of a fitted linear model. A
// multinomial naive Bayes model fits the same shape with its feature log
// probabilities as Coef and its class log priors as Intercept.
type ClassifierArtifact struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
	// MultiClass is "multinomial" (softmax, the default) or "ovr".
	MultiClass string `json:"multi_class,omitempty"`
}
