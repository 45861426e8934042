package sentiment

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadArtifacts reads both exported artifacts and checks that the vectorizer
// output fits the classifier input.
func LoadArtifacts(modelPath, vectorizerPath string) (*TFIDF, *Linear, error) {
	var va VectorizerArtifact
	if err := readJSON(vectorizerPath, &va); err != nil {
		return nil, nil, err
	}
	vec, err := NewTFIDF(va)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", vectorizerPath, err)
	}

	var ca ClassifierArtifact
	if err := readJSON(modelPath, &ca); err != nil {
		return nil, nil, err
	}
	clf, err := NewLinear(ca)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", modelPath, err)
	}

	if vec.Dim() != clf.Dim() {
		return nil, nil, fmt.Errorf("%w: vectorizer emits %d features, classifier expects %d", ErrDimensionMismatch, vec.Dim(), clf.Dim())
	}
	return vec, clf, nil
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, path, err)
	}
	return nil
}
