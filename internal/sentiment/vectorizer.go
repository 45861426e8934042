package sentiment

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// DefaultTokenPattern matches runs of two or more word characters.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

const (
	normL1   = "l1"
	normL2   = "l2"
	normNone = "none"
)

// TFIDF reproduces the transform of a fitted TF-IDF vectorizer from its
// exported vocabulary and idf weights.
type TFIDF struct {
	vocab     map[string]int
	idf       []float64
	lowercase bool
	minN      int
	maxN      int
	sublinear bool
	binary    bool
	norm      string
	stop      map[string]struct{}
	// nil selects the default pattern
	pattern *regexp.Regexp
}

// NewTFIDF validates a vectorizer artifact and prepares it for Transform.
func NewTFIDF(a VectorizerArtifact) (*TFIDF, error) {
	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: vectorizer has an empty vocabulary", ErrInvalidArtifact)
	}

	v := &TFIDF{
		vocab:     a.Vocabulary,
		idf:       a.IDF,
		lowercase: a.Lowercase == nil || *a.Lowercase,
		minN:      a.NgramRange[0],
		maxN:      a.NgramRange[1],
		sublinear: a.SublinearTF,
		binary:    a.Binary,
		norm:      normL2,
	}

	if v.minN == 0 && v.maxN == 0 {
		v.minN, v.maxN = 1, 1
	}
	if v.minN < 1 || v.maxN < v.minN {
		return nil, fmt.Errorf("%w: ngram_range %v", ErrInvalidArtifact, a.NgramRange)
	}

	if a.Norm != nil {
		switch n := strings.ToLower(*a.Norm); n {
		case normL1, normL2:
			v.norm = n
		case "", normNone:
			v.norm = normNone
		default:
			return nil, fmt.Errorf("%w: norm %q", ErrInvalidArtifact, *a.Norm)
		}
	}

	size := len(a.Vocabulary)
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= size {
			return nil, fmt.Errorf("%w: vocabulary index %d for %q out of range", ErrInvalidArtifact, idx, term)
		}
	}
	if v.idf != nil && len(v.idf) != size {
		return nil, fmt.Errorf("%w: %d idf weights for %d terms", ErrDimensionMismatch, len(v.idf), size)
	}

	if len(a.StopWords) > 0 {
		v.stop = make(map[string]struct{}, len(a.StopWords))
		for _, w := range a.StopWords {
			v.stop[w] = struct{}{}
		}
	}

	if a.TokenPattern != "" && a.TokenPattern != DefaultTokenPattern {
		re, err := compileTokenPattern(a.TokenPattern)
		if err != nil {
			return nil, err
		}
		v.pattern = re
	}

	return v, nil
}

// Dim returns the length of the vectors Transform produces.
func (v *TFIDF) Dim() int {
	return len(v.vocab)
}

// Transform returns the TF-IDF vector of text. Terms outside the vocabulary
// are ignored, so unseen text yields the zero vector.
func (v *TFIDF) Transform(text string) []float64 {
	x := make([]float64, len(v.vocab))

	for _, term := range v.terms(text) {
		if idx, ok := v.vocab[term]; ok {
			x[idx]++
		}
	}

	for i, tf := range x {
		if tf == 0 {
			continue
		}
		if v.binary {
			tf = 1
		} else if v.sublinear {
			tf = 1 + math.Log(tf)
		}
		if v.idf != nil {
			tf *= v.idf[i]
		}
		x[i] = tf
	}

	normalize(x, v.norm)
	return x
}

// terms tokenizes text and expands the tokens into the configured n-grams.
func (v *TFIDF) terms(text string) []string {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	var tokens []string
	if v.pattern != nil {
		tokens = v.pattern.FindAllString(text, -1)
	} else {
		tokens = wordTokens(text)
	}

	if v.stop != nil {
		kept := tokens[:0]
		for _, t := range tokens {
			if _, ok := v.stop[t]; !ok {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	if v.maxN == 1 {
		return tokens
	}

	var out []string
	for n := v.minN; n <= v.maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// wordTokens is the default pattern: maximal runs of at least two word runes.
func wordTokens(text string) []string {
	var (
		tokens []string
		start  = -1
		runes  int
	)
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, text[start:end])
		}
		start, runes = -1, 0
	}

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}

// compileTokenPattern accepts a Python-style token pattern. The (?u) flag is
// dropped and \w, \W, \d, \D are widened to their Unicode meaning.
func compileTokenPattern(pattern string) (*regexp.Regexp, error) {
	p := strings.ReplaceAll(pattern, "(?u)", "")

	var b strings.Builder
	inClass := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '\\' && i+1 < len(p) {
			next := p[i+1]
			i++
			switch {
			case next == 'w' && inClass:
				b.WriteString(`\p{L}\p{N}_`)
			case next == 'w':
				b.WriteString(`[\p{L}\p{N}_]`)
			case next == 'W' && !inClass:
				b.WriteString(`[^\p{L}\p{N}_]`)
			case next == 'd':
				b.WriteString(`\p{Nd}`)
			case next == 'D' && !inClass:
				b.WriteString(`\P{Nd}`)
			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			continue
		}
		switch c {
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
		b.WriteByte(c)
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnsupportedPattern, pattern, err)
	}
	return re, nil
}

func normalize(x []float64, norm string) {
	var n float64
	switch norm {
	case normL2:
		n = floats.Norm(x, 2)
	case normL1:
		n = floats.Norm(x, 1)
	default:
		return
	}
	if n == 0 {
		return
	}
	floats.Scale(1/n, x)
}
