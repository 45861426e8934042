package sentiment

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	ColorPositive = "#28a745"
	ColorNegative = "#dc3545"
	ColorNeutral  = "#6c757d"

	DefaultChartWidth = 40
	chartTitle        = "Sentiment Probability Distribution"
)

// Examples are the sample sentences offered by the demo.
var Examples = []string{
	"I absolutely loved the movie, it was fantastic!",
	"The service was terrible and the staff was rude.",
	"The restaurant was okay, nothing special.",
	"I'm not sure how I feel about this product yet.",
}

// ColorFor returns the display color of a label.
func ColorFor(label string) string {
	switch label {
	case "positive":
		return ColorPositive
	case "negative":
		return ColorNegative
	default:
		return ColorNeutral
	}
}

// RenderChart writes the label, the confidence and one horizontal bar per class.
//
//	NEUTRAL
//	Confidence: 80.00%
//
//	Sentiment Probability Distribution
//	positive | ####                                      10.0%
func RenderChart(w io.Writer, r Result, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}

	labelWidth := 0
	for _, p := range r.Probabilities {
		labelWidth = max(labelWidth, len(p.Label))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(r.Label))
	fmt.Fprintf(&b, "Confidence: %.2f%%\n\n", r.Confidence*100)
	fmt.Fprintf(&b, "%s\n", chartTitle)
	for _, p := range r.Probabilities {
		filled := int(math.Round(clamp01(p.Probability) * float64(width)))
		fmt.Fprintf(&b, "%-*s | %s%s %.1f%%\n",
			labelWidth, p.Label,
			strings.Repeat("#", filled), strings.Repeat(" ", width-filled),
			p.Probability*100)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
