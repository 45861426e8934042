package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChart(t *testing.T) {
	res := Result{
		Label: "neutral",
		Probabilities: []ClassProbability{
			{Label: "positive", Probability: 0.1},
			{Label: "negative", Probability: 0.1},
			{Label: "neutral", Probability: 0.8},
		},
		Confidence: 0.8,
	}

	var b strings.Builder
	require.NoError(t, RenderChart(&b, res, 10))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "NEUTRAL", lines[0])
	assert.Equal(t, "Confidence: 80.00%", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "Sentiment Probability Distribution", lines[3])
	assert.Equal(t, "positive | #          10.0%", lines[4])
	assert.Equal(t, "negative | #          10.0%", lines[5])
	assert.Equal(t, "neutral  | ########   80.0%", lines[6])
}

func TestRenderChart_DefaultWidth(t *testing.T) {
	var b strings.Builder
	require.NoError(t, RenderChart(&b, Result{
		Label:         "positive",
		Probabilities: []ClassProbability{{Label: "positive", Probability: 1}},
		Confidence:    1,
	}, 0))

	assert.Contains(t, b.String(), strings.Repeat("#", DefaultChartWidth)+" 100.0%")
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#28a745", ColorFor("positive"))
	assert.Equal(t, "#dc3545", ColorFor("negative"))
	assert.Equal(t, "#6c757d", ColorFor("neutral"))
	assert.Equal(t, "#6c757d", ColorFor("anything"))
}
