package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/domain/core"
	"textlens/domain/corpus"
	"textlens/domain/metrics"
)

func testResult() *corpus.AnalysisResult {
	narrative := &metrics.Narrative{
		PatternDescription:            "Pattern prose.",
		RhetoricalInterpretation:      "Interpretation prose. Second sentence.",
		CulturalPoliticalImplications: "Implications prose.",
		KeyExamples:                   []string{"mira", "aquí"},
		TheoristsCited:                []string{"Young (2011)"},
	}

	theoretical := make(map[string]corpus.FrameworkAnalysis)
	averages := make(map[string]metrics.FrameworkAverages)
	for _, fw := range frameworkOrder {
		theoretical[fw.ID] = corpus.FrameworkAnalysis{
			Metrics: metrics.Record{
				Framework:   fw.ID,
				Qualitative: metrics.Qualitative{Counts: map[string]int{}},
			},
			Narrative: narrative,
		}
		averages[fw.ID] = metrics.FrameworkAverages{
			AvgConsistency: 0.42, AvgAlignment: 0.21, Samples: 3,
		}
	}

	report := &corpus.ModelReport{
		OverallStats: metrics.OverallStats{TotalResponses: 2, TotalWords: 120},
		Sentiment: metrics.SentimentSummary{
			AveragePolarity: 0.5, AverageSubjectivity: 0.4, OverallEmotion: "positive",
		},
		Theoretical: averages,
		Responses: []corpus.ResponseAnalysis{
			{
				SegmentID: 1,
				Model:     "model_a",
				Parameters: map[string]corpus.ParameterAnalysis{
					corpus.ParamContext: {
						Text:        "Mira the sea.",
						Themes:      []metrics.ThemeCount{{Word: "sea", Count: 1}},
						Theoretical: theoretical,
					},
				},
			},
		},
	}

	return &corpus.AnalysisResult{
		RunID:       core.NewRunID(),
		GeneratedAt: core.Now(),
		Models:      map[string]*corpus.ModelReport{"model_a": report},
		Comparative: corpus.Comparative{
			Themes: map[string][]metrics.ThemeCount{
				"context_themes": {{Word: "sea", Count: 4}, {Word: "sand", Count: 2}},
			},
			Frameworks: map[string]metrics.ComparativeNarrative{
				"code_meshing": {Description: "Code-meshing frequency varies."},
			},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	md := RenderSummary(testResult())

	assert.Contains(t, md, "# Distant Reading Analysis")
	assert.Contains(t, md, "## Model A")
	assert.Contains(t, md, "**Total Responses:** 2")
	assert.Contains(t, md, "**Average Sentiment:** 0.50 (positive)")
	assert.Contains(t, md, "- **Students' Rights to Their Own Language**: Consistency: 0.42 | Alignment: 0.21")
	assert.Contains(t, md, "**Pattern Description:**  \nPattern prose.")
	assert.Contains(t, md, "- **sea**: 4 occurrences")
}

func TestRenderComparative(t *testing.T) {
	md := RenderComparative(testResult())

	assert.Contains(t, md, "# Comparative Theoretical Analysis Across LLMs")
	assert.Contains(t, md, "| Model A | 0.42 | 0.21 |")
	// Interpretation is truncated at its first sentence.
	assert.Contains(t, md, "**Interpretation:** Interpretation prose.")
	assert.NotContains(t, md, "Second sentence.")
	assert.Contains(t, md, "Code-meshing frequency varies.")
	assert.Contains(t, md, "### AI Self-Positioning")
}

func TestRenderComparative_SkipsFrameworksWithoutAverages(t *testing.T) {
	result := testResult()
	delete(result.Models["model_a"].Theoretical, "big_data")

	md := RenderComparative(result)

	// One table row per framework with averages; the missing one is omitted
	// rather than rendered as zeros.
	assert.Equal(t, len(frameworkOrder)-1, strings.Count(md, "| Model A |"))
}

func TestWrite_AllFormats(t *testing.T) {
	dir := t.TempDir()

	paths, err := Write(testResult(), dir, []string{"json", "markdown", "html", "xlsx"})
	require.NoError(t, err)
	require.Len(t, paths, 6)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	_, err := Write(testResult(), t.TempDir(), []string{"pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteJSON(testResult(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	raw, err := os.ReadFile(filepath.Join(dir, JSONFileName))
	require.NoError(t, err)

	var decoded corpus.AnalysisResult
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded.Models, 1)
	assert.Equal(t, 2, decoded.Models["model_a"].OverallStats.TotalResponses)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Claude Ai", displayName("claude_ai"))
	assert.Equal(t, "Poe Chatbot", displayName("poe_chatbot"))
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "One.", firstSentence("One. Two."))
	assert.Equal(t, "No period.", firstSentence("No period"))
	assert.True(t, strings.HasSuffix(firstSentence("anything"), "."))
}
