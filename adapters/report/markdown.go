package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textlens/domain/corpus"
	"textlens/domain/metrics"
	"textlens/internal/errors"
)

const (
	SummaryFileName     = "analysis_summary.md"
	ComparativeFileName = "comparative_analysis.md"
)

// WriteMarkdown writes the per-model summary and the cross-model comparative
// report.
func WriteMarkdown(result *corpus.AnalysisResult, outputDir string) ([]string, error) {
	files := map[string]string{
		SummaryFileName:     RenderSummary(result),
		ComparativeFileName: RenderComparative(result),
	}

	paths := make([]string, 0, len(files))
	for _, name := range []string{SummaryFileName, ComparativeFileName} {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return nil, errors.Wrapf(err, "writing %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// RenderSummary builds the per-model analysis summary document.
func RenderSummary(result *corpus.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("# Distant Reading Analysis: LLM Rhetorical Interpretation\n\n")
	b.WriteString("## Summary Report\n\n")
	b.WriteString("_This report presents detailed theoretical analysis of how the analyzed ")
	b.WriteString("LLM systems interpret visual imagery through the analytical frameworks ")
	b.WriteString("of Context, Abstraction, and Concept in Latino Women Rhetorics._\n\n")
	b.WriteString("---\n\n")

	for _, name := range modelNames(result) {
		writeModelSection(&b, name, result.Models[name])
	}

	b.WriteString("\n## Comparative Theme Analysis\n\n")
	themeSections := []struct{ key, title string }{
		{"context_themes", "Top Context Themes"},
		{"abstraction_themes", "Top Abstraction Themes"},
		{"concept_themes", "Top Concept Themes"},
	}
	for _, section := range themeSections {
		themes := result.Comparative.Themes[section.key]
		if len(themes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", section.title)
		for _, theme := range firstThemes(themes, 10) {
			fmt.Fprintf(&b, "- **%s**: %d occurrences\n", theme.Word, theme.Count)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeModelSection(b *strings.Builder, name string, report *corpus.ModelReport) {
	fmt.Fprintf(b, "\n## %s\n\n", displayName(name))

	fmt.Fprintf(b, "**Total Responses:** %d  \n", report.OverallStats.TotalResponses)
	fmt.Fprintf(b, "**Total Words:** %d  \n", report.OverallStats.TotalWords)
	fmt.Fprintf(b, "**Average Sentiment:** %.2f (%s)  \n",
		report.Sentiment.AveragePolarity, report.Sentiment.OverallEmotion)
	fmt.Fprintf(b, "**Subjectivity:** %.2f  \n\n", report.Sentiment.AverageSubjectivity)

	b.WriteString("### Theoretical Framework Scores\n\n")
	for _, fw := range frameworkOrder {
		scores, ok := report.Theoretical[fw.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "- **%s**: Consistency: %.2f | Alignment: %.2f\n",
			fw.Name, scores.AvgConsistency, scores.AvgAlignment)
	}
	b.WriteString("\n")

	b.WriteString("### Sample Theoretical Analysis\n\n")
	b.WriteString("_Analysis from first image response (Context parameter):_\n\n")
	if param, ok := firstContextParameter(report); ok {
		for _, fw := range frameworkOrder {
			fa, ok := param.Theoretical[fw.ID]
			if !ok || fa.Narrative == nil {
				continue
			}
			n := fa.Narrative

			fmt.Fprintf(b, "#### %s\n\n", fw.Name)
			fmt.Fprintf(b, "**Pattern Description:**  \n%s \n\n", n.PatternDescription)
			fmt.Fprintf(b, "**Rhetorical Interpretation:**  \n%s \n\n", n.RhetoricalInterpretation)
			fmt.Fprintf(b, "**Cultural/Political Implications:**  \n%s \n\n", n.CulturalPoliticalImplications)

			if len(n.KeyExamples) > 0 {
				b.WriteString("**Examples:**\n")
				for _, example := range firstStrings(n.KeyExamples, 3) {
					fmt.Fprintf(b, "- %s\n", example)
				}
				b.WriteString("\n")
			}
			if len(n.TheoristsCited) > 0 {
				fmt.Fprintf(b, "**Key Theorists:** %s\n\n", strings.Join(n.TheoristsCited, ", "))
			}
			b.WriteString("---\n\n")
		}
	}
}

// RenderComparative builds the theory-by-theory cross-model document.
func RenderComparative(result *corpus.AnalysisResult) string {
	names := modelNames(result)

	var b strings.Builder
	b.WriteString("# Comparative Theoretical Analysis Across LLMs\n\n")
	b.WriteString("_Cross-system comparison of rhetorical strategies and theoretical alignment._\n\n")
	b.WriteString("---\n\n")

	for _, fw := range frameworkOrder {
		fmt.Fprintf(&b, "## %s\n\n", fw.Name)

		b.WriteString("### Alignment Scores\n\n")
		b.WriteString("| LLM | Consistency | Alignment |\n")
		b.WriteString("|-----|-------------|----------|\n")
		for _, name := range names {
			scores, ok := result.Models[name].Theoretical[fw.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "| %s | %.2f | %.2f |\n",
				displayName(name), scores.AvgConsistency, scores.AvgAlignment)
		}
		b.WriteString("\n")

		b.WriteString("### How Each LLM Applies This Framework\n\n")
		for _, name := range names {
			param, ok := firstContextParameter(result.Models[name])
			if !ok {
				continue
			}
			fa, ok := param.Theoretical[fw.ID]
			if !ok || fa.Narrative == nil {
				continue
			}
			fmt.Fprintf(&b, "#### %s\n\n", displayName(name))
			fmt.Fprintf(&b, "**Pattern:** %s \n\n", fa.Narrative.PatternDescription)
			fmt.Fprintf(&b, "**Interpretation:** %s\n\n", firstSentence(fa.Narrative.RhetoricalInterpretation))
		}

		if cn, ok := result.Comparative.Frameworks[fw.ID]; ok && cn.Description != "" {
			b.WriteString("### Cross-Model Reading\n\n")
			fmt.Fprintf(&b, "%s\n\n", cn.Description)
			if cn.Interpretation != "" {
				fmt.Fprintf(&b, "%s\n\n", cn.Interpretation)
			}
			if cn.Implications != "" {
				fmt.Fprintf(&b, "%s\n\n", cn.Implications)
			}
		}

		b.WriteString("---\n\n")
	}

	b.WriteString("## Overall Comparative Insights\n\n")

	b.WriteString("### Code-Switching and Linguistic Diversity\n\n")
	b.WriteString("Comparing how each LLM handles multilingual expression:\n\n")
	for _, name := range names {
		theoretical := result.Models[name].Theoretical
		fmt.Fprintf(&b, "- **%s**: SRTOL Alignment: %.2f | Code-Meshing Consistency: %.2f\n",
			displayName(name),
			theoretical["srtol"].AvgAlignment,
			theoretical["code_meshing"].AvgConsistency)
	}

	b.WriteString("\n### Multimodal Engagement\n\n")
	b.WriteString("Comparing how each LLM integrates multiple meaning-making modes:\n\n")
	for _, name := range names {
		theoretical := result.Models[name].Theoretical
		fmt.Fprintf(&b, "- **%s**: Multiliteracies: %.2f | Multimodality: %.2f\n",
			displayName(name),
			theoretical["multiliteracies"].AvgAlignment,
			theoretical["multimodality"].AvgAlignment)
	}

	b.WriteString("\n### AI Self-Positioning\n\n")
	b.WriteString("How each LLM positions itself rhetorically:\n\n")
	for _, name := range names {
		scores := result.Models[name].Theoretical["composing_with_ai"]
		fmt.Fprintf(&b, "- **%s**: Consistency: %.2f | Alignment: %.2f\n",
			displayName(name), scores.AvgConsistency, scores.AvgAlignment)
	}
	b.WriteString("\n")

	return b.String()
}

// firstContextParameter returns the context-parameter analysis of a model's
// first response, when present.
func firstContextParameter(report *corpus.ModelReport) (corpus.ParameterAnalysis, bool) {
	if len(report.Responses) == 0 {
		return corpus.ParameterAnalysis{}, false
	}
	param, ok := report.Responses[0].Parameters[corpus.ParamContext]
	return param, ok
}

// firstSentence truncates prose at its first period.
func firstSentence(prose string) string {
	if i := strings.Index(prose, "."); i >= 0 {
		return prose[:i+1]
	}
	return prose + "."
}

func firstThemes(themes []metrics.ThemeCount, n int) []metrics.ThemeCount {
	if len(themes) > n {
		return themes[:n]
	}
	return themes
}

func firstStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
