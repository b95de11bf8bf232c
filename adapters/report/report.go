// Package report renders one analysis result into the configured output
// formats: the canonical JSON document, markdown summaries, HTML versions of
// those summaries, and a score-matrix workbook.
package report

import (
	"log"
	"os"
	"sort"
	"strings"

	"textlens/domain/corpus"
	"textlens/internal/errors"
)

// Write renders the result in every requested format under outputDir,
// creating the directory if needed. It returns the paths written.
func Write(result *corpus.AnalysisResult, outputDir string, formats []string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", outputDir)
	}

	var written []string
	for _, format := range formats {
		var (
			paths []string
			err   error
		)
		switch format {
		case "json":
			paths, err = WriteJSON(result, outputDir)
		case "markdown":
			paths, err = WriteMarkdown(result, outputDir)
		case "html":
			paths, err = WriteHTML(result, outputDir)
		case "xlsx":
			paths, err = WriteExcel(result, outputDir)
		default:
			err = errors.InvalidInput("unknown report format: " + format)
		}
		if err != nil {
			return written, errors.ReportError(format, err)
		}
		written = append(written, paths...)
		log.Printf("[Report] wrote %s: %s", format, strings.Join(paths, ", "))
	}
	return written, nil
}

// frameworkOrder fixes the presentation order and display names of the
// frameworks across every report format.
var frameworkOrder = []struct {
	ID   string
	Name string
}{
	{"srtol", "Students' Rights to Their Own Language"},
	{"multiliteracies", "Multiliteracies"},
	{"multimodality", "Multimodality"},
	{"rhetorical_listening", "Rhetorical Listening"},
	{"code_meshing", "Code-Meshing"},
	{"big_data", "Big Data / Computational Analysis"},
	{"composing_with_ai", "Composing with AI"},
}

// modelNames returns the result's model identifiers in sorted order.
func modelNames(result *corpus.AnalysisResult) []string {
	names := make([]string, 0, len(result.Models))
	for name := range result.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// displayName turns a model identifier like "claude_ai" into "Claude Ai".
func displayName(model string) string {
	words := strings.Fields(strings.ReplaceAll(model, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
