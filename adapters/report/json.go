package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"textlens/domain/corpus"
	"textlens/internal/errors"
)

// JSONFileName is the canonical result document every other format derives
// its numbers from.
const JSONFileName = "analysis_results.json"

// WriteJSON writes the complete result as indented JSON.
func WriteJSON(result *corpus.AnalysisResult, outputDir string) ([]string, error) {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding analysis result")
	}

	path := filepath.Join(outputDir, JSONFileName)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, errors.Wrapf(err, "writing %s", path)
	}
	return []string{path}, nil
}
