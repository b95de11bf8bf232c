package report

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"textlens/domain/corpus"
	"textlens/internal/errors"
)

// WorkbookFileName is the score-matrix workbook.
const WorkbookFileName = "analysis_scores.xlsx"

const (
	scoresSheet    = "Framework Scores"
	sentimentSheet = "Sentiment"
)

// WriteExcel writes the per-model score matrix and sentiment rollup as a
// workbook, one row per model.
func WriteExcel(result *corpus.AnalysisResult, outputDir string) ([]string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scoresSheet); err != nil {
		return nil, errors.Wrap(err, "naming scores sheet")
	}
	if _, err := f.NewSheet(sentimentSheet); err != nil {
		return nil, errors.Wrap(err, "creating sentiment sheet")
	}

	if err := writeScoresSheet(f, result); err != nil {
		return nil, err
	}
	if err := writeSentimentSheet(f, result); err != nil {
		return nil, err
	}

	path := filepath.Join(outputDir, WorkbookFileName)
	if err := f.SaveAs(path); err != nil {
		return nil, errors.Wrapf(err, "writing %s", path)
	}
	return []string{path}, nil
}

func writeScoresSheet(f *excelize.File, result *corpus.AnalysisResult) error {
	header := []interface{}{"Model"}
	for _, fw := range frameworkOrder {
		header = append(header, fw.Name+" Consistency", fw.Name+" Alignment")
	}
	if err := setRow(f, scoresSheet, 1, header); err != nil {
		return err
	}

	for i, name := range modelNames(result) {
		row := []interface{}{displayName(name)}
		theoretical := result.Models[name].Theoretical
		for _, fw := range frameworkOrder {
			scores := theoretical[fw.ID]
			row = append(row, scores.AvgConsistency, scores.AvgAlignment)
		}
		if err := setRow(f, scoresSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSentimentSheet(f *excelize.File, result *corpus.AnalysisResult) error {
	header := []interface{}{
		"Model", "Total Responses", "Total Words",
		"Average Polarity", "Average Subjectivity", "Overall Emotion",
	}
	if err := setRow(f, sentimentSheet, 1, header); err != nil {
		return err
	}

	for i, name := range modelNames(result) {
		report := result.Models[name]
		row := []interface{}{
			displayName(name),
			report.OverallStats.TotalResponses,
			report.OverallStats.TotalWords,
			report.Sentiment.AveragePolarity,
			report.Sentiment.AverageSubjectivity,
			report.Sentiment.OverallEmotion,
		}
		if err := setRow(f, sentimentSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "computing cell coordinates")
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "writing row %d of %s", row, sheet)
	}
	return nil
}
