package report

import (
	"os"
	"path/filepath"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"textlens/domain/corpus"
	"textlens/internal/errors"
)

const (
	SummaryHTMLFileName     = "analysis_summary.html"
	ComparativeHTMLFileName = "comparative_analysis.html"
)

// WriteHTML renders the two markdown reports as standalone HTML pages.
func WriteHTML(result *corpus.AnalysisResult, outputDir string) ([]string, error) {
	pages := []struct {
		name  string
		title string
		md    string
	}{
		{SummaryHTMLFileName, "Distant Reading Analysis", RenderSummary(result)},
		{ComparativeHTMLFileName, "Comparative Theoretical Analysis", RenderComparative(result)},
	}

	paths := make([]string, 0, len(pages))
	for _, page := range pages {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		renderer := html.NewRenderer(html.RendererOptions{
			Title: page.title,
			Flags: html.CommonFlags | html.CompletePage,
		})
		out := markdown.ToHTML([]byte(page.md), p, renderer)

		path := filepath.Join(outputDir, page.name)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return nil, errors.Wrapf(err, "writing %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
