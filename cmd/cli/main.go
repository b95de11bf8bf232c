package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"textlens/adapters/report"
	"textlens/adapters/segments"
	"textlens/internal/analysis"
	"textlens/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "textlens",
		Short: "Corpus analyzer for LLM image-description responses",
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		segmentsFile string
		outputDir    string
		workers      int
		formats      string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score every response against the theoretical frameworks and write reports",
		Long: `Analyze loads the parsed segments file, scores every model response
against the seven theoretical frameworks plus sentiment and semantic style,
and writes the result in the configured formats.

Example: textlens analyze --segments segments.json --output analysis_output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; environment variables override defaults,
			// flags override both.
			if err := godotenv.Load(); err == nil {
				log.Printf("[textlens] loaded configuration from .env")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if segmentsFile != "" {
				cfg.Paths.SegmentsFile = segmentsFile
			}
			if outputDir != "" {
				cfg.Paths.OutputDir = outputDir
			}
			if workers > 0 {
				cfg.Analysis.Workers = workers
			}
			if formats != "" {
				cfg.Reports.Formats = strings.Split(formats, ",")
			}

			return runAnalyze(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&segmentsFile, "segments", "", "Path to the parsed segments JSON file")
	cmd.Flags().StringVar(&outputDir, "output", "", "Directory for generated reports")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent response analyses")
	cmd.Flags().StringVar(&formats, "formats", "", "Comma-separated report formats (json,markdown,html,xlsx)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config) error {
	segs, err := segments.Load(cfg.Paths.SegmentsFile)
	if err != nil {
		return err
	}

	engine := analysis.NewEngine(analysis.Options{
		Workers:           cfg.Analysis.Workers,
		ResponseThemes:    cfg.Analysis.ResponseThemes,
		ComparativeThemes: cfg.Analysis.ComparativeThemes,
	})

	result, err := engine.Run(cmd.Context(), segs)
	if err != nil {
		return err
	}

	written, err := report.Write(result, cfg.Paths.OutputDir, cfg.Reports.Formats)
	if err != nil {
		return err
	}

	log.Printf("[textlens] run %s: %d models, %d report files under %s",
		result.RunID, len(result.Models), len(written), cfg.Paths.OutputDir)
	return nil
}
