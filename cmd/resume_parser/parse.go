package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/validation"
)

var (
	parseOutDir      string
	parseConcurrency int
	parseSkipInvalid bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse resume files into structured JSON",
	Long:  "Parse one or more resume files (PDF, HTML or plain text) and print or write the extracted data as JSON. Multiple files are parsed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory to write per-file JSON results (default: stdout)")
	parseCmd.Flags().IntVar(&parseConcurrency, "concurrency", 4, "Maximum files parsed in parallel")
	parseCmd.Flags().BoolVar(&parseSkipInvalid, "skip-invalid", false, "Skip files that fail resume validation instead of failing the run")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	if parseOutDir != "" {
		if err := os.MkdirAll(parseOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	pipeline := extract.NewPipeline()
	validator := validation.NewValidator()

	var g errgroup.Group
	g.SetLimit(parseConcurrency)

	for _, path := range args {
		g.Go(func() error {
			return parseOne(pipeline, validator, path)
		})
	}
	return g.Wait()
}

func parseOne(pipeline *extract.Pipeline, validator *validation.Validator, path string) error {
	doc, err := ingestion.FromFile(path)
	if err != nil {
		return err
	}

	if valid, reason := validator.Validate(doc.Content); !valid {
		if parseSkipInvalid {
			log.Warn().Str("path", path).Str("reason", reason).Msg("skipping invalid file")
			return nil
		}
		return fmt.Errorf("%s: %s", path, reason)
	}

	resume, warnings := pipeline.Extract(doc.Content)
	for _, warning := range warnings {
		log.Warn().Str("path", path).Str("warning", warning).Msg("extraction warning")
	}

	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: marshaling result: %w", path, err)
	}

	if parseOutDir == "" {
		fmt.Printf("%s\n", data)
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(parseOutDir, base+".json")
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%s: writing result: %w", path, err)
	}

	log.Info().Str("path", path).Str("out", outPath).Msg("parsed")
	return nil
}
