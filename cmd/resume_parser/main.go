// Package main provides the entry point for the resume parser CLI and HTTP
// API server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "resume_parser",
	Short:   "Resume parsing HTTP API server and CLI",
	Long:    "Resume parser extracts structured contact, education, work experience and skills data from resume documents using deterministic heuristics, via REST API or the command line.",
	Version: appVersion,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configureLogLevel applies the configured level to the global logger.
func configureLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
