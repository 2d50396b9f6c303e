package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/ingestion"
	"github.com/jonathan/cv-matcher/internal/observability"
	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/profile"
	"github.com/jonathan/cv-matcher/internal/schemas"
	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one CV against one job posting",
	Long:  "Score one CV text file against one job posting text file and output a MatchResult JSON that validates against the match_result schema.",
	RunE:  runMatch,
}

var (
	matchCVFile     string
	matchJobFile    string
	matchOutputFile string
	matchConfigFile string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVar(&matchCVFile, "cv", "", "Path to CV text file")
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to job posting text file")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to JSON config file providing flag defaults")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted summaries of the extracted profiles and score")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		CV:      matchCVFile,
		Job:     matchJobFile,
		Out:     matchOutputFile,
		Verbose: matchVerbose,
	}

	if matchConfigFile != "" {
		fileCfg, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return matchDocuments(cfg, os.Stdout)
}

func matchDocuments(cfg config.Config, out io.Writer) error {
	if cfg.CV == "" || cfg.Job == "" {
		return fmt.Errorf("both --cv and --job are required")
	}

	cvText, err := ingestion.ReadDocument(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read CV: %w", err)
	}
	jobText, err := ingestion.ReadDocument(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	req := types.MatchRequest{CVText: cvText, JobText: jobText}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid input documents: %w", err)
	}

	builder := profile.NewBuilder(patterns.Default())
	candidate := builder.BuildCandidateProfile(req.CVText)
	job := builder.BuildJobProfile(req.JobText)
	result := scoring.Score(candidate, job)

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintCandidateProfile(candidate)
		printer.PrintJobProfile(job)
		printer.PrintMatchResult(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := validateArtifact(schemas.MatchResultSchema, jsonBytes); err != nil {
		return err
	}

	return writeOutput(cfg.Out, jsonBytes, out)
}
