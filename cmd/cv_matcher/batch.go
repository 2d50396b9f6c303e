package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/cv-matcher/internal/ingestion"
	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/profile"
	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds how many CVs are scored in parallel.
const batchConcurrency = 4

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of CVs against one job posting",
	Long:  "Score every .txt file in a directory against one job posting and output the results as a JSON array sorted by score, best candidate first.",
	RunE:  runBatch,
}

var (
	batchJobFile    string
	batchCVDir      string
	batchOutputFile string
)

// BatchEntry pairs one scored CV file with its match result.
type BatchEntry struct {
	File   string             `json:"file"`
	Result *types.MatchResult `json:"result"`
}

func init() {
	batchCmd.Flags().StringVar(&batchJobFile, "job", "", "Path to job posting text file (required)")
	batchCmd.Flags().StringVar(&batchCVDir, "cv-dir", "", "Directory containing CV .txt files (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	_ = batchCmd.MarkFlagRequired("job")
	_ = batchCmd.MarkFlagRequired("cv-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	return batchDocuments(batchJobFile, batchCVDir, batchOutputFile, os.Stdout)
}

func batchDocuments(jobPath, cvDir, outputPath string, out io.Writer) error {
	entries, err := scoreBatch(jobPath, cvDir)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(outputPath, jsonBytes, out)
}

// scoreBatch builds the job profile once and scores each CV against it
// concurrently. Results come back sorted by score, best first, with the file
// name as a stable tiebreaker.
func scoreBatch(jobPath, cvDir string) ([]BatchEntry, error) {
	jobText, err := ingestion.ReadDocument(jobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job posting: %w", err)
	}

	cvFiles, err := filepath.Glob(filepath.Join(cvDir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list CV directory: %w", err)
	}
	if len(cvFiles) == 0 {
		return nil, fmt.Errorf("no .txt files found in %s", cvDir)
	}

	builder := profile.NewBuilder(patterns.Default())
	job := builder.BuildJobProfile(jobText)

	entries := make([]BatchEntry, len(cvFiles))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for i, cvFile := range cvFiles {
		i, cvFile := i, cvFile
		g.Go(func() error {
			cvText, err := ingestion.ReadDocument(cvFile)
			if err != nil {
				return fmt.Errorf("failed to read CV %s: %w", cvFile, err)
			}
			candidate := builder.BuildCandidateProfile(cvText)
			entries[i] = BatchEntry{
				File:   filepath.Base(cvFile),
				Result: scoring.Score(candidate, job),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Result.Score != entries[j].Result.Score {
			return entries[i].Result.Score > entries[j].Result.Score
		}
		return entries[i].File < entries[j].File
	})

	return entries, nil
}
