package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cv-matcher/internal/ingestion"
	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/profile"
	"github.com/jonathan/cv-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a single document",
	Long:  "Extract a CandidateProfile or JobProfile JSON from a single text file, without scoring it against anything.",
	RunE:  runExtract,
}

var (
	extractDocType    string
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractDocType, "type", "t", "", "Document type: cv or job (required)")
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to input text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	_ = extractCmd.MarkFlagRequired("type")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	return extractDocument(extractDocType, extractInputFile, extractOutputFile, os.Stdout)
}

func extractDocument(docType, inputPath, outputPath string, out io.Writer) error {
	text, err := ingestion.ReadDocument(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	builder := profile.NewBuilder(patterns.Default())

	var artifact any
	var schemaPath string
	switch docType {
	case "cv":
		artifact = builder.BuildCandidateProfile(text)
		schemaPath = schemas.CandidateProfileSchema
	case "job":
		artifact = builder.BuildJobProfile(text)
		schemaPath = schemas.JobProfileSchema
	default:
		return fmt.Errorf("invalid --type %q: must be cv or job", docType)
	}

	jsonBytes, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := validateArtifact(schemaPath, jsonBytes); err != nil {
		return err
	}

	return writeOutput(outputPath, jsonBytes, out)
}
