// Package main provides the entry point for the cv-matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_matcher",
	Short: "CV / job posting compatibility scorer",
	Long:  "cv_matcher extracts structured profiles from French CV and job posting text files and computes a weighted compatibility score between them.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
