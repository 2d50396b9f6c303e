package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cv-matcher/internal/schemas"
)

// validateArtifact checks serialized output against its schema before it is
// written anywhere. A failed validation is fatal; a missing or unreadable
// schema file only warns so the CLI stays usable outside the repository tree.
func validateArtifact(schemaRelPath string, data []byte) error {
	err := schemas.ValidateBytes(schemaRelPath, data)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	}

	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &schemaLoadErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	return nil
}

// writeOutput writes serialized JSON to the given path, or to out when no
// path is set.
func writeOutput(path string, data []byte, out io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintf(out, "%s\n", data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
