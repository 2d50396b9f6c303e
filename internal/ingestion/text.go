// Package ingestion normalizes raw document text before extraction. Input
// is plain UTF-8 text already produced by an upstream PDF/DOCX extraction
// step; this package only cleans it up.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRun = regexp.MustCompile(`[ \t]+`)
	// Three or more consecutive blank lines collapse to two. Two blank
	// lines stay: the mission extractor uses them as experience-block
	// boundaries.
	blankRun = regexp.MustCompile(`\n\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// 3. Cap consecutive blank lines at 2
	result = blankRun.ReplaceAllString(result, "\n\n\n")

	// 4. Trim leading/trailing whitespace from entire content
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Preserve bullet lines, normalizing the spacing after the marker.
	for _, marker := range []string{"• ", "- ", "* ", "· "} {
		if strings.HasPrefix(trimmed, marker) {
			rest := strings.TrimSpace(trimmed[len(marker):])
			return strings.TrimRight(marker, " ") + " " + spaceRun.ReplaceAllString(rest, " ")
		}
	}

	// Regular lines: collapse internal space runs.
	return spaceRun.ReplaceAllString(trimmed, " ")
}

// ReadDocument reads a text file and returns its cleaned content.
func ReadDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document not found: %w", err)
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return CleanText(string(content)), nil
}
