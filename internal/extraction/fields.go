// Package extraction pulls flat fields (contact info, skills, languages)
// out of raw document text using an injected pattern library. Extraction is
// best-effort: a field no pattern matches stays empty, which is never an
// error.
package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/types"
)

// maxNameLength rejects name captures that swallowed a whole paragraph.
const maxNameLength = 50

// FieldExtractor applies pattern-library patterns against text blobs. It is
// stateless beyond the library reference and safe for concurrent use.
type FieldExtractor struct {
	lib *patterns.Library
}

// NewFieldExtractor creates a FieldExtractor over the given library.
func NewFieldExtractor(lib *patterns.Library) *FieldExtractor {
	return &FieldExtractor{lib: lib}
}

// ExtractPersonalInfo pulls name, email and phone from text. Each field is
// resolved independently by trying its patterns in declaration order and
// keeping the first acceptable match.
func (e *FieldExtractor) ExtractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{}

	for _, re := range e.lib.Name {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || len(candidate) >= maxNameLength {
			// A capture this long is almost certainly a paragraph, not a
			// name; keep trying the remaining heuristics.
			continue
		}
		info.Name = candidate
		break
	}

	// First match wins; no validation beyond the regex itself.
	if m := e.lib.Email.FindString(text); m != "" {
		info.Email = m
	}

	for _, re := range e.lib.Phone {
		if m := re.FindString(text); m != "" {
			info.Phone = strings.TrimSpace(m)
			break
		}
	}

	return info
}

// ExtractSkills sweeps the whole vocabulary over text and returns the
// lowercased matched literals as a sorted, deduplicated set. Surface
// variants of the same tool ("vue.js" vs "vue") may coexist.
func (e *FieldExtractor) ExtractSkills(text string) []string {
	seen := make(map[string]bool)
	for _, sp := range e.lib.Skills {
		for _, m := range sp.Re.FindAllString(text, -1) {
			seen[strings.ToLower(m)] = true
		}
	}
	return sortedSet(seen)
}

// ExtractLanguages returns lowercase "language [proficiency]" mentions as a
// sorted, deduplicated set.
func (e *FieldExtractor) ExtractLanguages(text string) []string {
	seen := make(map[string]bool)
	for _, m := range e.lib.Languages.FindAllStringSubmatch(text, -1) {
		mention := strings.ToLower(strings.TrimSpace(m[1]))
		if len(m) > 2 && m[2] != "" {
			mention += " " + strings.ToLower(strings.TrimSpace(m[2]))
		}
		seen[mention] = true
	}
	return sortedSet(seen)
}

// sortedSet materializes a string set in deterministic order so repeated
// extractions of the same text compare equal.
func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
