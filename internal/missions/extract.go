// Package missions segments documents into experience blocks and extracts
// categorized responsibility ("mission") statements from them.
package missions

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/types"
)

// minMissionLength drops normalized fragments too short to carry meaning.
const minMissionLength = 10

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor extracts missions and experience records using an injected
// pattern library. Safe for concurrent use.
type Extractor struct {
	lib *patterns.Library
}

// NewExtractor creates an Extractor over the given library.
func NewExtractor(lib *patterns.Library) *Extractor {
	return &Extractor{lib: lib}
}

// ExtractMissions extracts the deduplicated mission list of a single block.
// Category-specific patterns are tried first and tag their matches with the
// category's fixed confidence weight; generic bullet and label patterns
// catch the rest as General with confidence 0.7. Duplicates (by
// case-insensitive, whitespace-collapsed text) keep their first occurrence.
func (e *Extractor) ExtractMissions(block string) []types.Mission {
	var found []types.Mission

	// 1. Category-specific patterns, all of them.
	for _, cp := range e.lib.MissionCategories {
		for _, re := range cp.Variants {
			for _, m := range re.FindAllString(block, -1) {
				text := normalizeMissionText(m)
				if len(text) < minMissionLength {
					continue
				}
				found = append(found, types.Mission{
					Text:       text,
					Category:   cp.Category,
					Confidence: cp.Confidence,
				})
			}
		}
	}

	// 2. Generic bullet lines and "Missions:" labels, tagged General.
	for _, re := range []*regexp.Regexp{e.lib.BulletLine, e.lib.MissionLabel} {
		for _, m := range re.FindAllStringSubmatch(block, -1) {
			text := normalizeMissionText(m[1])
			if len(text) < minMissionLength {
				continue
			}
			found = append(found, types.Mission{
				Text:       text,
				Category:   types.CategoryGeneral,
				Confidence: patterns.GeneralConfidence,
			})
		}
	}

	// 3. Dedup within the block, first occurrence wins.
	return Dedupe(found)
}

// ExtractExperiences segments text into experience blocks and builds one
// Experience record per retained block, in document order. Header fields use
// first-match-wins heuristics and stay empty when nothing matches.
func (e *Extractor) ExtractExperiences(text string) []types.Experience {
	blocks := e.SegmentBlocks(text)

	experiences := make([]types.Experience, 0, len(blocks))
	for _, block := range blocks {
		exp := types.Experience{Missions: e.ExtractMissions(block)}

		for _, re := range e.lib.Position {
			if m := re.FindStringSubmatch(block); m != nil {
				exp.Position = trimPositionTail(m[1])
				break
			}
		}
		if m := e.lib.BlockCompany.FindStringSubmatch(block); m != nil {
			exp.Company = strings.TrimSpace(m[1])
		}
		for _, re := range e.lib.Duration {
			if m := re.FindStringSubmatch(block); m != nil {
				exp.Duration = strings.TrimSpace(m[1])
				break
			}
		}

		experiences = append(experiences, exp)
	}
	return experiences
}

// Dedupe removes missions whose normalized text was already seen, keeping
// the first occurrence. The key is case-insensitive and
// whitespace-collapsed.
func Dedupe(list []types.Mission) []types.Mission {
	seen := make(map[string]bool, len(list))
	out := make([]types.Mission, 0, len(list))
	for _, m := range list {
		key := dedupeKey(m.Text)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

// trimPositionTail cuts an employer mention off a captured position line
// ("Assistante de gestion chez Lumiplast" keeps only the role part).
func trimPositionTail(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(strings.ToLower(s), " chez "); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// normalizeMissionText strips bullet characters and surrounding whitespace
// from a raw match.
func normalizeMissionText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "•-* \t")
	return strings.TrimSpace(s)
}

func dedupeKey(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
