// Package profile assembles candidate and job profiles by orchestrating the
// field and mission extractors over a single text each. Builders contain no
// pattern logic of their own and never fail: sparse input simply yields a
// lower-information profile.
package profile

import (
	"github.com/jonathan/cv-matcher/internal/extraction"
	"github.com/jonathan/cv-matcher/internal/missions"
	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Builder builds profiles using a shared pattern library. Safe for
// concurrent use; all outputs are freshly allocated.
type Builder struct {
	lib      *patterns.Library
	fields   *extraction.FieldExtractor
	missions *missions.Extractor
}

// NewBuilder creates a Builder over the given library.
func NewBuilder(lib *patterns.Library) *Builder {
	return &Builder{
		lib:      lib,
		fields:   extraction.NewFieldExtractor(lib),
		missions: missions.NewExtractor(lib),
	}
}

// BuildCandidateProfile parses CV text into a CandidateProfile. The
// flattened mission list is deduplicated across experience blocks; each
// experience keeps its own (already block-deduplicated) missions.
func (b *Builder) BuildCandidateProfile(text string) *types.CandidateProfile {
	experiences := b.missions.ExtractExperiences(text)

	var all []types.Mission
	for _, exp := range experiences {
		all = append(all, exp.Missions...)
	}

	return &types.CandidateProfile{
		PersonalInfo: b.fields.ExtractPersonalInfo(text),
		Skills:       b.fields.ExtractSkills(text),
		Experiences:  experiences,
		Languages:    b.fields.ExtractLanguages(text),
		Missions:     missions.Dedupe(all),
	}
}
