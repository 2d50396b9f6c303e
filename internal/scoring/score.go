// Package scoring computes the weighted compatibility score between a
// candidate profile and a job profile.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Weights for scoring components. Fixed by design, not configurable at
// runtime.
const (
	missionsWeight   = 0.40
	skillsWeight     = 0.30
	experienceWeight = 0.15
	qualityWeight    = 0.15
)

const (
	// yearsPerExperience approximates candidate seniority: no date-range
	// parsing is performed, each experience block counts as two years.
	yearsPerExperience = 2

	// neutralScore is used when the job gives no signal for a factor.
	neutralScore = 50
	// defaultExperienceScore is used when the job states no minimum.
	defaultExperienceScore = 75

	// qualityCheckPoints is the value of each profile-quality checklist item.
	qualityCheckPoints = 25

	// maxSuggestedSkills bounds the "develop skills" suggestion.
	maxSuggestedSkills = 3
)

// Score computes the match between a candidate and a job. It never fails:
// sparse profiles produce low scores, not errors.
func Score(candidate *types.CandidateProfile, job *types.JobProfile) *types.MatchResult {
	missionScore := computeMissionScore(candidate.Missions, job.Requirements.RequiredMissions)
	skillScore, matchedSkills := computeSkillScore(candidate, job.Requirements.TechnicalSkills)
	experienceScore := computeExperienceScore(len(candidate.Experiences), job.RequiredExperienceYears)
	qualityScore := computeQualityScore(candidate)

	weighted := missionScore*missionsWeight +
		skillScore*skillsWeight +
		experienceScore*experienceWeight +
		qualityScore*qualityWeight

	overall := clampScore(int(math.Round(weighted)))

	return &types.MatchResult{
		ID:         uuid.NewString(),
		Score:      overall,
		Confidence: confidenceFor(overall),
		Breakdown: types.ScoringBreakdown{
			Missions:   types.SubScore{Value: missionScore, Weight: missionsWeight},
			Skills:     types.SubScore{Value: skillScore, Weight: skillsWeight},
			Experience: types.SubScore{Value: experienceScore, Weight: experienceWeight},
			Quality:    types.SubScore{Value: qualityScore, Weight: qualityWeight},
		},
		MatchedSkills:          matchedSkills,
		Recommendation:         recommendationFor(overall),
		ImprovementSuggestions: buildSuggestions(candidate, job, matchedSkills),
		EvaluatedAt:            time.Now().Unix(),
	}
}

// computeMissionScore sums, over all job-required missions, the best
// candidate-mission similarity that clears the acceptance threshold, then
// scales to 100. A job without extractable missions scores the neutral 50;
// a candidate without missions scores 0 — the asymmetry is deliberate.
func computeMissionScore(candidateMissions, jobMissions []types.Mission) float64 {
	if len(jobMissions) == 0 {
		return neutralScore
	}
	if len(candidateMissions) == 0 {
		return 0
	}

	total := 0.0
	for _, jm := range jobMissions {
		best := 0.0
		for _, cm := range candidateMissions {
			if s := missionSimilarity(cm, jm); s > best {
				best = s
			}
		}
		if best >= similarityThreshold {
			total += best
		}
	}
	return math.Round(total / float64(len(jobMissions)) * 100)
}

// computeSkillScore is the exact case-insensitive membership ratio of
// job-required skills found in the candidate's skill set, scaled to 100.
// Jobs listing no skills score the neutral 50.
func computeSkillScore(candidate *types.CandidateProfile, required []types.SkillRequirement) (float64, []string) {
	if len(required) == 0 {
		return neutralScore, nil
	}

	matched := make([]string, 0, len(required))
	for _, req := range required {
		if candidate.HasSkill(req.Name) {
			matched = append(matched, req.Name)
		}
	}
	return math.Round(float64(len(matched)) / float64(len(required)) * 100), matched
}

// computeExperienceScore approximates candidate seniority as two years per
// experience block and compares it with the job's stated minimum.
func computeExperienceScore(experienceBlocks, requiredYears int) float64 {
	if requiredYears <= 0 {
		return defaultExperienceScore
	}

	candidateYears := experienceBlocks * yearsPerExperience
	if candidateYears >= requiredYears {
		return 100
	}

	score := math.Round(float64(candidateYears) / float64(requiredYears) * 100)
	if score < 0 {
		return 0
	}
	return score
}

// computeQualityScore is an additive completeness checklist: email, phone,
// two languages, at least one structured experience entry.
func computeQualityScore(candidate *types.CandidateProfile) float64 {
	score := 0.0
	if candidate.PersonalInfo.Email != "" {
		score += qualityCheckPoints
	}
	if candidate.PersonalInfo.Phone != "" {
		score += qualityCheckPoints
	}
	if len(candidate.Languages) >= 2 {
		score += qualityCheckPoints
	}
	if len(candidate.Experiences) >= 1 {
		score += qualityCheckPoints
	}
	return score
}

// confidenceFor bands the overall score. The percentage-weighted scale
// (85/70) is the authoritative one.
func confidenceFor(overall int) types.Confidence {
	switch {
	case overall > 85:
		return types.ConfidenceHigh
	case overall > 70:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// recommendationFor maps the overall score to an advisory string.
func recommendationFor(overall int) string {
	switch {
	case overall >= 85:
		return "Strongly recommended for this position"
	case overall >= 75:
		return "Recommended"
	case overall >= 65:
		return "Interesting profile, partial match"
	case overall >= 50:
		return "Worth considering, training needed"
	default:
		return "Not well suited for this position"
	}
}

// buildSuggestions produces a best-effort advisory list; it never blocks or
// alters the score.
func buildSuggestions(candidate *types.CandidateProfile, job *types.JobProfile, matchedSkills []string) []string {
	var suggestions []string

	if candidate.PersonalInfo.Email == "" {
		suggestions = append(suggestions, "Add a valid email address to the CV")
	}
	if candidate.PersonalInfo.Phone == "" {
		suggestions = append(suggestions, "Add a phone number to the CV")
	}

	matched := make(map[string]bool, len(matchedSkills))
	for _, s := range matchedSkills {
		matched[strings.ToLower(s)] = true
	}
	var missing []string
	for _, req := range job.Requirements.TechnicalSkills {
		if !matched[strings.ToLower(req.Name)] {
			missing = append(missing, req.Name)
		}
		if len(missing) == maxSuggestedSkills {
			break
		}
	}
	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Develop skills: %s", strings.Join(missing, ", ")))
	}

	if len(candidate.Languages) < 2 {
		suggestions = append(suggestions, "List languages with proficiency levels")
	}

	return suggestions
}

// clampScore bounds the overall score to [0,100] regardless of intermediate
// arithmetic.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
