package profile

import (
	"strconv"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

// BuildJobProfile parses job-description text into a JobProfile. Single
// valued fields use first-match-wins over their pattern lists; missing
// fields stay empty.
func (b *Builder) BuildJobProfile(text string) *types.JobProfile {
	job := &types.JobProfile{
		Requirements: types.Requirements{
			TechnicalSkills:  b.extractSkillRequirements(text),
			RequiredMissions: b.extractRequiredMissions(text),
		},
	}

	for _, re := range b.lib.Title {
		if m := re.FindStringSubmatch(text); m != nil {
			job.Title = strings.TrimSpace(m[1])
			break
		}
	}

	if m := b.lib.ContractType.FindStringSubmatch(text); m != nil {
		job.ContractType = strings.ToUpper(m[1])
		// Normalize non-acronym contract types back to lowercase.
		switch job.ContractType {
		case "CDD", "CDI":
		default:
			job.ContractType = strings.ToLower(job.ContractType)
		}
	}

	for _, re := range b.lib.Location {
		if m := re.FindStringSubmatch(text); m != nil {
			job.Location = strings.TrimSpace(m[1])
			break
		}
	}

	if m := b.lib.Company.FindStringSubmatch(text); m != nil {
		job.Company = strings.TrimSpace(m[1])
	}

	job.Salary = b.extractSalary(text)
	job.Remote = b.extractRemote(text)

	for _, re := range b.lib.ExperienceYears {
		if m := re.FindStringSubmatch(text); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				job.RequiredExperienceYears = years
				break
			}
		}
	}

	return job
}

// extractSkillRequirements sweeps the vocabulary line by line so that
// requirement markers ("exigé", "maîtrise") and level keywords on the same
// line qualify the skills it mentions.
func (b *Builder) extractSkillRequirements(text string) []types.SkillRequirement {
	seen := make(map[string]bool)
	var reqs []types.SkillRequirement

	for _, line := range strings.Split(text, "\n") {
		required := b.lib.RequiredKeyword.MatchString(line)

		level := types.LevelNotSpecified
		for _, lp := range b.lib.SkillLevels {
			if lp.Re.MatchString(line) {
				level = lp.Level
				break
			}
		}

		for _, sp := range b.lib.Skills {
			m := sp.Re.FindString(line)
			if m == "" {
				continue
			}
			name := strings.ToLower(m)
			if seen[name] {
				continue
			}
			seen[name] = true
			reqs = append(reqs, types.SkillRequirement{
				Name:     name,
				Required: required,
				Level:    level,
			})
		}
	}
	return reqs
}

// extractRequiredMissions treats the whole posting as one block: job
// descriptions rarely carry the blank-line structure of a CV, so the
// temporal-anchor block filter does not apply here.
func (b *Builder) extractRequiredMissions(text string) []types.Mission {
	return b.missions.ExtractMissions(text)
}

// extractSalary tries the "35k€" form (with optional "35-40k€" range) and
// then the written-out "35 000 €" form. Amounts are stored in full currency
// units.
func (b *Builder) extractSalary(text string) *types.Salary {
	if m := b.lib.SalaryThousands.FindStringSubmatch(text); m != nil {
		salary := &types.Salary{Currency: "EUR"}
		if amount, err := strconv.Atoi(m[1]); err == nil {
			salary.Amount = amount * 1000
		}
		if m[2] != "" {
			if maxAmount, err := strconv.Atoi(m[2]); err == nil {
				salary.MaxAmount = maxAmount * 1000
			}
		}
		if salary.Amount > 0 {
			return salary
		}
	}
	if m := b.lib.SalaryFull.FindStringSubmatch(text); m != nil {
		if amount, err := strconv.Atoi(m[1]); err == nil && amount > 0 {
			return &types.Salary{Amount: amount * 1000, Currency: "EUR"}
		}
	}
	return nil
}

// extractRemote flags remote work when any télétravail/remote/hybride
// keyword appears, with an optional days-per-week sub-match.
func (b *Builder) extractRemote(text string) types.Remote {
	remote := types.Remote{Enabled: b.lib.RemoteKeyword.MatchString(text)}
	if !remote.Enabled {
		return remote
	}
	if m := b.lib.RemoteDays.FindStringSubmatch(text); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			remote.DaysPerWeek = days
		}
	}
	return remote
}
