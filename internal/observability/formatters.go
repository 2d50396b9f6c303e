// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateProfile outputs a human-readable summary of the parsed CV.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", profile.PersonalInfo.Phone))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:     %s\n", skills))
	}
	if len(profile.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages:  %s\n", strings.Join(profile.Languages, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Experience blocks: %d\n", len(profile.Experiences)))

	if len(profile.Missions) > 0 {
		sb.WriteString("\nMissions:\n")
		count := min(len(profile.Missions), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := profile.Missions[i]
			text := m.Text
			if len(text) > 40 {
				text = text[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s [%s]\n", text, m.Category))
		}
		if len(profile.Missions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Missions)-maxItemsToShow))
		}
	}

	p.printBox("PARSED CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobProfile outputs a human-readable summary of the parsed job profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:     %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Company:   %s\n", profile.Company))
	sb.WriteString(fmt.Sprintf("Contract:  %s\n", profile.ContractType))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	if profile.Salary != nil {
		if profile.Salary.MaxAmount > 0 {
			sb.WriteString(fmt.Sprintf("Salary:    %d-%d %s\n", profile.Salary.Amount, profile.Salary.MaxAmount, profile.Salary.Currency))
		} else {
			sb.WriteString(fmt.Sprintf("Salary:    %d %s\n", profile.Salary.Amount, profile.Salary.Currency))
		}
	}
	if profile.Remote.Enabled {
		sb.WriteString(fmt.Sprintf("Remote:    yes (%d d/week)\n", profile.Remote.DaysPerWeek))
	}
	sb.WriteString("\n")

	if len(profile.Requirements.TechnicalSkills) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(profile.Requirements.TechnicalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := profile.Requirements.TechnicalSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", req.Name))
			if req.Required {
				sb.WriteString(" (required)")
			}
			if req.Level != types.LevelNotSpecified {
				sb.WriteString(fmt.Sprintf(" [%s]", req.Level))
			}
			sb.WriteString("\n")
		}
		if len(profile.Requirements.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Requirements.TechnicalSkills)-maxItemsToShow))
		}
	}

	if len(profile.Requirements.RequiredMissions) > 0 {
		sb.WriteString(fmt.Sprintf("Required missions: %d\n", len(profile.Requirements.RequiredMissions)))
	}

	p.printBox("PARSED JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown and recommendation.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:       %d/100 (%s confidence)\n", result.Score, result.Confidence))
	sb.WriteString("\n")
	sb.WriteString("Breakdown:\n")
	sb.WriteString(formatSubScore("Missions", result.Breakdown.Missions))
	sb.WriteString(formatSubScore("Skills", result.Breakdown.Skills))
	sb.WriteString(formatSubScore("Experience", result.Breakdown.Experience))
	sb.WriteString(formatSubScore("Quality", result.Breakdown.Quality))
	sb.WriteString("\n")

	if len(result.MatchedSkills) > 0 {
		skills := strings.Join(result.MatchedSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched skills: %s\n", skills))
	}

	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Recommendation))

	if len(result.ImprovementSuggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range result.ImprovementSuggestions {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func formatSubScore(label string, s types.SubScore) string {
	return fmt.Sprintf("  %-11s %5.1f × %.2f = %5.1f\n", label, s.Value, s.Weight, s.Value*s.Weight)
}
