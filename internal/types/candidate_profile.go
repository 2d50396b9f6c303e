// Package types provides type definitions for structured data used throughout the cv-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo holds contact details pulled from a CV. Every field is
// optional; extraction leaves a field empty rather than failing when no
// pattern matches.
type PersonalInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Experience represents one detected experience block in a CV. Duration is
// kept as free text; it is never parsed into a date range.
type Experience struct {
	Position string    `json:"position,omitempty"`
	Company  string    `json:"company,omitempty"`
	Duration string    `json:"duration,omitempty"`
	Missions []Mission `json:"missions"`
}

// CandidateProfile is the structured representation of a parsed CV.
// Skills and Languages carry set semantics: lowercase-normalized and
// deduplicated at construction time. Missions is the flattened,
// deduplicated union of all per-experience missions, in document order.
type CandidateProfile struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Skills       []string     `json:"skills"`
	Experiences  []Experience `json:"experiences"`
	Languages    []string     `json:"languages"`
	Missions     []Mission    `json:"missions"`
}

// HasSkill reports whether the candidate's skill set contains name,
// compared case-insensitively.
func (p *CandidateProfile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
