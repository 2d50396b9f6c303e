package types

// SkillLevel annotates a job skill requirement with an expected mastery
// level when the posting states one.
type SkillLevel string

const (
	// LevelExpert marks a skill the posting expects mastery of.
	LevelExpert SkillLevel = "expert"
	// LevelIntermediate marks a skill the posting expects working knowledge of.
	LevelIntermediate SkillLevel = "intermediate"
	// LevelBeginner marks a skill where notions are enough.
	LevelBeginner SkillLevel = "beginner"
	// LevelNotSpecified is used when the posting states no level.
	LevelNotSpecified SkillLevel = "not_specified"
)

// SkillRequirement represents one skill a job posting asks for.
type SkillRequirement struct {
	Name     string     `json:"name"`
	Required bool       `json:"required"`
	Level    SkillLevel `json:"level"`
}

// Salary represents an extracted salary or salary range in annual currency
// units (a "35k€" mention is stored as 35000).
type Salary struct {
	Amount    int    `json:"amount,omitempty"`
	MaxAmount int    `json:"max_amount,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// Remote captures remote-work conditions mentioned by a posting.
type Remote struct {
	Enabled     bool `json:"enabled"`
	DaysPerWeek int  `json:"days_per_week,omitempty"`
}

// Requirements groups what a posting asks of candidates.
type Requirements struct {
	TechnicalSkills  []SkillRequirement `json:"technical_skills"`
	RequiredMissions []Mission          `json:"required_missions"`
}

// JobProfile is the structured representation of a parsed job description.
type JobProfile struct {
	Title                   string       `json:"title,omitempty"`
	ContractType            string       `json:"contract_type,omitempty"`
	Location                string       `json:"location,omitempty"`
	Company                 string       `json:"company,omitempty"`
	Salary                  *Salary      `json:"salary,omitempty"`
	Remote                  Remote       `json:"remote"`
	Requirements            Requirements `json:"requirements"`
	RequiredExperienceYears int          `json:"required_experience_years,omitempty"`
}
