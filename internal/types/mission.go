package types

// MissionCategory classifies an extracted responsibility statement into a
// closed taxonomy of business-process types.
type MissionCategory string

const (
	// CategoryFacturation covers invoicing and billing work.
	CategoryFacturation MissionCategory = "facturation"
	// CategorySaisie covers data-entry work.
	CategorySaisie MissionCategory = "saisie"
	// CategoryControle covers quality-control and verification work.
	CategoryControle MissionCategory = "controle"
	// CategoryReporting covers reporting and dashboard work.
	CategoryReporting MissionCategory = "reporting"
	// CategoryGestion covers administrative and file management work.
	CategoryGestion MissionCategory = "gestion"
	// CategoryGeneral is the fallback for responsibility statements that
	// match no category-specific pattern.
	CategoryGeneral MissionCategory = "general"
)

// Mission represents a single responsibility/task statement extracted from a
// CV experience block or a job description section.
type Mission struct {
	Text       string          `json:"text"`
	Category   MissionCategory `json:"category"`
	Confidence float64         `json:"confidence"`
}
