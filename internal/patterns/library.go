// Package patterns provides the compiled regular-expression registry the
// extraction engine runs against. A Library is built once at startup and
// passed into extractors; it is immutable after construction, so a single
// instance can be shared across any number of concurrent extraction calls.
package patterns

import (
	"regexp"

	"github.com/jonathan/cv-matcher/internal/types"
)

// CategoryPattern groups the regex variants recognizing one mission
// category with the fixed priority weight attached to its matches. The
// weights are heuristic, not statistically derived.
type CategoryPattern struct {
	Category   types.MissionCategory
	Confidence float64
	Variants   []*regexp.Regexp
}

// SkillPattern pairs a vocabulary entry with its compiled word-boundary
// regex. Name keeps the canonical spelling for diagnostics; matches store
// the lowercased matched literal, not Name.
type SkillPattern struct {
	Name string
	Re   *regexp.Regexp
}

// LevelPattern maps a proficiency-keyword regex to a skill level.
type LevelPattern struct {
	Level types.SkillLevel
	Re    *regexp.Regexp
}

// Library is the full pattern registry. Slice-valued fields are ordered:
// single-valued extractions try patterns in declaration order and stop at
// the first match; multi-valued extractions union all matches.
type Library struct {
	// Personal info
	Name  []*regexp.Regexp
	Email *regexp.Regexp
	Phone []*regexp.Regexp

	// Vocabulary
	Skills    []SkillPattern
	Languages *regexp.Regexp

	// Mission extraction
	MissionCategories []CategoryPattern
	BulletLine        *regexp.Regexp
	MissionLabel      *regexp.Regexp
	Year              *regexp.Regexp
	DurationKeyword   *regexp.Regexp

	// Experience-block header heuristics
	Position     []*regexp.Regexp
	BlockCompany *regexp.Regexp
	Duration     []*regexp.Regexp

	// Job-side single-value fields
	Title           []*regexp.Regexp
	ContractType    *regexp.Regexp
	Location        []*regexp.Regexp
	Company         *regexp.Regexp
	SalaryThousands *regexp.Regexp
	SalaryFull      *regexp.Regexp
	RemoteKeyword   *regexp.Regexp
	RemoteDays      *regexp.Regexp
	ExperienceYears []*regexp.Regexp

	// Job-side requirement qualifiers
	RequiredKeyword *regexp.Regexp
	SkillLevels     []LevelPattern
}

// GeneralConfidence is the fixed weight attached to missions caught by the
// generic bullet/label patterns rather than a category-specific one.
const GeneralConfidence = 0.7

// Default builds the standard Library used by the profile builders. All
// patterns are case-insensitive; vocabulary entries go through
// regexp.QuoteMeta so entries like "C++" or "Node.js" cannot corrupt the
// compiled expression.
func Default() *Library {
	return &Library{
		Name: []*regexp.Regexp{
			// A standalone line of capitalized words near the top of a CV.
			regexp.MustCompile(`(?m)^[ \t]*([A-ZÀ-Ÿ][a-zà-ÿ]+(?:[ \t]+[A-ZÀ-Ÿ][A-Za-zà-ÿ\-]+)+)[ \t]*$`),
			regexp.MustCompile(`(?i)(?:nom|name)[ \t]*:[ \t]*([^\n]+)`),
			// Known-surname literal fallback for CVs that put the name in
			// running text.
			regexp.MustCompile(`\b([A-ZÀ-Ÿ][a-zà-ÿ]+[ \t]+(?:MARTIN|BERNARD|DUBOIS|DURAND|MOREAU|LAURENT|LEFEBVRE|ROUX))\b`),
		},
		Email: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		Phone: []*regexp.Regexp{
			regexp.MustCompile(`(?:\+33|0033)[\s.\-]?[1-9](?:[\s.\-]?\d{2}){4}`),
			regexp.MustCompile(`0[1-9](?:[\s.\-]?\d{2}){4}`),
			regexp.MustCompile(`(?:\d{2}[\s.\-]){4}\d{2}`),
		},

		Skills:    compileVocabulary(SkillVocabulary),
		Languages: regexp.MustCompile(`(?i)\b(anglais|fran[çc]ais|espagnol|allemand|italien|portugais|n[ée]erlandais|chinois|mandarin|japonais|arabe|russe)\b(?:[ \t]*[:\-]?[ \t]*(courant|bilingue|natif|maternelle?|professionnel|interm[ée]diaire|scolaire|notions|technique|lu,?[ \t]*[ée]crit,?[ \t]*parl[ée]|[ABC][12]))?`),

		MissionCategories: missionCategories(),
		BulletLine:        regexp.MustCompile(`(?m)^[ \t]*[•\-\*][ \t]*(.+)$`),
		MissionLabel:      regexp.MustCompile(`(?i)(?:missions?|responsabilit[ée]s?|t[âa]ches?)[ \t]*:[ \t]*([^\n]+)`),
		Year:              regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
		DurationKeyword:   regexp.MustCompile(`(?i)\b(?:mois|ans|ann[ée]es?)\b`),

		Position: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^[ \t]*((?:assistant[e]?|gestionnaire|comptable|secr[ée]taire|charg[ée][e]?|technicien(?:ne)?|responsable)[^\n,(]{0,50})`),
			regexp.MustCompile(`(?i)poste[ \t]*:[ \t]*([^\n]+)`),
		},
		BlockCompany: regexp.MustCompile(`(?i)(?:chez|soci[ée]t[ée]|entreprise|cabinet|groupe)[ \t]+([A-ZÀ-Ÿ][A-Za-z0-9à-ÿ&'\- ]{1,40})`),
		Duration: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b((?:19|20)\d{2}[ \t]*(?:[-–à]|au?)[ \t]*(?:(?:19|20)\d{2}|aujourd'hui|pr[ée]sent))\b`),
			regexp.MustCompile(`(?i)\b(\d+[ \t]+(?:ans|mois))\b`),
			regexp.MustCompile(`\b((?:19|20)\d{2})\b`),
		},

		Title: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:recrute|recherche|recherchons)[ \t]+(?:un[e]?[ \t]+)?([a-zà-ÿA-ZÀ-Ÿ'/ \-]{5,60})`),
			regexp.MustCompile(`(?i)\b(assistant[e]?[ \t]+[a-zà-ÿA-ZÀ-Ÿ' \-]{3,40})`),
			regexp.MustCompile(`(?i)(?:poste|offre)[ \t]*:[ \t]*([^\n]+)`),
		},
		ContractType: regexp.MustCompile(`(?i)\b(CDD|CDI|stage|alternance|freelance|int[ée]rim)\b(?:[ \t]+de[ \t]+(\d+)[ \t]+mois)?`),
		Location: []*regexp.Regexp{
			regexp.MustCompile(`(?i)lieu(?:[ \t]+de[ \t]+travail)?[ \t]*:[ \t]*([^\n]+)`),
			regexp.MustCompile(`\b(\d{5}[ \t]+[A-ZÀ-Ÿ][a-zà-ÿ\-]+(?:[ \t][A-ZÀ-Ÿa-zà-ÿ\-]+)*)`),
		},
		Company:         regexp.MustCompile(`(?i)(?:soci[ée]t[ée]|entreprise|groupe|cabinet)[ \t]+([A-ZÀ-Ÿ][A-Za-z0-9à-ÿ&'\-]+(?:[ \t][A-ZÀ-Ÿ&][A-Za-z0-9à-ÿ&'\-]*)*)`),
		SalaryThousands: regexp.MustCompile(`(?i)(\d{2,3})[ \t]*k[ \t]*€?(?:[ \t]*[-–à][ \t]*(\d{2,3})[ \t]*k[ \t]*€?)?`),
		SalaryFull:      regexp.MustCompile(`(\d{2,3})[ .]?000[ \t]*€`),
		RemoteKeyword:   regexp.MustCompile(`(?i)\b(?:t[ée]l[ée]travail|remote|hybride)\b`),
		RemoteDays:      regexp.MustCompile(`(?i)(\d)[ \t]*j(?:ours?)?[ \t]*(?:de[ \t]+t[ée]l[ée]travail[ \t]*)?(?:/|par)[ \t]*semaine`),
		ExperienceYears: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+)[ \t]*(?:ans?|ann[ée]es?)[ \t]+(?:d['’][ \t]*)?exp[ée]rience`),
			regexp.MustCompile(`(?i)exp[ée]rience[ \t]*(?:de|d['’]au[ \t]+moins|minimum|:)?[ \t]*(\d+)[ \t]*ans?`),
		},

		RequiredKeyword: regexp.MustCompile(`(?i)\b(?:exig[ée]e?s?|requis[e]?s?|obligatoire|imp[ée]ratif|indispensable|ma[îi]trise)\b`),
		SkillLevels: []LevelPattern{
			{Level: types.LevelExpert, Re: regexp.MustCompile(`(?i)\b(?:expert[e]?|avanc[ée]e?|ma[îi]trise[ \t]+parfaite)\b`)},
			{Level: types.LevelIntermediate, Re: regexp.MustCompile(`(?i)\b(?:confirm[ée]e?|interm[ée]diaire|op[ée]rationnel(?:le)?|bonne[ \t]+connaissance)\b`)},
			{Level: types.LevelBeginner, Re: regexp.MustCompile(`(?i)\b(?:d[ée]butant[e]?|notions|bases)\b`)},
		},
	}
}

// missionCategories declares the closed category taxonomy. Ordering matters
// only across variants of a category; categories themselves are all tried.
func missionCategories() []CategoryPattern {
	return []CategoryPattern{
		{
			Category:   types.CategoryFacturation,
			Confidence: 0.9,
			Variants: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:[ée]tablissement|[ée]mission|[ée]dition)[ \t]+des?[ \t]+factures?[^\n.;]*`),
				regexp.MustCompile(`(?i)facturation[ \t]+(?:clients?|fournisseurs?)[^\n.;]*`),
				regexp.MustCompile(`(?i)suivi[ \t]+des?[ \t]+(?:r[èe]glements|encaissements|impay[ée]s)[^\n.;]*`),
				regexp.MustCompile(`(?i)relances?[ \t]+(?:clients?|des[ \t]+impay[ée]s)[^\n.;]*`),
			},
		},
		{
			Category:   types.CategorySaisie,
			Confidence: 0.8,
			Variants: []*regexp.Regexp{
				regexp.MustCompile(`(?i)saisie[ \t]+(?:de[ \t]+|des?[ \t]+)?(?:donn[ée]es|commandes|[ée]critures|factures)[^\n.;]*`),
				regexp.MustCompile(`(?i)enregistrement[ \t]+des?[ \t]+[^\n.;]+`),
				regexp.MustCompile(`(?i)mise[ \t]+[àa][ \t]+jour[ \t]+des?[ \t]+(?:bases?[ \t]+de[ \t]+donn[ée]es|fichiers|dossiers)[^\n.;]*`),
			},
		},
		{
			Category:   types.CategoryControle,
			Confidence: 0.7,
			Variants: []*regexp.Regexp{
				regexp.MustCompile(`(?i)contr[ôo]les?[ \t]+(?:de[ \t]+|des?[ \t]+|qualit[ée])[^\n.;]*`),
				regexp.MustCompile(`(?i)v[ée]rification[ \t]+des?[ \t]+[^\n.;]+`),
				regexp.MustCompile(`(?i)rapprochements?[ \t]+(?:bancaires?|comptables?)[^\n.;]*`),
			},
		},
		{
			Category:   types.CategoryReporting,
			Confidence: 0.6,
			Variants: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(?:[ée]laboration|production|r[ée]alisation)[ \t]+de[ \t]+(?:reportings?|tableaux[ \t]+de[ \t]+bord)[^\n.;]*`),
				regexp.MustCompile(`(?i)reporting[ \t]+[^\n.;]+`),
				regexp.MustCompile(`(?i)suivi[ \t]+des?[ \t]+indicateurs[^\n.;]*`),
			},
		},
		{
			Category:   types.CategoryGestion,
			Confidence: 0.5,
			Variants: []*regexp.Regexp{
				regexp.MustCompile(`(?i)gestion[ \t]+(?:administrative|des?[ \t]+[^\n.;]+)`),
				regexp.MustCompile(`(?i)classement[ \t]+(?:et[ \t]+archivage[ \t]+)?[^\n.;]+`),
				regexp.MustCompile(`(?i)traitement[ \t]+des?[ \t]+(?:courriers?|litiges|dossiers)[^\n.;]*`),
				regexp.MustCompile(`(?i)accueil[ \t]+(?:t[ée]l[ée]phonique|physique)[^\n.;]*`),
			},
		},
	}
}
