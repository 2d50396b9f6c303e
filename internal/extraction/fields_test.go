package extraction

import (
	"testing"

	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor() *FieldExtractor {
	return NewFieldExtractor(patterns.Default())
}

const sampleCV = `Marie Dupont
marie.dupont@example.com
06 12 34 56 78

COMPÉTENCES
Maîtrise d'Excel, SAP et Power BI
Développement Python et C++

LANGUES
Anglais courant
Espagnol notions
`

func TestExtractPersonalInfo_FullContact(t *testing.T) {
	info := newExtractor().ExtractPersonalInfo(sampleCV)

	assert.Equal(t, "Marie Dupont", info.Name)
	assert.Equal(t, "marie.dupont@example.com", info.Email)
	assert.Equal(t, "06 12 34 56 78", info.Phone)
}

func TestExtractPersonalInfo_InternationalPhoneWins(t *testing.T) {
	text := "Contact : +33 6 12 34 56 78 ou 01 23 45 67 89"

	info := newExtractor().ExtractPersonalInfo(text)

	assert.Equal(t, "+33 6 12 34 56 78", info.Phone)
}

func TestExtractPersonalInfo_MissingFieldsStayEmpty(t *testing.T) {
	info := newExtractor().ExtractPersonalInfo("aucune coordonnée ici")

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestExtractPersonalInfo_RejectsOverlongNameCapture(t *testing.T) {
	// A "Nom:" line whose value is a whole sentence must not be accepted.
	text := "Nom: cette ligne est beaucoup trop longue pour être un nom de personne plausible dans un CV"

	info := newExtractor().ExtractPersonalInfo(text)

	assert.Empty(t, info.Name)
}

func TestExtractSkills_LowercasedMatchedLiterals(t *testing.T) {
	skills := newExtractor().ExtractSkills("Outils : EXCEL, Sap, Node.js et C#")

	assert.ElementsMatch(t, []string{"excel", "sap", "node.js", "c#"}, skills)
}

func TestExtractSkills_DeduplicatesRepeats(t *testing.T) {
	skills := newExtractor().ExtractSkills("Excel, excel, EXCEL")

	assert.Equal(t, []string{"excel"}, skills)
}

func TestExtractSkills_NoFalseSubstringMatches(t *testing.T) {
	skills := newExtractor().ExtractSkills("un candidat excellent et accessible")

	assert.Empty(t, skills)
}

func TestExtractLanguages_WithProficiency(t *testing.T) {
	languages := newExtractor().ExtractLanguages(sampleCV)

	assert.ElementsMatch(t, []string{"anglais courant", "espagnol notions"}, languages)
}

func TestExtractLanguages_BareLanguageName(t *testing.T) {
	languages := newExtractor().ExtractLanguages("Allemand")

	assert.Equal(t, []string{"allemand"}, languages)
}

func TestExtract_Idempotent(t *testing.T) {
	e := newExtractor()

	first := e.ExtractSkills(sampleCV)
	second := e.ExtractSkills(sampleCV)
	require.Equal(t, first, second)

	assert.Equal(t, e.ExtractPersonalInfo(sampleCV), e.ExtractPersonalInfo(sampleCV))
	assert.Equal(t, e.ExtractLanguages(sampleCV), e.ExtractLanguages(sampleCV))
}
