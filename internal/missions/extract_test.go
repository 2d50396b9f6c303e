package missions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/cv-matcher/internal/patterns"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	return NewExtractor(patterns.Default())
}

const experienceText = "EXPÉRIENCE PROFESSIONNELLE\n" +
	"\n\n" +
	"Assistante de gestion chez Société Lumiplast\n" +
	"2019 - 2022\n" +
	"• Établissement des factures clients et relances clients\n" +
	"• Saisie des commandes dans SAP\n" +
	"• Classement et archivage des dossiers fournisseurs\n" +
	"\n\n" +
	"Gestionnaire administrative, Cabinet Arveyron\n" +
	"3 ans\n" +
	"Missions : accompagnement des équipes sur site\n" +
	"• Élaboration de tableaux de bord mensuels\n" +
	"• Vérification des données clients importées\n"

func TestSegmentBlocks_DropsBlocksWithoutTemporalAnchor(t *testing.T) {
	// Long enough, but no 4-digit year and no duration keyword.
	text := "Responsable des achats\n• Négociation des contrats fournisseurs et suivi des litiges en cours\n\n\nAutre bloc sans la moindre date ni durée, mais suffisamment long pour passer le filtre de taille."

	blocks := newTestExtractor().SegmentBlocks(text)

	assert.Empty(t, blocks)
}

func TestSegmentBlocks_DropsShortBlocks(t *testing.T) {
	blocks := newTestExtractor().SegmentBlocks("2019 - 2022\n\n\ncourt")

	assert.Empty(t, blocks)
}

func TestSegmentBlocks_KeepsAnchoredBlocks(t *testing.T) {
	blocks := newTestExtractor().SegmentBlocks(experienceText)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Lumiplast")
	assert.Contains(t, blocks[1], "Arveyron")
}

func TestSegmentBlocks_CapsRetainedBlocks(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "Poste numéro %d occupé de 2015 à 2016 avec des responsabilités variées au quotidien\n\n\n", i)
	}

	blocks := newTestExtractor().SegmentBlocks(sb.String())

	assert.Len(t, blocks, 5)
}

func TestExtractMissions_CategorizesAndWeights(t *testing.T) {
	block := "• Établissement des factures clients et relances clients\n" +
		"• Saisie des commandes dans SAP\n" +
		"• Classement et archivage des dossiers fournisseurs"

	list := newTestExtractor().ExtractMissions(block)

	byCategory := map[types.MissionCategory]float64{}
	for _, m := range list {
		byCategory[m.Category] = m.Confidence
	}

	assert.Equal(t, 0.9, byCategory[types.CategoryFacturation])
	assert.Equal(t, 0.8, byCategory[types.CategorySaisie])
	assert.Equal(t, 0.5, byCategory[types.CategoryGestion])
}

func TestExtractMissions_BulletDuplicatesKeepCategoryMatch(t *testing.T) {
	// The bullet line also matches the generic pattern; the category-tagged
	// occurrence comes first and wins the dedup.
	block := "• Saisie des commandes dans SAP"

	list := newTestExtractor().ExtractMissions(block)

	require.Len(t, list, 1)
	assert.Equal(t, types.CategorySaisie, list[0].Category)
	assert.Equal(t, 0.8, list[0].Confidence)
}

func TestExtractMissions_GenericBulletFallsBackToGeneral(t *testing.T) {
	block := "• Animation des réunions hebdomadaires du service"

	list := newTestExtractor().ExtractMissions(block)

	require.Len(t, list, 1)
	assert.Equal(t, types.CategoryGeneral, list[0].Category)
	assert.Equal(t, 0.7, list[0].Confidence)
	assert.Equal(t, "Animation des réunions hebdomadaires du service", list[0].Text)
}

func TestExtractMissions_LabelLineTaggedGeneral(t *testing.T) {
	block := "Missions : accompagnement des équipes sur site"

	list := newTestExtractor().ExtractMissions(block)

	require.Len(t, list, 1)
	assert.Equal(t, types.CategoryGeneral, list[0].Category)
	assert.Equal(t, "accompagnement des équipes sur site", list[0].Text)
}

func TestExtractMissions_DiscardsShortFragments(t *testing.T) {
	list := newTestExtractor().ExtractMissions("• courte\n• ok")

	assert.Empty(t, list)
}

func TestExtractMissions_NoDuplicateNormalizedText(t *testing.T) {
	block := "• Saisie des commandes dans SAP\n" +
		"• saisie  des   commandes dans sap\n" +
		"• SAISIE DES COMMANDES DANS SAP"

	list := newTestExtractor().ExtractMissions(block)

	require.Len(t, list, 1)

	seen := map[string]bool{}
	for _, m := range list {
		key := dedupeKey(m.Text)
		assert.False(t, seen[key], "duplicate normalized mission %q", key)
		seen[key] = true
	}
}

func TestExtractExperiences_PopulatesHeaders(t *testing.T) {
	experiences := newTestExtractor().ExtractExperiences(experienceText)

	require.Len(t, experiences, 2)

	first := experiences[0]
	assert.Equal(t, "Assistante de gestion", first.Position)
	assert.Equal(t, "Société Lumiplast", first.Company)
	assert.Equal(t, "2019 - 2022", first.Duration)
	assert.NotEmpty(t, first.Missions)

	second := experiences[1]
	assert.Equal(t, "Gestionnaire administrative", second.Position)
	assert.Equal(t, "Arveyron", second.Company)
	assert.Equal(t, "3 ans", second.Duration)
}

func TestExtractExperiences_EmptyTextYieldsNoExperiences(t *testing.T) {
	experiences := newTestExtractor().ExtractExperiences("Un texte sans aucune date ni mot-clé de durée.")

	assert.Empty(t, experiences)
}

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	list := []types.Mission{
		{Text: "Facturation clients export", Category: types.CategoryFacturation, Confidence: 0.9},
		{Text: "facturation   clients export", Category: types.CategoryGeneral, Confidence: 0.7},
	}

	out := Dedupe(list)

	require.Len(t, out, 1)
	assert.Equal(t, types.CategoryFacturation, out[0].Category)
}
