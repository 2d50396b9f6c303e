package scoring

import (
	"testing"

	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMissionSimilarity_SameCategory(t *testing.T) {
	a := types.Mission{Text: "relances clients", Category: types.CategoryFacturation}
	b := types.Mission{Text: "édition des factures", Category: types.CategoryFacturation}

	assert.Equal(t, 0.8, missionSimilarity(a, b))
}

func TestMissionSimilarity_DifferentCategoryUsesWordOverlap(t *testing.T) {
	a := types.Mission{Text: "saisie des commandes clients", Category: types.CategorySaisie}
	b := types.Mission{Text: "suivi des commandes clients", Category: types.CategoryGeneral}

	// Significant words: {saisie, commandes, clients} vs {suivi, commandes,
	// clients}; 2 shared over 3 in the longer set.
	assert.InDelta(t, 2.0/3.0, missionSimilarity(a, b), 0.001)
}

func TestWordOverlap_IdenticalTextCapped(t *testing.T) {
	text := "gestion des dossiers fournisseurs"

	assert.Equal(t, 0.95, wordOverlap(text, text))
}

func TestWordOverlap_NoSignificantWords(t *testing.T) {
	assert.Equal(t, 0.0, wordOverlap("le la un de", "et ou car"))
	assert.Equal(t, 0.0, wordOverlap("", "facturation clients"))
}

func TestWordOverlap_ShortWordsIgnored(t *testing.T) {
	// "sap" is 3 runes and must not count as a shared word.
	assert.Equal(t, 0.0, wordOverlap("sap sur les", "sap et des"))
}

func TestSignificantWords_TrimsPunctuationAndCase(t *testing.T) {
	words := significantWords("Facturation, relances (clients).")

	assert.True(t, words["facturation"])
	assert.True(t, words["relances"])
	assert.True(t, words["clients"])
	assert.Len(t, words, 3)
}
