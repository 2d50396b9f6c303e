package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureCV = "Marie Dupont\n" +
	"marie.dupont@example.com\n" +
	"06 12 34 56 78\n" +
	"\n\n" +
	"Assistante de gestion chez Société Lumiplast\n" +
	"2019 - 2022\n" +
	"• Établissement des factures clients et relances fournisseurs\n" +
	"• Saisie des commandes dans SAP\n" +
	"\n\n" +
	"COMPÉTENCES\n" +
	"Excel, SAP et quelques notions de Power BI pour le reporting mensuel\n" +
	"\n\n" +
	"LANGUES\n" +
	"Anglais courant\n" +
	"Espagnol notions\n"

const fixtureJob = "La société Lumiplast recherche une assistante de gestion polyvalente\n" +
	"Contrat : CDI\n" +
	"Lieu : 69003 Lyon\n" +
	"Salaire : 28k€ - 32k€ selon profil\n" +
	"Télétravail possible 2 jours / semaine\n" +
	"3 ans d'expérience exigés sur un poste similaire\n" +
	"\n" +
	"Missions : facturation clients et suivi des règlements\n" +
	"• Saisie des commandes dans SAP\n" +
	"\n" +
	"Maîtrise d'Excel exigée, SAP apprécié\n"

// writeFixture writes content to name under dir and returns the full path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func mkdir(path string) error {
	return os.Mkdir(path, 0755)
}
