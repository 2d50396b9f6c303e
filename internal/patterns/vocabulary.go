package patterns

import (
	"regexp"
	"strings"
)

// SkillVocabulary is the fixed list of tool and technology names the field
// extractor searches for. Entries may contain regex metacharacters ("C++",
// "Node.js"); compilation escapes them.
var SkillVocabulary = []string{
	// Office / collaboration
	"Excel", "Word", "PowerPoint", "Outlook", "Access", "Office 365",
	"SharePoint", "Teams", "Jira", "Photoshop",
	// ERP / business software
	"SAP", "Sage", "Cegid", "Ciel", "EBP", "Oracle", "Navision",
	"Dynamics", "Quadratus", "Salesforce", "HubSpot",
	// Programming and data
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#",
	"Node.js", "Vue.js", "React", "Angular", "PHP", "VBA",
	"SQL", "MySQL", "PostgreSQL", "HTML", "CSS",
	"Power BI", "Tableau",
}

// compileVocabulary turns vocabulary entries into case-insensitive search
// patterns. Word boundaries are only attached where the entry actually
// starts/ends with a word character; `\bC\+\+\b` would never match because
// `+` is not a word character.
func compileVocabulary(entries []string) []SkillPattern {
	compiled := make([]SkillPattern, 0, len(entries))
	for _, entry := range entries {
		compiled = append(compiled, SkillPattern{
			Name: entry,
			Re:   regexp.MustCompile(vocabularyExpr(entry)),
		})
	}
	return compiled
}

// vocabularyExpr builds the escaped, boundary-guarded expression for one
// vocabulary entry.
func vocabularyExpr(entry string) string {
	var sb strings.Builder
	sb.WriteString(`(?i)`)
	if startsWithWordChar(entry) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(entry))
	if endsWithWordChar(entry) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[0]))
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[len(s)-1]))
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
