package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath_FindsRepositorySchemas(t *testing.T) {
	for _, rel := range []string{CandidateProfileSchema, JobProfileSchema, MatchResultSchema} {
		t.Run(rel, func(t *testing.T) {
			resolved := ResolveSchemaPath(rel)
			assert.NotEmpty(t, resolved, "schema should resolve from the package directory")
		})
	}
}

func TestResolveSchemaPath_NonExistent(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/nonexistent.schema.json"))
}

func TestValidateBytes_ValidCandidateProfile(t *testing.T) {
	profile := types.CandidateProfile{
		PersonalInfo: types.PersonalInfo{
			Name:  "Marie Dupont",
			Email: "marie.dupont@example.fr",
		},
		Skills:    []string{"excel", "sap"},
		Languages: []string{"anglais courant"},
		Missions: []types.Mission{
			{Text: "Facturation clients et relances", Category: types.CategoryFacturation, Confidence: 0.9},
		},
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.NoError(t, ValidateBytes(CandidateProfileSchema, data))
}

func TestValidateBytes_ValidMatchResult(t *testing.T) {
	result := types.MatchResult{
		ID:         "8b2d",
		Score:      67,
		Confidence: types.ConfidenceLow,
		Breakdown: types.ScoringBreakdown{
			Missions:   types.SubScore{Value: 50, Weight: 0.40},
			Skills:     types.SubScore{Value: 67, Weight: 0.30},
			Experience: types.SubScore{Value: 75, Weight: 0.15},
			Quality:    types.SubScore{Value: 75, Weight: 0.15},
		},
		MatchedSkills:  []string{"excel", "sap"},
		Recommendation: "Interesting profile, partial match",
		EvaluatedAt:    1756339200,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateBytes(MatchResultSchema, data))
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	err := ValidateBytes(JobProfileSchema, []byte(`{"title": "Comptable fournisseurs"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateBytes_NonExistentSchema(t *testing.T) {
	err := ValidateBytes("schemas/nonexistent.schema.json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "score", Message: "must be less than or equal to 100"},
			{Field: "confidence", Message: "must be one of the enum values"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "score")
	assert.Contains(t, errorMsg, "confidence")
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["remote"],
		"properties": {
			"remote": {
				"type": "object",
				"required": ["enabled"],
				"properties": {
					"enabled": {"type": "boolean"}
				}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"remote": {}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Greater(t, len(validationErr.Errors), 0)

	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}
