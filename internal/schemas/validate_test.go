package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match/internal/parsing"
)

const resumeSchema = "schemas/resume.schema.json"
const matchSchema = "schemas/match_result.schema.json"

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(resumeSchema))
	assert.NotEmpty(t, ResolveSchemaPath(matchSchema))
}

func TestResolveSchemaPath_UnknownFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateDocument_ParsedResumeIsValid(t *testing.T) {
	schemaPath := ResolveSchemaPath(resumeSchema)
	require.NotEmpty(t, schemaPath)

	resume := parsing.ParseResumeText("Jane Doe\nSKILLS\nGo, Python")

	assert.NoError(t, ValidateDocument(schemaPath, resume))
}

func TestValidateDocument_ReportsFieldErrors(t *testing.T) {
	schemaPath := ResolveSchemaPath(resumeSchema)
	require.NotEmpty(t, schemaPath)

	document := map[string]any{"summary": 42}

	err := ValidateDocument(schemaPath, document)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "validation failed")
}

func TestValidateDocument_MissingSchemaFile(t *testing.T) {
	err := ValidateDocument("does-not-exist.json", map[string]any{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_ValidDocumentFile(t *testing.T) {
	schemaPath := ResolveSchemaPath(resumeSchema)
	require.NotEmpty(t, schemaPath)

	docPath := filepath.Join(t.TempDir(), "resume.json")
	doc := `{
		"contact": {"name": "", "email": "", "phone": "", "location": "", "links": []},
		"summary": "",
		"skills": [],
		"experience": [],
		"education": [],
		"extras": {}
	}`
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingDocumentFile(t *testing.T) {
	schemaPath := ResolveSchemaPath(resumeSchema)
	require.NotEmpty(t, schemaPath)

	err := ValidateJSON(schemaPath, "nope.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateDocument_UnparseableSchema(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "broken.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte("{not json"), 0o644))

	err := ValidateDocument(schemaPath, map[string]any{})

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
