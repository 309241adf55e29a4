package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_DegreeLineStartsEntry(t *testing.T) {
	lines := []string{
		"B.S. Computer Science, MIT 2018",
		"• GPA 3.9",
	}

	entries := ExtractEducation(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "B.S. Computer Science, MIT 2018", entries[0].Institution)
	assert.Equal(t, "B.S. Computer Science, MIT 2018", entries[0].Degree)
	assert.Equal(t, "2018", entries[0].Year)
	assert.Equal(t, []string{"GPA 3.9"}, entries[0].Bullets)
}

func TestExtractEducation_MultipleDegrees(t *testing.T) {
	lines := []string{
		"Master of Science, Stanford 2020",
		"Bachelor of Arts, Berkeley 2016",
	}

	entries := ExtractEducation(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, "2020", entries[0].Year)
	assert.Equal(t, "2016", entries[1].Year)
}

func TestExtractEducation_NoYearLeavesFieldEmpty(t *testing.T) {
	entries := ExtractEducation([]string{"Diploma in Software Engineering"})

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Year)
}

func TestExtractEducation_OrphanLinesBecomeBullets(t *testing.T) {
	entries := ExtractEducation([]string{"Relevant coursework: compilers"})

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Institution)
	assert.Equal(t, []string{"Relevant coursework: compilers"}, entries[0].Bullets)
}

func TestExtractEducation_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractEducation(nil))
}
