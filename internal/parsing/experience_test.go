package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_CompanyTitleAndDates(t *testing.T) {
	lines := []string{
		"Acme Corp - Senior Engineer 2019 - 2022",
		"• Built a distributed ingestion pipeline",
		"• Mentored four junior engineers",
	}

	entries := ExtractExperience(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "2019", entries[0].Start)
	assert.Equal(t, "2022", entries[0].End)
	assert.Equal(t, []string{
		"Built a distributed ingestion pipeline",
		"Mentored four junior engineers",
	}, entries[0].Bullets)
}

func TestExtractExperience_OpenEndedRange(t *testing.T) {
	entries := ExtractExperience([]string{"Google 2020 - Present"})

	require.Len(t, entries, 1)
	assert.Equal(t, "Google", entries[0].Company)
	assert.Empty(t, entries[0].Title)
	assert.Equal(t, "2020", entries[0].Start)
	assert.Equal(t, "Present", entries[0].End)
}

func TestExtractExperience_MultipleEntries(t *testing.T) {
	lines := []string{
		"Acme Corp - Senior Engineer 2019 - 2022",
		"• Shipped the billing rewrite",
		"Initech - Staff Engineer 2022 - 2024",
		"• Ran the platform team",
	}

	entries := ExtractExperience(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Initech", entries[1].Company)
	assert.Equal(t, []string{"Ran the platform team"}, entries[1].Bullets)
}

func TestExtractExperience_BulletMarkerVariants(t *testing.T) {
	lines := []string{
		"Acme Corp - Senior Engineer 2019 - 2022",
		"• Dot bullet",
		"* Star bullet",
		"1. Numbered bullet",
	}

	entries := ExtractExperience(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Dot bullet", "Star bullet", "Numbered bullet"}, entries[0].Bullets)
}

func TestExtractExperience_OrphanBulletsGetEmptyEntry(t *testing.T) {
	entries := ExtractExperience([]string{"• Did meaningful work"})

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Company)
	assert.Empty(t, entries[0].Title)
	assert.Equal(t, []string{"Did meaningful work"}, entries[0].Bullets)
}

func TestExtractExperience_FinalEntryFlushed(t *testing.T) {
	entries := ExtractExperience([]string{"Globex - Engineer 2018 - 2019"})

	require.Len(t, entries, 1)
	assert.Equal(t, "Globex", entries[0].Company)
	assert.Empty(t, entries[0].Bullets)
}

func TestExtractExperience_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractExperience(nil))
}
