package parsing

import (
	"regexp"

	"github.com/jonathan/resume-match/internal/types"
)

var (
	// degreePattern flags lines mentioning a degree as new education entries.
	degreePattern = regexp.MustCompile(`(?i)b\.?s\.?|m\.?s\.?|ph\.?d\.?|bachelor|master|diploma|degree`)
	calendarYear  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ExtractEducation converts the education section's body lines into
// structured entries, mirroring ExtractExperience's control flow. A line
// matching the degree vocabulary starts a new entry; the raw heading line is
// stored as both institution and degree since the heuristics cannot tell
// them apart.
func ExtractEducation(lines []string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)
	var current *types.EducationEntry

	for _, line := range lines {
		if degreePattern.MatchString(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.EducationEntry{
				Institution: line,
				Degree:      line,
				Year:        extractYear(line),
				Bullets:     []string{},
			}
			continue
		}

		bullet := stripBullet(line)
		if bullet != "" {
			if current == nil {
				current = &types.EducationEntry{Bullets: []string{}}
			}
			current.Bullets = append(current.Bullets, bullet)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// extractYear returns the first 4-digit year in a line, or empty.
func extractYear(line string) string {
	return calendarYear.FindString(line)
}
