package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
)

var (
	// companyTitlePattern matches "Some Company - Role" style headings:
	// two or more word tokens, a hyphen, then more letters.
	companyTitlePattern = regexp.MustCompile(`(\b[A-Za-z]+\b\s?){2,}[-–]\s?[A-Za-z]+`)
	yearPattern         = regexp.MustCompile(`\b\d{4}\b`)
	// dateRangePattern captures "2019 - 2022" or "2019 – Present" spans.
	dateRangePattern = regexp.MustCompile(`(?i)\b\d{4}\b.*(\b\d{4}\b|present)`)
	dateSeparator    = regexp.MustCompile(`[-–]`)
	headingSeparator = regexp.MustCompile(`[-–@•]`)
	bulletMarker     = regexp.MustCompile(`^[-•*]\s+|^\d+\.\s+`)
)

// ExtractExperience converts the experience section's body lines into
// structured entries. A heading line flushes the open entry and starts a new
// one; every other line becomes a bullet of the open entry. Bullet lines
// seen before any heading get an entry with empty company and title.
func ExtractExperience(lines []string) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)
	var current *types.ExperienceEntry

	for _, line := range lines {
		if isExperienceHeading(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			entry := parseExperienceHeading(line)
			current = &entry
			continue
		}

		bullet := stripBullet(line)
		if bullet != "" {
			if current == nil {
				current = &types.ExperienceEntry{Bullets: []string{}}
			}
			current.Bullets = append(current.Bullets, bullet)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// isExperienceHeading classifies a line as an entry boundary: either a
// "Company - Title" shape, or any line carrying a 4-digit year that is not
// itself a bullet.
func isExperienceHeading(line string) bool {
	if companyTitlePattern.MatchString(line) {
		return true
	}
	return yearPattern.MatchString(line) && !strings.HasPrefix(line, "•")
}

// parseExperienceHeading splits a heading line into company, title and date
// range. The date span is located first and removed; the remainder splits on
// hyphen, en-dash, @ or bullet characters.
func parseExperienceHeading(line string) types.ExperienceEntry {
	entry := types.ExperienceEntry{Bullets: []string{}}

	if dateText := dateRangePattern.FindString(line); dateText != "" {
		parts := dateSeparator.Split(dateText, -1)
		if len(parts) > 0 {
			entry.Start = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			entry.End = strings.TrimSpace(parts[1])
		}
		line = strings.Replace(line, dateText, "", 1)
	}

	parts := make([]string, 0, 2)
	for _, part := range headingSeparator.Split(strings.TrimSpace(line), -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) > 0 {
		entry.Company = parts[0]
	}
	if len(parts) > 1 {
		entry.Title = parts[1]
	}
	return entry
}

// stripBullet removes a leading bullet marker ("-", "•", "*" or "1.") and
// returns the trimmed remainder.
func stripBullet(line string) string {
	if loc := bulletMarker.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:])
	}
	return strings.TrimSpace(line)
}
