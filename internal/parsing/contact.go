package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
)

// headerLineCount is how many leading lines are treated as the header block.
const headerLineCount = 8

var (
	emailPattern    = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	urlPattern      = regexp.MustCompile(`(?i)https?://[^\s)]+|www\.[^\s)]+`)
	locationPattern = regexp.MustCompile(`(\b[A-Za-z]+\s?)+(,\s?[A-Za-z]+)?\s?(\d{5})?$`)
)

// ExtractContact pulls name, email, phone, location and links from the
// leading lines of a resume. Extraction is best-effort: anything the
// heuristics miss comes back as an empty field, never an error.
func ExtractContact(lines []string) types.ContactInfo {
	header := lines
	if len(header) > headerLineCount {
		header = header[:headerLineCount]
	}

	email := ""
	for _, line := range header {
		if emailPattern.MatchString(line) {
			email = line
			break
		}
	}

	phone := ""
	for _, line := range header {
		if match := phonePattern.FindString(line); match != "" {
			phone = match
			break
		}
	}

	links := make([]string, 0)
	seen := make(map[string]bool)
	for _, line := range header {
		for _, match := range urlPattern.FindAllString(line, -1) {
			if !seen[match] {
				seen[match] = true
				links = append(links, match)
			}
		}
	}

	return types.ContactInfo{
		Name:     inferName(header),
		Email:    email,
		Phone:    phone,
		Location: inferLocation(header),
		Links:    links,
	}
}

// inferName takes the literal first line as the name, with any URLs
// stripped, unless that line itself looks like an email or phone line.
func inferName(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]
	if first == "" || emailPattern.MatchString(first) || phonePattern.MatchString(first) {
		return ""
	}
	return strings.TrimSpace(urlPattern.ReplaceAllString(first, ""))
}

// inferLocation returns the first header line shaped like "City, ST 12345"
// (comma and zip optional) that is not an email or phone line.
func inferLocation(lines []string) string {
	for _, line := range lines {
		if locationPattern.MatchString(line) &&
			!emailPattern.MatchString(line) &&
			!phonePattern.MatchString(line) {
			return line
		}
	}
	return ""
}
