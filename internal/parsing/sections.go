package parsing

import "strings"

// headingKeywords is the vocabulary of section headings the splitter
// recognizes. A line must equal one of these (ignoring case and any ':' or
// '.' characters) to start a new section.
var headingKeywords = []string{
	"summary",
	"objective",
	"profile",
	"skills",
	"technical skills",
	"experience",
	"professional experience",
	"work experience",
	"projects",
	"education",
	"certifications",
	"awards",
}

var headingPunctuation = strings.NewReplacer(":", "", ".", "")

// SplitIntoSections walks lines left to right, grouping each line under the
// most recently seen heading. Lines before any heading land under "header".
// Heading lines themselves do not appear in any section body. Single pass,
// no backtracking.
func SplitIntoSections(lines []string) map[string][]string {
	sections := map[string][]string{"header": {}}
	currentKey := "header"

	for _, line := range lines {
		if key, ok := detectHeading(line); ok {
			currentKey = key
			if _, exists := sections[currentKey]; !exists {
				sections[currentKey] = []string{}
			}
			continue
		}
		sections[currentKey] = append(sections[currentKey], line)
	}

	return sections
}

// detectHeading reports whether a line is a section heading and returns the
// normalized section key (spaces removed, so "technical skills" becomes
// "technicalskills").
func detectHeading(line string) (string, bool) {
	lower := headingPunctuation.Replace(strings.ToLower(strings.TrimSpace(line)))
	for _, keyword := range headingKeywords {
		if lower == keyword {
			return strings.ReplaceAll(keyword, " ", ""), true
		}
	}
	return "", false
}
