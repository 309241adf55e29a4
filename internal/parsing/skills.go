package parsing

import (
	"regexp"
	"strings"
)

var (
	skillSeparator = regexp.MustCompile(`[,;\n]`)
	skillNoise     = regexp.MustCompile(`[^a-z0-9.+# ]`)
)

// ExtractSkills flattens the skills section into lowercase skill tokens.
// Lines are joined and split on commas, semicolons and newlines; tokens of
// length 1 or less are dropped before noise characters are stripped.
func ExtractSkills(lines []string) []string {
	skills := make([]string, 0)
	if len(lines) == 0 {
		return skills
	}

	for _, part := range skillSeparator.Split(strings.Join(lines, " "), -1) {
		token := strings.ToLower(strings.TrimSpace(part))
		if len(token) <= 1 {
			continue
		}
		token = skillNoise.ReplaceAllString(token, "")
		if token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}
