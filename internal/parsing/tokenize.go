package parsing

import (
	"regexp"
	"strings"
)

var nonTokenChars = regexp.MustCompile(`[^a-z0-9+.# ]`)

// Tokenize lowercases text and splits it into word-like tokens. The +, .
// and # characters are kept so terms like "c++", "node.js" and "c#" survive
// as single tokens. Tokens of length 1 or less are dropped.
func Tokenize(text string) []string {
	cleaned := nonTokenChars.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)

	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		if len(token) > 1 {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
