package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
}

func TestTokenize_PreservesTechTokens(t *testing.T) {
	tokens := Tokenize("C++ is great, c#!")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "is")
	assert.Contains(t, tokens, "great")
}

func TestTokenize_KeepsDottedNames(t *testing.T) {
	tokens := Tokenize("Experience with Node.js and Vue.js")

	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, "vue.js")
}

func TestTokenize_DropsSingleCharTokens(t *testing.T) {
	tokens := Tokenize("a b go c")

	assert.Equal(t, []string{"go"}, tokens)
}

func TestTokenize_Lowercases(t *testing.T) {
	tokens := Tokenize("KUBERNETES Docker")

	assert.Equal(t, []string{"kubernetes", "docker"}, tokens)
}

func TestTokenize_PunctuationBecomesSeparator(t *testing.T) {
	tokens := Tokenize("backend/frontend, cloud-native")

	assert.Equal(t, []string{"backend", "frontend", "cloud", "native"}, tokens)
}

func TestTokenize_Deterministic(t *testing.T) {
	input := "Go, Python; Rust!"
	assert.Equal(t, Tokenize(input), Tokenize(input))
}
