package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-match/internal/types"
)

func TestComputeOverlap_EmptySidesScoreZero(t *testing.T) {
	assert.Zero(t, computeOverlap(nil, []string{"go"}))
	assert.Zero(t, computeOverlap([]string{"go"}, nil))
	assert.Zero(t, computeOverlap(nil, nil))
}

func TestComputeOverlap_IdenticalTokens(t *testing.T) {
	tokens := []string{"distributed", "systems", "golang"}

	assert.InDelta(t, 1.0, computeOverlap(tokens, tokens), 1e-9)
}

func TestComputeOverlap_NormalizedByLargerSide(t *testing.T) {
	a := []string{"go", "kubernetes"}
	b := []string{"go", "kubernetes", "terraform", "aws"}

	// 2 shared tokens over the larger side's 4.
	assert.InDelta(t, 0.5, computeOverlap(a, b), 1e-9)
}

func TestComputeOverlap_DisjointTokens(t *testing.T) {
	assert.Zero(t, computeOverlap([]string{"go"}, []string{"java"}))
}

func TestComputeMatchScore_NothingToScore(t *testing.T) {
	assert.Zero(t, computeMatchScore(nil, nil, 5))
}

func TestComputeMatchScore_WeightedCombination(t *testing.T) {
	ranked := []types.RankedBullet{
		{Text: "a", Score: 0.5},
		{Text: "b", Score: 0.5},
	}
	skillMatches := []string{"go"}

	// 0.7*0.5 + 0.3*0.5 = 0.5 of 100.
	assert.Equal(t, 50, computeMatchScore(ranked, skillMatches, 2))
}

func TestComputeMatchScore_SkillsOnly(t *testing.T) {
	// 0.3 * (3/3) of 100, rounded.
	assert.Equal(t, 30, computeMatchScore(nil, []string{"go", "sql", "aws"}, 3))
}

func TestComputeMatchScore_CappedAtHundred(t *testing.T) {
	ranked := []types.RankedBullet{{Text: "a", Score: 1.0}}

	assert.Equal(t, 100, computeMatchScore(ranked, []string{"go"}, 1))
}
