package matching

import (
	"math"

	"github.com/jonathan/resume-match/internal/types"
)

// Weights for combining bullet relevance and skill coverage into the
// overall match score.
const (
	bulletWeight = 0.7
	skillWeight  = 0.3
)

// computeOverlap counts tokens of b present in a, normalized by the larger
// token count. Scores fall in [0, 1]; either side empty scores 0.
func computeOverlap(tokensA, tokensB []string) float64 {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(tokensA))
	for _, token := range tokensA {
		setA[token] = true
	}

	overlap := 0
	for _, token := range tokensB {
		if setA[token] {
			overlap++
		}
	}

	return float64(overlap) / float64(max(len(tokensA), len(tokensB)))
}

// computeMatchScore folds the ranked bullets' mean score and the fraction of
// resume skills matched into a single 0-100 integer. Returns 0 when there is
// nothing to score at all.
func computeMatchScore(ranked []types.RankedBullet, skillMatches []string, totalSkills int) int {
	if len(ranked) == 0 && len(skillMatches) == 0 {
		return 0
	}

	bulletSum := 0.0
	for _, bullet := range ranked {
		bulletSum += bullet.Score
	}
	avgBullet := bulletSum / float64(max(len(ranked), 1))
	coverage := float64(len(skillMatches)) / float64(max(totalSkills, 1))

	combined := (bulletWeight*avgBullet + skillWeight*coverage) * 100
	return int(math.Min(100, math.Round(combined)))
}
