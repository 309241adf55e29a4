package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match/internal/types"
)

func testResume() types.ResumeJSON {
	return types.ResumeJSON{
		Skills: []string{"Python", "Docker", "go"},
		Experience: []types.ExperienceEntry{
			{
				Company: "Acme Corp",
				Title:   "Senior Engineer",
				Bullets: []string{
					"Built Python services on Kubernetes",
					"Wrote internal style guides",
				},
			},
		},
	}
}

func TestMatchJobDescription_EmptyJobDescription(t *testing.T) {
	result := MatchJobDescription("", testResume())

	assert.Empty(t, result.RankedBullets)
	assert.Empty(t, result.SkillMatches)
	assert.Zero(t, result.MatchScore)
}

func TestMatchJobDescription_EmptyResume(t *testing.T) {
	result := MatchJobDescription("We need Python engineers", types.ResumeJSON{})

	assert.Empty(t, result.RankedBullets)
	assert.Empty(t, result.SkillMatches)
	assert.Zero(t, result.MatchScore)
}

func TestMatchJobDescription_SkillCasingPreserved(t *testing.T) {
	result := MatchJobDescription("We need python and kubernetes experience", testResume())

	assert.Equal(t, []string{"Python"}, result.SkillMatches)
}

func TestMatchJobDescription_RanksRelevantBulletsFirst(t *testing.T) {
	result := MatchJobDescription("Looking for python and kubernetes services work", testResume())

	require.NotEmpty(t, result.RankedBullets)
	assert.Equal(t, "Built Python services on Kubernetes", result.RankedBullets[0].Text)
	assert.Equal(t, "experience", result.RankedBullets[0].Source.Section)
	assert.Equal(t, "Acme Corp", result.RankedBullets[0].Source.Company)
	assert.Equal(t, "Senior Engineer", result.RankedBullets[0].Source.Title)
}

func TestMatchJobDescription_ZeroScoreBulletsFiltered(t *testing.T) {
	result := MatchJobDescription("python kubernetes", testResume())

	for _, bullet := range result.RankedBullets {
		assert.Greater(t, bullet.Score, 0.0)
		assert.NotEqual(t, "Wrote internal style guides", bullet.Text)
	}
}

func TestMatchJobDescription_CapsRankedBullets(t *testing.T) {
	bullets := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		bullets = append(bullets, fmt.Sprintf("Shipped python feature %02d", i))
	}
	resume := types.ResumeJSON{
		Experience: []types.ExperienceEntry{{Company: "Acme", Bullets: bullets}},
	}

	result := MatchJobDescription("python", resume)

	assert.Len(t, result.RankedBullets, types.MaxRankedBullets)
}

func TestMatchJobDescription_ScoresDescend(t *testing.T) {
	result := MatchJobDescription("Looking for python services and style guides", testResume())

	for i := 1; i < len(result.RankedBullets); i++ {
		assert.GreaterOrEqual(t, result.RankedBullets[i-1].Score, result.RankedBullets[i].Score)
	}
}

func TestMatchJobDescription_ScoreReflectsSkillCoverage(t *testing.T) {
	resume := types.ResumeJSON{Skills: []string{"python", "docker"}}

	result := MatchJobDescription("We need python experience", resume)

	// No bullets, half the skills matched: 0.3 * 0.5 of 100.
	assert.Equal(t, []string{"python"}, result.SkillMatches)
	assert.Equal(t, 15, result.MatchScore)
}
