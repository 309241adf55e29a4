// Package matching scores a structured resume against a job description
// using token overlap, producing ranked bullets, matched skills and an
// overall 0-100 match score.
package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-match/internal/parsing"
	"github.com/jonathan/resume-match/internal/types"
)

// bulletPayload pairs a bullet's original text with its token form and
// source descriptor.
type bulletPayload struct {
	original string
	tokens   []string
	source   types.BulletSource
}

// MatchJobDescription computes the full match result for a resume against a
// job description. The result is recomputed from scratch on every call;
// empty inputs degrade to empty slices and a zero score, never an error.
func MatchJobDescription(jobDescription string, resume types.ResumeJSON) types.MatchResult {
	jdTokens := parsing.Tokenize(jobDescription)
	payloads := collectBullets(resume.Experience)
	skillMatches := matchSkills(resume.Skills, jdTokens)

	ranked := make([]types.RankedBullet, 0, len(payloads))
	for _, payload := range payloads {
		score := computeOverlap(payload.tokens, jdTokens)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, types.RankedBullet{
			Text:   payload.original,
			Score:  score,
			Source: payload.source,
		})
	}

	// Stable sort keeps collection order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > types.MaxRankedBullets {
		ranked = ranked[:types.MaxRankedBullets]
	}

	return types.MatchResult{
		RankedBullets: ranked,
		SkillMatches:  skillMatches,
		MatchScore:    computeMatchScore(ranked, skillMatches, len(resume.Skills)),
	}
}

// collectBullets flattens every experience bullet, tagged with its tokens
// and source entry, in source order.
func collectBullets(experience []types.ExperienceEntry) []bulletPayload {
	payloads := make([]bulletPayload, 0)
	for _, entry := range experience {
		for _, bullet := range entry.Bullets {
			payloads = append(payloads, bulletPayload{
				original: bullet,
				tokens:   parsing.Tokenize(bullet),
				source: types.BulletSource{
					Section: "experience",
					Company: entry.Company,
					Title:   entry.Title,
				},
			})
		}
	}
	return payloads
}

// matchSkills returns the resume skills whose lowercase form appears as an
// exact token in the job description. Original casing is preserved.
func matchSkills(resumeSkills []string, jdTokens []string) []string {
	jdSet := make(map[string]bool, len(jdTokens))
	for _, token := range jdTokens {
		jdSet[token] = true
	}

	matches := make([]string, 0)
	for _, skill := range resumeSkills {
		if jdSet[strings.ToLower(skill)] {
			matches = append(matches, skill)
		}
	}
	return matches
}
