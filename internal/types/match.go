package types

// BulletSource describes where a ranked bullet came from.
type BulletSource struct {
	Section string `json:"section"`
	Company string `json:"company,omitempty"`
	Title   string `json:"title,omitempty"`
}

// RankedBullet is a resume bullet scored against a job description.
// Score is a normalized overlap in [0, 1].
type RankedBullet struct {
	Text   string       `json:"text"`
	Score  float64      `json:"score"`
	Source BulletSource `json:"source"`
}

// MatchResult is the outcome of matching a resume against a job description.
// RankedBullets is sorted by score descending (ties keep collection order)
// and holds at most MaxRankedBullets entries, all with score > 0.
type MatchResult struct {
	RankedBullets []RankedBullet `json:"ranked_bullets"`
	SkillMatches  []string       `json:"skill_matches"`
	MatchScore    int            `json:"match_score"`
}

// MaxRankedBullets caps how many bullets a MatchResult carries.
const MaxRankedBullets = 12
