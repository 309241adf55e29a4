// Package types provides type definitions for structured resume and match
// documents used throughout the resume-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds contact details pulled from the header block of a resume.
// Fields the extractor could not detect are empty strings.
type ContactInfo struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Links    []string `json:"links"`
}

// ExperienceEntry represents one position inside the experience section.
// Start and End are raw text tokens, not validated dates.
type ExperienceEntry struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Bullets []string `json:"bullets"`
}

// EducationEntry represents one entry inside the education section.
// Institution and Degree both carry the raw heading line; separating them
// reliably is not possible with the current heuristics.
type EducationEntry struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Year        string   `json:"year"`
	Bullets     []string `json:"bullets"`
}

// ResumeJSON is the structured document produced by a single parse. It is
// constructed fresh on every call and never mutated by the parser; external
// collaborators may merge or overwrite fields under their own policy.
type ResumeJSON struct {
	Contact    ContactInfo         `json:"contact"`
	Summary    string              `json:"summary"`
	Skills     []string            `json:"skills"`
	Experience []ExperienceEntry   `json:"experience"`
	Education  []EducationEntry    `json:"education"`
	Extras     map[string][]string `json:"extras"`
}
