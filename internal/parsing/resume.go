// Package parsing implements the heuristic resume text parser: section
// splitting, contact extraction, experience/education entry extraction and
// tokenization. Every function here is a pure transformation that degrades
// to empty fields on input it cannot make sense of; none of them fail.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/types"
)

// modeledSections are the section keys with dedicated ResumeJSON fields;
// everything else a heading produces lands in Extras.
var modeledSections = map[string]bool{
	"header":     true,
	"summary":    true,
	"skills":     true,
	"experience": true,
	"education":  true,
}

// ParseResumeText converts raw extracted resume text into a structured
// ResumeJSON document. The input is whatever a file-extraction collaborator
// produced; an empty or garbage string yields a document with empty fields.
func ParseResumeText(raw string) types.ResumeJSON {
	lines := ingestion.SplitLines(ingestion.CleanText(raw))
	sections := SplitIntoSections(lines)

	return types.ResumeJSON{
		Contact:    ExtractContact(lines),
		Summary:    strings.Join(sections["summary"], " "),
		Skills:     ExtractSkills(sections["skills"]),
		Experience: ExtractExperience(sections["experience"]),
		Education:  ExtractEducation(sections["education"]),
		Extras:     collectExtras(sections),
	}
}

// collectExtras keeps detected sections with no dedicated model (e.g.
// "certifications", "projects") whose body is non-empty.
func collectExtras(sections map[string][]string) map[string][]string {
	extras := make(map[string][]string)
	for key, body := range sections {
		if modeledSections[key] || len(body) == 0 {
			continue
		}
		extras[key] = body
	}
	return extras
}
