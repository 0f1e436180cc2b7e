// Package types provides type definitions for structured data used throughout the ats-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// LineFeedback holds remediation feedback for a single resume line.
// LineNumber is 1-based over kept (non-blank) lines.
type LineFeedback struct {
	LineNumber        int      `json:"lineNumber"`
	Section           string   `json:"section"`
	Text              string   `json:"text"`
	Issues            []string `json:"issues"`
	SuggestedKeywords []string `json:"suggestedKeywords"`
	SuggestedRewrite  string   `json:"suggestedRewrite,omitempty"`
}

// SectionBreakdown describes one detected resume section and its feedback.
// StartLine and EndLine are 1-based and inclusive.
type SectionBreakdown struct {
	Name            string         `json:"name"`
	StartLine       int            `json:"startLine"`
	EndLine         int            `json:"endLine"`
	MatchedKeywords []string       `json:"matchedKeywords"`
	MissingKeywords []string       `json:"missingKeywords"`
	Issues          []string       `json:"issues"`
	Lines           []LineFeedback `json:"lines"`
}

// SuggestedAdditions holds template content synthesized from missing keywords.
type SuggestedAdditions struct {
	Summary           []string `json:"summary"`
	ExperienceBullets []string `json:"experienceBullets"`
	Skills            []string `json:"skills"`
}

// ScanResult is the root output of a resume scan.
type ScanResult struct {
	Score              int                `json:"score"`
	MatchedKeywords    []string           `json:"matchedKeywords"`
	MissingKeywords    []string           `json:"missingKeywords"`
	Tips               []string           `json:"tips"`
	Sections           []SectionBreakdown `json:"sections"`
	ResumeKeywords     []string           `json:"resumeKeywords"`
	JobKeywords        []string           `json:"jobKeywords"`
	CorrectedResume    string             `json:"correctedResume"`
	SuggestedAdditions SuggestedAdditions `json:"suggestedAdditions"`
}

// ScanRequest represents the JSON request body for a text-based scan.
type ScanRequest struct {
	ResumeText     string `json:"resumeText" validate:"required,min=1"`
	JobDescription string `json:"jobDescription" validate:"required,min=1"`
}

// Validate validates the ScanRequest using the validator.
func (r *ScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
