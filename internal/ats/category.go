package ats

import (
	"regexp"
	"strings"
)

// Category classifies a keyword for relevance routing. Tool classification
// wins: a keyword matching both vocabularies is a tool.
type Category int

// Keyword categories.
const (
	CategoryGeneral Category = iota
	CategoryTool
	CategoryOps
)

// toolTerms is the tool/platform vocabulary. A single-word keyword is a tool
// when it appears here; a multi-word keyword is a tool when any component
// does. Anything containing "crm" also counts.
var toolTerms = map[string]bool{
	"excel": true, "sheet": true, "sheets": true, "google": true,
	"crm": true, "reporting": true, "tools": true, "tool": true,
	"dashboard": true, "dashboards": true, "sql": true, "tableau": true,
	"power": true, "bi": true, "jira": true, "salesforce": true,
	"hubspot": true, "zendesk": true, "sap": true,
}

// opsTermsPattern covers the operations-domain vocabulary. Substring match,
// so "bookings" and "booking management" both hit "booking".
var opsTermsPattern = regexp.MustCompile(`(operations?|booking|bookings|travel|supplier|suppliers|customer|support|service|coordination|vouchers|confirmations|tours|activities|sightseeing|ota|vendor|delivery|pricing|maintain|issues|end-to-end)`)

var otaWordPattern = regexp.MustCompile(`\bota\b`)

// isToolKeyword reports whether a keyword is classified as a tool/platform.
func isToolKeyword(k string) bool {
	if strings.Contains(k, "crm") {
		return true
	}
	if toolTerms[k] {
		return true
	}
	if strings.Contains(k, " ") {
		for _, part := range strings.Split(k, " ") {
			if toolTerms[part] {
				return true
			}
		}
	}
	return false
}

// isOpsKeyword reports whether a keyword belongs to the operations domain.
func isOpsKeyword(k string) bool {
	return opsTermsPattern.MatchString(k)
}

// Classify returns the category for a keyword.
func Classify(k string) Category {
	switch {
	case isToolKeyword(k):
		return CategoryTool
	case isOpsKeyword(k):
		return CategoryOps
	}
	return CategoryGeneral
}

// relevantKeywordsForSection restricts the global keyword list to the subset
// worth surfacing in a section. Education, Languages, and General never get
// keyword suggestions. Skills gets tools plus whole-word "ota" keywords;
// Summary gets domain keywords plus up to four tools; Experience and
// Projects get domain keywords with tools excluded outright.
func relevantKeywordsForSection(section string, allKeywords []string) []string {
	switch section {
	case sectionEducation, sectionLanguages, sectionGeneral:
		return nil

	case sectionSkills:
		var out []string
		for _, k := range allKeywords {
			if isToolKeyword(k) {
				out = append(out, k)
			}
		}
		for _, k := range allKeywords {
			if otaWordPattern.MatchString(k) {
				out = append(out, k)
			}
		}
		return out

	case sectionSummary:
		var out []string
		for _, k := range allKeywords {
			if isOpsKeyword(k) || strings.Contains(k, "associate") {
				out = append(out, k)
			}
		}
		tools := 0
		for _, k := range allKeywords {
			if tools >= 4 {
				break
			}
			if isToolKeyword(k) {
				out = append(out, k)
				tools++
			}
		}
		return out
	}

	// Experience / Projects
	var out []string
	for _, k := range allKeywords {
		if isToolKeyword(k) {
			continue
		}
		if isOpsKeyword(k) || strings.Contains(k, "associate") {
			out = append(out, k)
		}
	}
	return out
}
