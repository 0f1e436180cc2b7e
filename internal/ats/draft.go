package ats

import (
	"regexp"
	"strings"

	"github.com/eliteskills/ats-engine/internal/types"
)

var (
	linkedInPattern         = regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/[^\s]+`)
	linkedInTrailingPattern = regexp.MustCompile(`[).,]+$`)
	bareURLPattern          = regexp.MustCompile(`(?i)^https?://`)
	bulletMarkerPattern     = regexp.MustCompile(`^[-*•]\s+`)
	interestClutterPattern  = regexp.MustCompile(`^[-*•\[]+\s*`)
	trailingBracketPattern  = regexp.MustCompile(`\]$`)
	excessNewlinesPattern   = regexp.MustCompile(`\n{3,}`)
	multiDotPattern         = regexp.MustCompile(`\.{2,}`)

	wannaPattern         = regexp.MustCompile(`(?i)\bwanna\b`)
	lotsOfPattern        = regexp.MustCompile(`(?i)\blots of\b`)
	yourOrganisationRe   = regexp.MustCompile(`(?i)\byour organisation\b`)
	organisationSpelling = regexp.MustCompile(`(?i)\borganisation\b`)
)

// maxLocationFragments caps the General-section lines used in the contact line.
const maxLocationFragments = 2

// extractLinkedIn pulls the first LinkedIn profile URL out of the raw text,
// with trailing punctuation stripped.
func extractLinkedIn(raw string) string {
	m := linkedInPattern.FindString(raw)
	if m == "" {
		return ""
	}
	return linkedInTrailingPattern.ReplaceAllString(m, "")
}

// cleanSummaryText tidies informal summary phrasing for the draft.
func cleanSummaryText(s string) string {
	t := normalizeLine(s)
	t = wannaPattern.ReplaceAllString(t, "want to")
	t = lotsOfPattern.ReplaceAllString(t, "more")
	t = yourOrganisationRe.ReplaceAllString(t, "your organization")
	t = organisationSpelling.ReplaceAllString(t, "organization")
	return multiDotPattern.ReplaceAllString(t, ".")
}

// bulletizeLine formats a line for the Experience/Projects blocks of the
// draft: existing bullets pass through, bullet candidates gain a "- "
// prefix, everything else is left alone.
func bulletizeLine(section, line string) string {
	t := normalizeLine(line)
	if t == "" {
		return ""
	}
	if isBulletLine(t) {
		return t
	}
	if looksLikeBulletCandidate(section, t) {
		return "- " + t
	}
	return t
}

func findSection(sections []types.SectionBreakdown, name string) *types.SectionBreakdown {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

// draftLineText prefers the suggested rewrite over the original line.
func draftLineText(l types.LineFeedback) string {
	if l.SuggestedRewrite != "" {
		return l.SuggestedRewrite
	}
	return l.Text
}

// buildImprovedResumeDraft reassembles a cleaned, canonicalized resume from
// the segmented sections: header/contact block, then Summary, Education,
// Skills, Experience, Projects, and Interests in fixed order. Rewritten
// lines are used where available.
func buildImprovedResumeDraft(sections []types.SectionBreakdown, resumeRaw string) string {
	general := findSection(sections, sectionGeneral)
	summary := findSection(sections, sectionSummary)
	education := findSection(sections, sectionEducation)
	skills := findSection(sections, sectionSkills)
	interests := findSection(sections, sectionInterests)
	experience := findSection(sections, sectionExperience)
	projects := findSection(sections, sectionProjects)

	email := emailPattern.FindString(resumeRaw)
	phone := phonePattern.FindString(resumeRaw)
	linkedIn := extractLinkedIn(resumeRaw)

	var generalLines []string
	if general != nil {
		for _, l := range general.Lines {
			if t := normalizeLine(draftLineText(l)); t != "" {
				generalLines = append(generalLines, t)
			}
		}
	}

	name := ""
	if len(generalLines) > 0 {
		name = generalLines[0]
	}

	var locationParts []string
	for _, l := range generalLines[min(1, len(generalLines)):] {
		if len(locationParts) >= maxLocationFragments {
			break
		}
		if email != "" && strings.Contains(l, email) {
			continue
		}
		if phone != "" && strings.Contains(l, phone) {
			continue
		}
		if bareURLPattern.MatchString(l) {
			continue
		}
		locationParts = append(locationParts, l)
	}

	var contactParts []string
	if loc := strings.TrimSpace(strings.Join(locationParts, ", ")); loc != "" {
		contactParts = append(contactParts, loc)
	}
	for _, p := range []string{email, phone, linkedIn} {
		if p != "" {
			contactParts = append(contactParts, p)
		}
	}

	var out []string
	if name != "" {
		out = append(out, name)
	}
	if len(contactParts) > 0 {
		out = append(out, strings.Join(contactParts, " | "))
	}

	if summary != nil {
		var parts []string
		for _, l := range summary.Lines {
			parts = append(parts, cleanSummaryText(draftLineText(l)))
		}
		if compact := normalizeLine(strings.Join(parts, " ")); compact != "" {
			out = append(out, "", "Summary", compact)
		}
	}

	if education != nil {
		var eduLines []string
		for _, l := range education.Lines {
			if t := normalizeLine(draftLineText(l)); t != "" {
				eduLines = append(eduLines, "- "+t)
			}
		}
		if len(eduLines) > 0 {
			out = append(out, "", "Education")
			out = append(out, eduLines...)
		}
	}

	if skills != nil {
		var skillLines []string
		for _, l := range skills.Lines {
			if t := normalizeLine(draftLineText(l)); t != "" {
				skillLines = append(skillLines, "- "+bulletMarkerPattern.ReplaceAllString(t, ""))
			}
		}
		if len(skillLines) > 0 {
			out = append(out, "", "Skills")
			out = append(out, skillLines...)
		}
	}

	for _, block := range []struct {
		section *types.SectionBreakdown
		name    string
	}{
		{experience, sectionExperience},
		{projects, sectionProjects},
	} {
		if block.section == nil {
			continue
		}
		var lines []string
		for _, l := range block.section.Lines {
			if t := bulletizeLine(block.name, draftLineText(l)); t != "" {
				lines = append(lines, t)
			}
		}
		if len(lines) > 0 {
			out = append(out, "", block.name)
			out = append(out, lines...)
		}
	}

	if interests != nil {
		var cleaned []string
		for _, l := range interests.Lines {
			t := normalizeLine(draftLineText(l))
			t = interestClutterPattern.ReplaceAllString(t, "")
			t = trailingBracketPattern.ReplaceAllString(t, "")
			if t != "" {
				cleaned = append(cleaned, "- "+t)
			}
		}
		if len(cleaned) > 0 {
			out = append(out, "", "Interests")
			out = append(out, cleaned...)
		}
	}

	joined := excessNewlinesPattern.ReplaceAllString(strings.Join(out, "\n"), "\n\n")
	return strings.TrimSpace(joined)
}
