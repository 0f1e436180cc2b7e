package ats

import (
	"regexp"
	"strings"

	"github.com/eliteskills/ats-engine/internal/types"
)

// Canonical section names. The segmenter assigns every kept line to exactly
// one of these; General is the implicit section before the first heading.
const (
	sectionGeneral        = "General"
	sectionSummary        = "Summary"
	sectionSkills         = "Skills"
	sectionExperience     = "Experience"
	sectionProjects       = "Projects"
	sectionEducation      = "Education"
	sectionCertifications = "Certifications"
	sectionLanguages      = "Languages"
	sectionAchievements   = "Achievements"
	sectionInterests      = "Interests"
)

var (
	leadingBulletPattern  = regexp.MustCompile(`^\s*(?:[-*•]+\s*)?`)
	leadingSymbolPattern  = regexp.MustCompile(`^[#*_\[\]()]+`)
	trailingSymbolPattern = regexp.MustCompile(`[#*_\[\]()]+$`)
	trailingColonPattern  = regexp.MustCompile(`:+$`)
	// ASCII-only by design; Unicode headings fall through to the known
	// phrase list and trailing-colon rules.
	allCapsHeadingPattern = regexp.MustCompile(`^[A-Z][A-Z\s&/.-]{2,}$`)
	digitPattern          = regexp.MustCompile(`[0-9]`)
)

// knownHeadings are the lowercased heading phrases recognized exactly or as
// a "phrase " / "phrase:" prefix.
var knownHeadings = []string{
	"summary", "profile", "objective",
	"skills", "technical skills", "tools", "technologies", "technology",
	"experience", "work experience", "professional experience", "employment",
	"projects", "project",
	"education",
	"certifications", "certification",
	"achievements",
	"languages", "language",
	"hobbies", "hobbies and interests", "interests",
	"contact", "personal details",
}

// canonicalSectionName maps a heading candidate to its canonical section,
// or "" when no rule matches. Rule order matters: the first matching
// substring wins.
func canonicalSectionName(s string) string {
	t := normalizeText(s)
	switch {
	case strings.Contains(t, "work experience"):
		return sectionExperience
	case strings.Contains(t, "experience"):
		return sectionExperience
	case strings.Contains(t, "professional experience"):
		return sectionExperience
	case strings.Contains(t, "employment"):
		return sectionExperience
	case strings.Contains(t, "projects"):
		return sectionProjects
	case strings.Contains(t, "project"):
		return sectionProjects
	case strings.Contains(t, "skills"):
		return sectionSkills
	case strings.Contains(t, "tools"):
		return sectionSkills
	case strings.Contains(t, "technologies"):
		return sectionSkills
	case strings.Contains(t, "technology"):
		return sectionSkills
	case strings.Contains(t, "education"):
		return sectionEducation
	case strings.Contains(t, "certifications"), strings.Contains(t, "certification"):
		return sectionCertifications
	case strings.Contains(t, "summary"), strings.Contains(t, "profile"):
		return sectionSummary
	case strings.Contains(t, "objective"):
		return sectionSummary
	case strings.Contains(t, "languages"), t == "language":
		return sectionLanguages
	case strings.Contains(t, "contact"), strings.Contains(t, "personal details"):
		return sectionGeneral
	case strings.Contains(t, "achievements"):
		return sectionAchievements
	case strings.Contains(t, "hobbies"), strings.Contains(t, "interests"):
		return sectionInterests
	}
	return ""
}

// detectSectionHeading reports the canonical section name a line opens, or
// "" when the line is not a heading. A candidate is heading-shaped when it
// is at most 40 characters and either matches a known phrase, looks like an
// all-caps label without digits, or the original line ends with a colon.
// Heading-shaped lines that map to no canonical section are not headings.
func detectSectionHeading(line string) string {
	l := normalizeLine(line)
	candidate := leadingBulletPattern.ReplaceAllString(l, "")
	candidate = leadingSymbolPattern.ReplaceAllString(candidate, "")
	candidate = trailingSymbolPattern.ReplaceAllString(candidate, "")
	candidate = trailingColonPattern.ReplaceAllString(candidate, "")
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}

	lower := strings.ToLower(candidate)
	isKnown := false
	for _, k := range knownHeadings {
		if lower == k || strings.HasPrefix(lower, k+" ") || strings.HasPrefix(lower, k+":") {
			isKnown = true
			break
		}
	}

	looksLikeHeading := len(candidate) <= 40 &&
		(isKnown ||
			(allCapsHeadingPattern.MatchString(candidate) && !digitPattern.MatchString(candidate)) ||
			strings.HasSuffix(l, ":"))
	if !looksLikeHeading {
		return ""
	}

	return canonicalSectionName(candidate)
}

// segmentSections runs the forward scanning pass: every line either opens a
// new section (heading) or accrues line feedback in the current one. The
// implicit General section is emitted only if it accumulated lines.
// Sections partition the kept lines with no gaps or overlaps.
func segmentSections(rawLines []string, missing []string) []types.SectionBreakdown {
	var sections []types.SectionBreakdown

	current := types.SectionBreakdown{Name: sectionGeneral, StartLine: 1, EndLine: 1}
	pushCurrent := func() {
		if len(current.Lines) == 0 && current.Name == sectionGeneral {
			return
		}
		if current.EndLine < current.StartLine {
			current.EndLine = current.StartLine
		}
		sections = append(sections, current)
	}

	for i, line := range rawLines {
		lineNumber := i + 1

		if heading := detectSectionHeading(line); heading != "" {
			current.EndLine = lineNumber - 1
			pushCurrent()
			current = types.SectionBreakdown{Name: heading, StartLine: lineNumber, EndLine: lineNumber}
			continue
		}

		current.EndLine = lineNumber

		if fb := buildLineFeedback(lineNumber, current.Name, line, missing); fb != nil {
			current.Lines = append(current.Lines, *fb)
		}
	}

	pushCurrent()
	return sections
}
