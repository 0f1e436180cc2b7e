package ats

import (
	"regexp"
	"strings"

	"github.com/eliteskills/ats-engine/internal/types"
)

// Bullet-candidate bounds and suggestion caps.
const (
	minBulletLen        = 10
	maxBulletLen        = 180
	rewriteTruncateLen  = 170
	maxSkillsSuggested  = 6
	maxDefaultSuggested = 3
	minUsefulLineLen    = 3
)

var (
	bulletPrefixPattern = regexp.MustCompile(`^(?:[-*•]\s+|\d+[.)]\s+)`)
	actionVerbPattern   = regexp.MustCompile(`(?i)^(worked|managed|coordinated|delivered|supported|developed|built|led|created|implemented|maintained|handled|owned|improved)\b`)
	metricPattern       = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\b`)
	weakPhrasePattern   = regexp.MustCompile(`(?i)\bresponsible for\b|\bworked on\b|\bhelped\b`)
)

// weakPhraseRewrites are applied to the rewrite body in order; each pattern
// replaces only its first occurrence.
var weakPhraseRewrites = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bresponsible for\b\s*`), "Managed "},
	{regexp.MustCompile(`(?i)\bworked on\b\s*`), "Delivered "},
	{regexp.MustCompile(`(?i)\bwork on\b\s*`), "Deliver "},
	{regexp.MustCompile(`(?i)\bhelped\b\s*`), "Improved "},
	{regexp.MustCompile(`(?i)\bassist(?:ed)?\b\s*`), "Supported "},
}

func isBulletLine(line string) bool {
	return bulletPrefixPattern.MatchString(line)
}

// looksLikeBulletCandidate reports whether a line is likely intended as an
// achievement bullet: Experience/Projects only, reasonable length, and
// either already bullet-formatted or starting with an action verb.
func looksLikeBulletCandidate(section, line string) bool {
	if section != sectionExperience && section != sectionProjects {
		return false
	}
	t := normalizeLine(line)
	if len(t) < minBulletLen || len(t) > maxBulletLen {
		return false
	}
	if isBulletLine(t) {
		return true
	}
	return actionVerbPattern.MatchString(t)
}

func hasMetric(line string) bool {
	return metricPattern.MatchString(line) || strings.Contains(line, "%")
}

// shouldSuggestKeywordsForSection gates per-line keyword suggestions to the
// sections where inserting job keywords makes sense.
func shouldSuggestKeywordsForSection(section string) bool {
	return section == sectionExperience || section == sectionProjects
}

// pickSuggestedKeywords selects missing keywords worth inserting into a
// line: not already present, routed by category (tools to Skills, domain
// terms to Experience/Projects), capped per section.
func pickSuggestedKeywords(section string, missing []string, normalizedLine string) []string {
	var pool []string
	for _, k := range missing {
		if strings.Contains(normalizedLine, k) {
			continue
		}
		switch section {
		case sectionSkills:
			if !isToolKeyword(k) {
				continue
			}
		case sectionExperience, sectionProjects:
			if isToolKeyword(k) {
				continue
			}
		}
		pool = append(pool, k)
	}

	max := maxDefaultSuggested
	if section == sectionSkills {
		max = maxSkillsSuggested
	}
	if len(pool) > max {
		pool = pool[:max]
	}
	return pool
}

// replaceFirst replaces only the first match of pattern in s.
func replaceFirst(s string, pattern *regexp.Regexp, replacement string) string {
	loc := pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}

// suggestRewrite produces a cleaned-up version of a line: bullet prefix
// preserved or synthesized, weak phrases replaced with action verbs, a
// metric placeholder appended when the metric issue fired, top suggested
// keywords appended, and overlong bodies truncated. Returns "" when the
// rewrite would be identical to the original.
func suggestRewrite(originalLine, section string, issues, suggestedKeywords []string, treatAsBullet bool) string {
	trimmed := strings.TrimSpace(originalLine)
	prefix := bulletPrefixPattern.FindString(trimmed)
	hasBullet := prefix != ""
	body := trimmed
	if hasBullet {
		body = strings.TrimSpace(trimmed[len(prefix):])
	} else if treatAsBullet {
		prefix = "- "
	}

	for _, sub := range weakPhraseRewrites {
		body = replaceFirst(body, sub.pattern, sub.replacement)
	}

	if issueMentions(issues, "metric") && !hasMetric(originalLine) {
		body += " (Impact: [add metric like 20% / 5+ / $10K])"
	}

	if len(suggestedKeywords) > 0 && (section == sectionExperience || section == sectionProjects) && (hasBullet || treatAsBullet) {
		top := suggestedKeywords
		if len(top) > 3 {
			top = top[:3]
		}
		if !strings.Contains(strings.ToLower(body), strings.ToLower(suggestedKeywords[0])) {
			body += " (Keywords: " + strings.Join(top, ", ") + ")"
		}
	}

	if issueMentions(issues, "long") && len(body) > rewriteTruncateLen {
		body = strings.TrimRight(body[:rewriteTruncateLen], " ") + "…"
	}

	rewritten := strings.TrimSpace(prefix + body)
	if rewritten == "" || rewritten == trimmed {
		return ""
	}
	return rewritten
}

func issueMentions(issues []string, word string) bool {
	for _, i := range issues {
		if strings.Contains(strings.ToLower(i), word) {
			return true
		}
	}
	return false
}

// buildLineFeedback assembles feedback for one non-heading line. Lines
// shorter than three characters after normalization are dropped.
func buildLineFeedback(lineNumber int, section, line string, missing []string) *types.LineFeedback {
	if len(line) < minUsefulLineLen {
		return nil
	}

	var issues []string
	if len(line) > maxBulletLen {
		issues = append(issues, "This line is long; split it into shorter bullets for ATS readability.")
	}
	if weakPhrasePattern.MatchString(line) {
		issues = append(issues, "Use stronger action verbs and focus on outcomes (what changed because of your work).")
	}

	bulletCandidate := looksLikeBulletCandidate(section, line)
	inBulletSection := section == sectionExperience || section == sectionProjects
	if inBulletSection && bulletCandidate && !isBulletLine(line) {
		issues = append(issues, "Convert this into a bullet point for ATS readability.")
	}
	if inBulletSection && bulletCandidate && !hasMetric(line) {
		issues = append(issues, "Add a metric (%, $, time, scale) to quantify impact for this bullet.")
	}

	var suggestedKeywords []string
	if len(missing) > 0 && shouldSuggestKeywordsForSection(section) && bulletCandidate {
		suggestedKeywords = pickSuggestedKeywords(section, missing, normalizeText(line))
	}

	rewrite := ""
	if len(issues) > 0 || len(suggestedKeywords) > 0 {
		rewrite = suggestRewrite(line, section, issues, suggestedKeywords, bulletCandidate)
	}

	return &types.LineFeedback{
		LineNumber:        lineNumber,
		Section:           section,
		Text:              line,
		Issues:            issues,
		SuggestedKeywords: suggestedKeywords,
		SuggestedRewrite:  rewrite,
	}
}

// annotateSections computes per-section matched/missing keywords (restricted
// to the section-relevant subset) and section-level issues.
func annotateSections(sections []types.SectionBreakdown, keywords []string) {
	for i := range sections {
		s := &sections[i]

		var texts []string
		for _, l := range s.Lines {
			texts = append(texts, l.Text)
		}
		sectionText := normalizeText(strings.Join(texts, " "))

		relevant := relevantKeywordsForSection(s.Name, keywords)
		s.MatchedKeywords = nil
		s.MissingKeywords = nil
		for _, k := range relevant {
			if strings.Contains(sectionText, k) {
				s.MatchedKeywords = append(s.MatchedKeywords, k)
			} else if len(s.MissingKeywords) < maxSectionMissing {
				s.MissingKeywords = append(s.MissingKeywords, k)
			}
		}

		var issues []string
		switch s.Name {
		case sectionExperience, sectionProjects:
			hasAnyBullets := false
			hasAnyMetrics := false
			for _, l := range s.Lines {
				if isBulletLine(l.Text) {
					hasAnyBullets = true
				}
				if hasMetric(l.Text) {
					hasAnyMetrics = true
				}
			}
			if !hasAnyBullets {
				issues = append(issues, "Add bullet points (2–5) with responsibilities + outcomes for ATS readability.")
			}
			if !hasAnyMetrics {
				issues = append(issues, "Add metrics to at least 1–2 bullets (%, $, time saved, scale).")
			}
			if len(s.MatchedKeywords) == 0 && len(s.MissingKeywords) > 0 {
				issues = append(issues, "This section does not mention job-relevant keywords; tailor it to the target role (only if accurate).")
			}
		case sectionSkills:
			if len(s.MissingKeywords) > 0 {
				issues = append(issues, "If you have these tools/platforms, add them to Skills for ATS matching.")
			}
		case sectionSummary:
			if len(s.MissingKeywords) > 0 {
				issues = append(issues, "Tailor Summary to the target role domain (operations) and mention 2–4 relevant keywords naturally.")
			}
		}
		s.Issues = issues
	}
}
