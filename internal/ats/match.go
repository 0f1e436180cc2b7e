package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Score formula weights and thresholds.
const (
	keywordWeight       = 0.8
	structureWeight     = 0.2
	lengthPenalty       = 0.15
	shortResumeChars    = 1200
	tipKeywordPreview   = 12
	maxSectionMissing   = 20
	sectionStructureMax = 3
)

var (
	tableArtifactPattern = regexp.MustCompile(`[|]{3,}`)
	emailPattern         = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phonePattern         = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
)

// matchKeywords splits the job-description keywords into matched and missing
// sets against the resume. Multi-word keywords match by substring on the
// normalized resume text; single words match on the raw token set, the
// stemmed token set, or as a substring fallback (catches keywords embedded
// in larger tokens). Both outputs keep the frequency-ranked order.
func matchKeywords(keywords []string, resumeTokens map[string]bool, resumeStems map[string]bool, resumeNorm string) (matched, missing []string) {
	for _, k := range keywords {
		ok := false
		switch {
		case strings.Contains(k, " "):
			ok = strings.Contains(resumeNorm, k)
		case resumeTokens[k], resumeStems[stemWord(k)]:
			ok = true
		default:
			ok = strings.Contains(resumeNorm, k)
		}
		if ok {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}
	return matched, missing
}

// computeScore derives the 0-100 score from keyword coverage, structural
// completeness, and a short-resume penalty.
func computeScore(matchedCount, totalKeywords int, resumeNorm string) int {
	keywordScore := 0.0
	if totalKeywords > 0 {
		keywordScore = float64(matchedCount) / float64(totalKeywords)
	}

	structureBonus := float64(structureFlags(resumeNorm)) / sectionStructureMax

	penalty := 0.0
	if len(resumeNorm) < shortResumeChars {
		penalty = lengthPenalty
	}

	score := int(math.Round((keywordScore*keywordWeight + structureBonus*structureWeight - penalty) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// structureFlags counts which of the skills/experience/education markers the
// normalized resume text contains.
func structureFlags(resumeNorm string) int {
	n := 0
	if hasSkillsMarker(resumeNorm) {
		n++
	}
	if hasExperienceMarker(resumeNorm) {
		n++
	}
	if hasEducationMarker(resumeNorm) {
		n++
	}
	return n
}

func hasSkillsMarker(resumeNorm string) bool {
	return strings.Contains(resumeNorm, "skills")
}

func hasExperienceMarker(resumeNorm string) bool {
	return strings.Contains(resumeNorm, "experience") || strings.Contains(resumeNorm, "work experience")
}

func hasEducationMarker(resumeNorm string) bool {
	return strings.Contains(resumeNorm, "education")
}

// buildTips produces the document-level free-text tips.
func buildTips(missing []string, resumeRaw, resumeNorm string) []string {
	var tips []string

	if len(missing) > 0 {
		preview := missing
		suffix := ""
		if len(preview) > tipKeywordPreview {
			preview = preview[:tipKeywordPreview]
			suffix = "…"
		}
		tips = append(tips, fmt.Sprintf("Add relevant keywords: %s%s", strings.Join(preview, ", "), suffix))
	}

	if !hasSkillsMarker(resumeNorm) {
		tips = append(tips, "Add a clearly labeled “Skills” section.")
	}
	if !hasExperienceMarker(resumeNorm) {
		tips = append(tips, "Add a clearly labeled “Experience” section with role titles and impact bullets.")
	}
	if !hasEducationMarker(resumeNorm) {
		tips = append(tips, "Add an “Education” section (even if minimal).")
	}
	if len(resumeNorm) < shortResumeChars {
		tips = append(tips, "Your resume content looks short; add measurable achievements and relevant details.")
	}
	if tableArtifactPattern.MatchString(resumeRaw) {
		tips = append(tips, "Avoid complex tables/columns; ATS can misread multi-column layouts.")
	}
	if !emailPattern.MatchString(resumeRaw) {
		tips = append(tips, "Add a professional email address in your header.")
	}
	if !phonePattern.MatchString(resumeRaw) {
		tips = append(tips, "Add a phone number in your header.")
	}

	return tips
}
