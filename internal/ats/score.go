package ats

import (
	"github.com/eliteskills/ats-engine/internal/types"
)

// ScoreResume runs the full scoring pipeline over raw resume text and a job
// description. It is a total function: any input, including empty strings,
// degrades into low scores and sparse sections rather than an error.
func ScoreResume(resumeRaw, jobDescriptionRaw string) *types.ScanResult {
	resumeNorm := normalizeText(resumeRaw)

	resumeKeywords := ResumeExtractor().Extract(resumeRaw)

	resumeTokens := make(map[string]bool)
	resumeStems := make(map[string]bool)
	for _, t := range tokenizeKeywords(resumeRaw) {
		resumeTokens[t] = true
		resumeStems[stemWord(t)] = true
	}

	keywords := JobExtractor().Extract(jobDescriptionRaw)
	matched, missing := matchKeywords(keywords, resumeTokens, resumeStems, resumeNorm)

	score := computeScore(len(matched), len(keywords), resumeNorm)
	tips := buildTips(missing, resumeRaw, resumeNorm)

	sections := segmentSections(splitLines(resumeRaw), missing)
	annotateSections(sections, keywords)

	correctedResume := ""
	if len(sections) > 0 {
		correctedResume = buildImprovedResumeDraft(sections, resumeRaw)
	}

	return &types.ScanResult{
		Score:              score,
		MatchedKeywords:    matched,
		MissingKeywords:    missing,
		Tips:               tips,
		Sections:           sections,
		ResumeKeywords:     resumeKeywords,
		JobKeywords:        keywords,
		CorrectedResume:    correctedResume,
		SuggestedAdditions: buildSuggestedAdditions(missing),
	}
}
