package ats

import (
	"regexp"
	"sort"
	"strings"
)

// defaultStopwords removes generic business-English filler while keeping
// domain terms. Shared by the resume and job-description extractors.
var defaultStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "or": true, "that": true, "the": true,
	"their": true, "this": true, "to": true, "was": true, "were": true,
	"will": true, "with": true, "work": true, "working": true,
	"experience": true, "team": true, "role": true, "roles": true,
	"using": true, "job": true, "years": true, "year": true,
	"internal": true, "teams": true, "ensure": true, "process": true,
	"platform": true,
}

var (
	// Keeps tokens like "c++", "c#", and dotted or hyphenated version strings.
	tokenCharPattern  = regexp.MustCompile(`[^a-z0-9+.#\s-]`)
	domainSuffixes    = regexp.MustCompile(`(?:\.com|\.in|\.net|\.org|\.io|\.ai)$`)
	pureDigitsPattern = regexp.MustCompile(`^\d+$`)
	httpTokenPattern  = regexp.MustCompile(`\bhttps?\b`)
)

// maxKeywords caps the ranked keyword list. The cap is applied only after
// the full frequency sort, never before.
const maxKeywords = 60

// minNgramComponentLen is the minimum length of each bigram/trigram component.
const minNgramComponentLen = 3

// tokenizeKeywords normalizes text, strips characters outside the token
// alphabet, and splits on whitespace.
func tokenizeKeywords(text string) []string {
	cleaned := tokenCharPattern.ReplaceAllString(normalizeText(text), " ")
	return strings.Fields(cleaned)
}

// Extractor converts free text into a ranked keyword list of unigrams,
// bigrams, and trigrams. The resume and job-description paths are two
// instantiations with different minimum unigram lengths.
type Extractor struct {
	// MinUnigramLen is the minimum length for a single-word keyword.
	// Resumes use 2 (proper nouns matter in shorter text), job
	// descriptions use 3.
	MinUnigramLen int
	// Stopwords filters unigrams and n-gram components. Nil uses the
	// default set.
	Stopwords map[string]bool
}

// ResumeExtractor returns the extractor configured for resume text.
func ResumeExtractor() Extractor {
	return Extractor{MinUnigramLen: 2, Stopwords: defaultStopwords}
}

// JobExtractor returns the extractor configured for job-description text.
func JobExtractor() Extractor {
	return Extractor{MinUnigramLen: 3, Stopwords: defaultStopwords}
}

func (e Extractor) stopwords() map[string]bool {
	if e.Stopwords != nil {
		return e.Stopwords
	}
	return defaultStopwords
}

// keepUnigram reports whether a token survives the unigram filter:
// long enough, not a stopword, not a URL/email/domain-suffix token,
// and not a pure digit string.
func (e Extractor) keepUnigram(t string) bool {
	if len(t) < e.MinUnigramLen {
		return false
	}
	if e.stopwords()[t] {
		return false
	}
	if httpTokenPattern.MatchString(t) {
		return false
	}
	if strings.Contains(t, "@") || strings.Contains(t, "/") {
		return false
	}
	if domainSuffixes.MatchString(t) {
		return false
	}
	if pureDigitsPattern.MatchString(t) {
		return false
	}
	return true
}

// buildNgrams slides a window of size n over the token stream and joins
// components with single spaces. Any n-gram containing a stopword or a
// component shorter than three characters is rejected.
func (e Extractor) buildNgrams(tokens []string, n int) []string {
	stop := e.stopwords()
	var out []string
window:
	for i := 0; i+n <= len(tokens); i++ {
		for _, t := range tokens[i : i+n] {
			if stop[t] || len(t) < minNgramComponentLen {
				continue window
			}
		}
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}

// Extract returns the top keywords ranked by raw occurrence count,
// descending, with ties broken by first-seen order. Unigrams, bigrams, and
// trigrams share one counter; an n-gram and its component unigrams count
// independently.
func (e Extractor) Extract(text string) []string {
	tokens := tokenizeKeywords(text)

	counts := make(map[string]int)
	var order []string
	bump := func(k string) {
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	for _, t := range tokens {
		if e.keepUnigram(t) {
			bump(t)
		}
	}
	for _, b := range e.buildNgrams(tokens, 2) {
		bump(b)
	}
	for _, t := range e.buildNgrams(tokens, 3) {
		bump(t)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
