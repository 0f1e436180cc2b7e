package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeKeywords_PreservesTechTokens(t *testing.T) {
	tokens := tokenizeKeywords("C++ and C# v1.2, node-js!")
	assert.Equal(t, []string{"c++", "and", "c#", "v1.2", "node-js"}, tokens)
}

func TestJobExtractor_StopwordsOnly(t *testing.T) {
	keywords := JobExtractor().Extract("the and for with")
	assert.Empty(t, keywords)
}

func TestJobExtractor_DropsShortAndNoisyTokens(t *testing.T) {
	keywords := JobExtractor().Extract("go to www.example.com or email hr@corp.io now 2024")
	for _, k := range keywords {
		assert.NotEqual(t, "go", k, "tokens under 3 chars are dropped on the JD path")
		assert.NotEqual(t, "2024", k, "pure digit tokens are dropped")
		assert.NotContains(t, k, "@")
	}
	assert.NotContains(t, keywords, "example.com")
}

func TestResumeExtractor_AllowsTwoCharTokens(t *testing.T) {
	keywords := ResumeExtractor().Extract("Go developer")
	assert.Contains(t, keywords, "go")
	assert.Contains(t, keywords, "developer")
}

func TestExtract_FrequencyRankingStable(t *testing.T) {
	keywords := JobExtractor().Extract("excel travel excel booking travel excel")
	// excel appears three times, travel twice, booking once; ties keep
	// first-seen order after the higher counts.
	assert.Equal(t, "excel", keywords[0])
	assert.Equal(t, "travel", keywords[1])
}

func TestExtract_BuildsBigramsAndTrigrams(t *testing.T) {
	keywords := JobExtractor().Extract("travel operations manager")
	assert.Contains(t, keywords, "travel operations")
	assert.Contains(t, keywords, "operations manager")
	assert.Contains(t, keywords, "travel operations manager")
}

func TestExtract_NgramsRejectStopwordComponents(t *testing.T) {
	keywords := JobExtractor().Extract("booking and travel")
	assert.Contains(t, keywords, "booking")
	assert.Contains(t, keywords, "travel")
	for _, k := range keywords {
		assert.False(t, strings.Contains(k, " and "), "n-grams never contain stopwords: %q", k)
	}
}

func TestExtract_CapAppliedAfterFullSort(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("filler")
		sb.WriteString(strings.Repeat("x", i%10))
		sb.WriteString(" ")
	}
	// Make one late-appearing token dominate: it must still rank first.
	for i := 0; i < 50; i++ {
		sb.WriteString("salesforce ")
	}
	keywords := JobExtractor().Extract(sb.String())
	assert.LessOrEqual(t, len(keywords), 60)
	assert.Equal(t, "salesforce", keywords[0])
}

func TestExtract_EmptyInput(t *testing.T) {
	assert.Empty(t, JobExtractor().Extract(""))
	assert.Empty(t, ResumeExtractor().Extract(""))
}
