package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsToolKeyword_SingleWords(t *testing.T) {
	assert.True(t, isToolKeyword("excel"))
	assert.True(t, isToolKeyword("salesforce"))
	assert.False(t, isToolKeyword("booking"))
}

func TestIsToolKeyword_MultiWordByComponent(t *testing.T) {
	assert.True(t, isToolKeyword("google sheets"))
	assert.True(t, isToolKeyword("power bi"))
	assert.False(t, isToolKeyword("travel operations"))
}

func TestIsToolKeyword_CrmSubstring(t *testing.T) {
	assert.True(t, isToolKeyword("crm"))
	assert.True(t, isToolKeyword("zoho-crm"))
}

func TestIsOpsKeyword(t *testing.T) {
	assert.True(t, isOpsKeyword("booking management"))
	assert.True(t, isOpsKeyword("end-to-end delivery"))
	assert.True(t, isOpsKeyword("operations"))
	assert.False(t, isOpsKeyword("python"))
}

func TestClassify_ToolWinsOverOps(t *testing.T) {
	// "reporting" matches both vocabularies; tool classification wins.
	assert.Equal(t, CategoryTool, Classify("reporting"))
	assert.Equal(t, CategoryOps, Classify("booking"))
	assert.Equal(t, CategoryGeneral, Classify("python"))
}

func TestRelevantKeywordsForSection_ExcludedSections(t *testing.T) {
	keywords := []string{"excel", "booking"}
	assert.Empty(t, relevantKeywordsForSection("Education", keywords))
	assert.Empty(t, relevantKeywordsForSection("Languages", keywords))
	assert.Empty(t, relevantKeywordsForSection("General", keywords))
}

func TestRelevantKeywordsForSection_Skills(t *testing.T) {
	keywords := []string{"excel", "booking", "ota portals", "crm"}
	got := relevantKeywordsForSection("Skills", keywords)
	assert.Contains(t, got, "excel")
	assert.Contains(t, got, "crm")
	assert.Contains(t, got, "ota portals")
	assert.NotContains(t, got, "booking")
}

func TestRelevantKeywordsForSection_ExperienceExcludesTools(t *testing.T) {
	keywords := []string{"excel", "booking", "reporting", "customer support", "associate"}
	got := relevantKeywordsForSection("Experience", keywords)
	assert.Equal(t, []string{"booking", "customer support", "associate"}, got)
}

func TestRelevantKeywordsForSection_SummaryCapsTools(t *testing.T) {
	keywords := []string{"booking", "excel", "crm", "jira", "tableau", "sap", "associate"}
	got := relevantKeywordsForSection("Summary", keywords)
	// Domain keywords first, then at most four tool keywords.
	assert.Equal(t, []string{"booking", "associate", "excel", "crm", "jira", "tableau"}, got)
}
