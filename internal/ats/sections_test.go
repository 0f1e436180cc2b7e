package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSectionHeading_AllCaps(t *testing.T) {
	assert.Equal(t, "Experience", detectSectionHeading("EXPERIENCE"))
	assert.Equal(t, "Skills", detectSectionHeading("TECHNICAL SKILLS"))
	assert.Equal(t, "Education", detectSectionHeading("EDUCATION"))
}

func TestDetectSectionHeading_KnownPhrase(t *testing.T) {
	assert.Equal(t, "Experience", detectSectionHeading("Work Experience:"))
	assert.Equal(t, "Summary", detectSectionHeading("Objective"))
	assert.Equal(t, "Summary", detectSectionHeading("profile"))
	assert.Equal(t, "General", detectSectionHeading("Contact"))
	assert.Equal(t, "Interests", detectSectionHeading("Hobbies and Interests"))
}

func TestDetectSectionHeading_StripsMarkers(t *testing.T) {
	assert.Equal(t, "Skills", detectSectionHeading("## Skills"))
	assert.Equal(t, "Projects", detectSectionHeading("- Projects:"))
	assert.Equal(t, "Education", detectSectionHeading("[Education]"))
}

func TestDetectSectionHeading_UnmappableShapeIsNotHeading(t *testing.T) {
	// Heading-shaped but mapping to no canonical section.
	assert.Equal(t, "", detectSectionHeading("CORE COMPETENCIES"))
}

func TestDetectSectionHeading_RejectsProse(t *testing.T) {
	assert.Equal(t, "", detectSectionHeading("Managed bookings and travel operations for clients"))
	assert.Equal(t, "", detectSectionHeading(""))
}

func TestDetectSectionHeading_RejectsDigitsInAllCaps(t *testing.T) {
	assert.Equal(t, "", detectSectionHeading("EXP 2024"))
}

func TestDetectSectionHeading_TooLong(t *testing.T) {
	assert.Equal(t, "", detectSectionHeading("Experience working with many different teams across several organizations"))
}

func TestSegmentSections_HeadingScenario(t *testing.T) {
	lines := []string{"EXPERIENCE", "- Did X at scale", "PROJECTS", "- Did Y at scale"}
	sections := segmentSections(lines, nil)

	require.Len(t, sections, 2)
	assert.Equal(t, "Experience", sections[0].Name)
	assert.Equal(t, 1, sections[0].StartLine)
	assert.Equal(t, 2, sections[0].EndLine)
	assert.Equal(t, "Projects", sections[1].Name)
	assert.Equal(t, 3, sections[1].StartLine)
	assert.Equal(t, 4, sections[1].EndLine)
}

func TestSegmentSections_EmptyGeneralDropped(t *testing.T) {
	sections := segmentSections([]string{"SKILLS", "Excel"}, nil)
	require.Len(t, sections, 1)
	assert.Equal(t, "Skills", sections[0].Name)
}

func TestSegmentSections_GeneralKeptWhenContentPrecedesHeadings(t *testing.T) {
	sections := segmentSections([]string{"Jane Smith", "Mumbai", "SKILLS", "Excel"}, nil)
	require.Len(t, sections, 2)
	assert.Equal(t, "General", sections[0].Name)
	assert.Equal(t, 1, sections[0].StartLine)
	assert.Equal(t, 2, sections[0].EndLine)
	assert.Equal(t, "Skills", sections[1].Name)
	assert.Equal(t, 3, sections[1].StartLine)
}

func TestSegmentSections_LineCoveragePartition(t *testing.T) {
	lines := []string{"Jane Smith", "SUMMARY", "Ops associate", "EXPERIENCE", "- Managed bookings daily", "PROJECTS", "- Built tracker"}
	sections := segmentSections(lines, nil)

	next := 1
	for _, s := range sections {
		assert.Equal(t, next, s.StartLine, "sections must be contiguous")
		assert.GreaterOrEqual(t, s.EndLine, s.StartLine)
		next = s.EndLine + 1
	}
	assert.Equal(t, len(lines)+1, next, "sections must cover every kept line")
}

func TestSegmentSections_ShortLinesAdvanceRangeButAreDropped(t *testing.T) {
	sections := segmentSections([]string{"EXPERIENCE", "ok", "- Managed bookings daily"}, nil)
	require.Len(t, sections, 1)
	// "ok" is under 3 chars: it counts toward the range but produces no feedback.
	assert.Equal(t, 3, sections[0].EndLine)
	require.Len(t, sections[0].Lines, 1)
	assert.Equal(t, 3, sections[0].Lines[0].LineNumber)
}
