//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request ScanRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: ScanRequest{
				ResumeText:     "Jane Smith\nSKILLS\n- Excel",
				JobDescription: "Looking for Excel experience",
			},
			wantErr: false,
		},
		{
			name: "missing resume text",
			request: ScanRequest{
				JobDescription: "Looking for Excel experience",
			},
			wantErr: true,
		},
		{
			name: "missing job description",
			request: ScanRequest{
				ResumeText: "Jane Smith",
			},
			wantErr: true,
		},
		{
			name:    "empty request",
			request: ScanRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScanResult_JSONFieldNames(t *testing.T) {
	result := ScanResult{
		Score:           42,
		MatchedKeywords: []string{"excel"},
		MissingKeywords: []string{"jira"},
		Sections: []SectionBreakdown{
			{Name: "Skills", StartLine: 1, EndLine: 2},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"score", "matchedKeywords", "missingKeywords", "tips", "sections",
		"resumeKeywords", "jobKeywords", "correctedResume", "suggestedAdditions",
	} {
		assert.Contains(t, decoded, key)
	}

	sections, ok := decoded["sections"].([]any)
	require.True(t, ok)
	section, ok := sections[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, section, "startLine")
	assert.Contains(t, section, "endLine")
}

func TestLineFeedback_OmitsEmptyRewrite(t *testing.T) {
	data, err := json.Marshal(LineFeedback{LineNumber: 1, Text: "ok"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suggestedRewrite")
}
