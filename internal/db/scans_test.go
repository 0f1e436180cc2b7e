package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRecordType(t *testing.T) {
	rec := ScanRecord{
		ID:             uuid.New(),
		ResumeText:     "resume",
		JobDescription: "job",
		Score:          72,
		CreatedAt:      time.Now(),
	}

	assert.Equal(t, "resume", rec.ResumeText)
	assert.Equal(t, "job", rec.JobDescription)
	assert.Equal(t, 72, rec.Score)
}

func TestScanSummaryJSON(t *testing.T) {
	id := uuid.New()
	summary := ScanSummary{
		ID:        id,
		Score:     45,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, id.String(), decoded["id"])
	assert.Equal(t, float64(45), decoded["score"])
	assert.Contains(t, decoded, "createdAt")
}

func TestScanRecordJSON_OmitsRawResult(t *testing.T) {
	rec := ScanRecord{
		ID:     uuid.New(),
		Result: []byte(`{"score":10}`),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "result")
}
