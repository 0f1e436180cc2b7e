package db

import (
	"time"

	"github.com/google/uuid"
)

// DefaultScanListLimit bounds how many scans a listing returns by default.
const DefaultScanListLimit = 20

// ScanRecord represents a persisted scan result row
type ScanRecord struct {
	ID             uuid.UUID `json:"id"`
	ResumeText     string    `json:"resumeText"`
	JobDescription string    `json:"jobDescription"`
	Score          int       `json:"score"`
	Result         []byte    `json:"-"` // full scan result JSON
	CreatedAt      time.Time `json:"createdAt"`
}

// ScanSummary is a lightweight view of a scan for listing
type ScanSummary struct {
	ID        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScanCreateInput is used when saving a new scan
type ScanCreateInput struct {
	ResumeText     string
	JobDescription string
	Score          int
	Result         any
}
