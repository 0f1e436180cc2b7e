package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveScan stores a scan result and returns its ID
func (db *DB) SaveScan(ctx context.Context, input ScanCreateInput) (uuid.UUID, error) {
	resultBytes, err := json.Marshal(input.Result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal scan result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scans (resume_text, job_description, score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		input.ResumeText, input.JobDescription, input.Score, resultBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save scan: %w", err)
	}
	return id, nil
}

// GetScan retrieves a scan by ID. Returns nil when no scan matches.
func (db *DB) GetScan(ctx context.Context, scanID uuid.UUID) (*ScanRecord, error) {
	var rec ScanRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_text, job_description, score, result, created_at
		 FROM scans WHERE id = $1`,
		scanID,
	).Scan(&rec.ID, &rec.ResumeText, &rec.JobDescription, &rec.Score, &rec.Result, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return &rec, nil
}

// ListScans retrieves the most recent scans, newest first
func (db *DB) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	if limit <= 0 {
		limit = DefaultScanListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, score, created_at
		 FROM scans ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []ScanSummary
	for rows.Next() {
		var s ScanSummary
		if err := rows.Scan(&s.ID, &s.Score, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, s)
	}
	return scans, nil
}

// DeleteScan deletes a scan by ID
func (db *DB) DeleteScan(ctx context.Context, scanID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM scans WHERE id = $1`, scanID)
	if err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("scan not found: %s", scanID)
	}
	return nil
}
