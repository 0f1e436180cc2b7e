package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/eliteskills/ats-engine/internal/ats"
	"github.com/eliteskills/ats-engine/internal/db"
	"github.com/eliteskills/ats-engine/internal/extract"
	"github.com/eliteskills/ats-engine/internal/types"
)

// ---------------------------------------------------------------------
// Scan Handlers
// ---------------------------------------------------------------------

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req types.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		vErr := &ErrValidation{Field: "resumeText/jobDescription", Message: "both fields are required"}
		s.errorResponse(w, HTTPStatus(vErr), vErr.Error())
		return
	}

	s.scoreAndRespond(w, r, req.ResumeText, req.JobDescription)
}

func (s *Server) handleScanUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(extract.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	jobDescription := r.FormValue("jobDescription")
	if jobDescription == "" {
		vErr := &ErrValidation{Field: "jobDescription", Message: "field is required"}
		s.errorResponse(w, HTTPStatus(vErr), vErr.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		vErr := &ErrValidation{Field: "resume", Message: "file is required"}
		s.errorResponse(w, HTTPStatus(vErr), vErr.Error())
		return
	}
	defer file.Close()

	if header.Size > extract.MaxUploadBytes {
		vErr := &ErrValidation{Field: "resume", Message: "file exceeds the upload size limit"}
		s.errorResponse(w, HTTPStatus(vErr), vErr.Error())
		return
	}

	resumeText, err := extract.PDFText(file)
	if err != nil {
		eErr := &ErrExtraction{Message: "could not read text from the uploaded file"}
		s.errorResponse(w, HTTPStatus(eErr), eErr.Error())
		return
	}
	if resumeText == "" {
		eErr := &ErrExtraction{Message: "the uploaded file contains no extractable text"}
		s.errorResponse(w, HTTPStatus(eErr), eErr.Error())
		return
	}

	s.scoreAndRespond(w, r, resumeText, jobDescription)
}

// scoreAndRespond runs the scan pipeline and writes the result. Persistence
// and grammar correction are best-effort.
func (s *Server) scoreAndRespond(w http.ResponseWriter, r *http.Request, resumeText, jobDescription string) {
	result := ats.ScoreResume(resumeText, jobDescription)

	if result.CorrectedResume != "" {
		result.CorrectedResume = s.grammar.Correct(r.Context(), result.CorrectedResume)
	}

	if s.db != nil {
		id, err := s.db.SaveScan(r.Context(), db.ScanCreateInput{
			ResumeText:     resumeText,
			JobDescription: jobDescription,
			Score:          result.Score,
			Result:         result,
		})
		if err != nil {
			log.Printf("Failed to persist scan: %v", err)
		} else {
			w.Header().Set("X-Scan-ID", id.String())
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		pErr := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(pErr), pErr.Error())
		return
	}

	limit := db.DefaultScanListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	scans, err := s.db.ListScans(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if scans == nil {
		scans = []db.ScanSummary{}
	}

	s.jsonResponse(w, http.StatusOK, scans)
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		pErr := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(pErr), pErr.Error())
		return
	}

	scanID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid scan ID")
		return
	}

	rec, err := s.db.GetScan(r.Context(), scanID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if rec == nil {
		nfErr := &ErrScanNotFound{ScanID: scanID}
		s.errorResponse(w, HTTPStatus(nfErr), nfErr.Error())
		return
	}

	// The stored result is already JSON; return it verbatim under "result".
	var result json.RawMessage = rec.Result
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":        rec.ID,
		"score":     rec.Score,
		"createdAt": rec.CreatedAt,
		"result":    result,
	})
}
