package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

// maxMultipartMemory bounds how much of an upload stays in memory.
const maxMultipartMemory = 10 << 20

// minExtractableChars is the threshold below which a document counts as
// having no extractable text.
const minExtractableChars = 10

// handleParse parses an uploaded resume with the heuristic pipeline.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readResumeText(w, r)
	if !ok {
		return
	}

	resume, warnings := s.pipeline.Extract(text)
	for _, warning := range warnings {
		log.Warn().Str("warning", warning).Msg("extraction warning")
	}

	if failed, reason := s.validator.HasSectionsButNoData(text, resume); failed {
		s.errorResponse(w, http.StatusUnprocessableEntity, reason)
		return
	}

	log.Info().
		Bool("contact", resume.Contact.FirstName != "").
		Int("education", len(resume.Education)).
		Int("experience", len(resume.WorkExperience)).
		Int("skills", len(resume.Skills)).
		Msg("extraction complete")
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleParseLLM parses an uploaded resume with the model-backed extractor.
func (s *Server) handleParseLLM(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "LLM extraction is not configured. Set GEMINI_API_KEY to enable it.")
		return
	}

	text, ok := s.readResumeText(w, r)
	if !ok {
		return
	}

	resume, err := s.extractor.Extract(r.Context(), text)
	if err != nil {
		log.Error().Err(err).Msg("llm extraction failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume with LLM")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// readResumeText validates the uploaded file, extracts its text, and runs
// the resume validator. It writes the error response itself and reports
// success through the second return value.
func (s *Server) readResumeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required")
		return "", false
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "Filename is required")
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !s.extensionAllowed(ext) {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(s.cfg.AllowedExtensions, ", ")))
		return "", false
	}

	maxBytes := int64(s.cfg.MaxFileSizeMB) << 20
	if header.Size > maxBytes {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum size: %dMB", s.cfg.MaxFileSizeMB))
		return "", false
	}

	// The PDF reader needs a seekable file on disk.
	tmp, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return "", false
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, io.LimitReader(file, maxBytes)); err != nil {
		_ = tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return "", false
	}
	if err := tmp.Close(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return "", false
	}

	log.Info().Str("filename", header.Filename).Int64("bytes", header.Size).Msg("parsing upload")

	doc, err := ingestion.FromFile(tmpPath)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("ingestion failed")
		s.errorResponse(w, http.StatusUnprocessableEntity,
			"Document has no extractable text. Please ensure the file is not corrupted or a scanned image.")
		return "", false
	}
	if len(strings.TrimSpace(doc.Content)) < minExtractableChars {
		s.errorResponse(w, http.StatusUnprocessableEntity,
			"Document has no extractable text. Please ensure the file is not corrupted or a scanned image.")
		return "", false
	}

	if valid, reason := s.validator.Validate(doc.Content); !valid {
		log.Warn().Str("reason", reason).Msg("resume validation failed")
		s.errorResponse(w, http.StatusUnprocessableEntity, reason)
		return "", false
	}

	return doc.Content, true
}

func (s *Server) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
