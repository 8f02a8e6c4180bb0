package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// AnalyzeRequest is the body for POST /api/analyze.
type AnalyzeRequest struct {
	Query string `json:"query"`
}

// MessageResponse carries a one-line status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AreasResponse is the body of GET /api/areas.
type AreasResponse struct {
	Areas []string `json:"areas"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInit(w http.ResponseWriter, _ *http.Request) {
	s.svc.Initialize()
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Data initialized successfully"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Analyze(req.Query))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close() //nolint:errcheck

	path, err := s.saveUpload(header.Filename, file)
	if err != nil {
		zap.L().Error("api: save upload failed", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not store file")
		return
	}

	if !s.svc.LoadFromFile(r.Context(), path) {
		writeError(w, http.StatusBadRequest, "File upload failed")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "File uploaded successfully"})
}

// saveUpload writes the upload under the upload dir, keeping only the base
// name of the client-supplied filename.
func (s *Server) saveUpload(name string, src io.Reader) (string, error) {
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return "", eris.Errorf("api: invalid filename %q", name)
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", eris.Wrap(err, "api: create upload dir")
	}

	path := filepath.Join(s.uploadDir, base)
	dst, err := os.Create(path)
	if err != nil {
		return "", eris.Wrap(err, "api: create upload file")
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		return "", eris.Wrap(err, "api: write upload file")
	}
	return path, nil
}

func (s *Server) handleAreas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, AreasResponse{Areas: s.svc.ListAreas()})
}

func (s *Server) handleTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.HealthCheck())
}

// writeJSON encodes v before sending the header so an unencodable value
// becomes a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zap.L().Error("api: encode JSON response", zap.Error(err))
		buf.Reset()
		buf.WriteString(`{"error":"internal server error"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zap.L().Warn("api: failed to write JSON response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
