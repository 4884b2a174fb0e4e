package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/tsawler/titulus"
)

// handleOutline accepts a multipart upload under the "file" field and
// responds with the document's inferred title and outline. An optional
// "lang" form value forces the language code instead of auto-detecting.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(header.Filename)), http.StatusBadRequest)
		return
	}

	// The PDF parser needs random access, so the upload goes through a
	// temporary file.
	tmp, err := os.CreateTemp("", "titulus-*.pdf")
	if err != nil {
		jsonError(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	n, err := io.Copy(tmp, io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if n > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	ext := titulus.Open(tmp.Name()).WithConfig(s.cfg.Engine)
	if lang := r.FormValue("lang"); lang != "" {
		ext = ext.Language(lang)
	}

	result, err := ext.Outline()
	if err != nil {
		s.log.Warn("extraction failed", "file", header.Filename, "error", err)
		jsonError(w, "could not read document", http.StatusUnprocessableEntity)
		return
	}

	s.log.Info("extracted outline",
		"file", header.Filename,
		"title", result.Title,
		"headings", len(result.Outline))
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"encoding failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := sonic.Marshal(map[string]string{"error": msg})
	w.Write(data)
}
