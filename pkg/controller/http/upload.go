package http

import (
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/utils/errutil"
	"github.com/quantum-travel/quantumchat/pkg/utils/safe"
)

// handleUpload accepts a multipart file and reports its metadata. No content
// processing is performed.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to read uploaded file"), http.StatusBadRequest)
		return
	}
	defer safe.Close(r.Context(), file)

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to read file content"), http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, &model.UploadResponse{
		Filename:    header.Filename,
		Size:        size,
		ContentType: header.Header.Get("Content-Type"),
		Message:     "File uploaded successfully. Processing capability coming soon!",
		Timestamp:   time.Now().UTC(),
	})
}
