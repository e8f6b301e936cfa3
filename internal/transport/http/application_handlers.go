package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"jobboard/internal/domain"
	"jobboard/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxResumeSize caps the multipart body at 10 MiB.
const maxResumeSize = 10 << 20

func (a API) handleListApplications(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)
	items, total, err := a.Applications.List(r.Context(), PrincipalFromContext(r.Context()), parseApplicationFilter(r), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedBody(items, total, page))
}

// handleSubmitApplication decodes a multipart form: "listing_id",
// "cover_letter" and the "resume" file part.
func (a API) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, fmt.Errorf("%w: expected multipart form", domain.ErrValidation))
		return
	}

	req := dto.SubmitApplicationRequest{
		ListingID:   r.FormValue("listing_id"),
		CoverLetter: r.FormValue("cover_letter"),
	}
	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, fmt.Errorf("%w: unreadable resume upload", domain.ErrValidation))
			return
		}
		req.Resume = data
		req.ResumeName = header.Filename
	}

	app, err := a.Applications.Submit(r.Context(), PrincipalFromContext(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (a API) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	app, err := a.Applications.Get(r.Context(), PrincipalFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (a API) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	data, name, err := a.Applications.OpenResume(r.Context(), PrincipalFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a API) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	app, err := a.Applications.UpdateStatus(r.Context(), PrincipalFromContext(r.Context()), id, domain.ApplicationStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
