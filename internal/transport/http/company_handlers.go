package http

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/domain"
	"jobboard/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (a API) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)
	items, total, err := a.Companies.List(r.Context(), PrincipalFromContext(r.Context()), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedBody(items, total, page))
}

func (a API) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req dto.CompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	c, err := a.Companies.Create(r.Context(), PrincipalFromContext(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (a API) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	c, err := a.Companies.Get(r.Context(), PrincipalFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a API) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	var req dto.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	c, err := a.Companies.Update(r.Context(), PrincipalFromContext(r.Context()), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a API) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	if err := a.Companies.Delete(r.Context(), PrincipalFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
