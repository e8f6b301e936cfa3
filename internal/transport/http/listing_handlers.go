package http

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (a API) handleListListings(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())
	page := parsePage(r)
	items, total, err := a.Listings.List(r.Context(), p, parseListingFilter(r), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedBody(items, total, page))
}

func (a API) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	l, err := a.Listings.Create(r.Context(), PrincipalFromContext(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (a API) handleGetListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	l, err := a.Listings.Get(r.Context(), PrincipalFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (a API) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	var req dto.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	l, err := a.Listings.Update(r.Context(), PrincipalFromContext(r.Context()), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (a API) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	if err := a.Listings.Deactivate(r.Context(), PrincipalFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pagedBody[T any](items []T, total int64, page store.Page) dto.PagedResponse[T] {
	if items == nil {
		items = []T{}
	}
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = store.DefaultPageSize
	}
	if page.Size > store.MaxPageSize {
		page.Size = store.MaxPageSize
	}
	return dto.PagedResponse[T]{Items: items, Total: total, Page: page.Number, PageSize: page.Size}
}
