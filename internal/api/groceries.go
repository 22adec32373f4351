package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dokonepal/doko/internal/apperr"
	"github.com/dokonepal/doko/internal/models"
)

// ListGroceries handles GET /api/groceries.
//
//	@Summary		List groceries with optional search and category filter
//	@Tags			groceries
//	@Produce		json
//	@Param			q			query		string	false	"Search term"
//	@Param			category	query		string	false	"Exact category filter"
//	@Success		200			{object}	GroceryListResponse
//	@Security		BearerAuth
//	@Router			/groceries [get]
func (h *Handler) ListGroceries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.svc.Store.SearchGroceries(q.Get("q"), q.Get("category"))
	writeJSON(w, http.StatusOK, GroceryListResponse{Groceries: items, Total: len(items)})
}

// GetGrocery handles GET /api/groceries/{id}.
//
//	@Summary		Get a single grocery item
//	@Tags			groceries
//	@Produce		json
//	@Param			id	path		string	true	"Grocery id"
//	@Success		200	{object}	models.Grocery
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/groceries/{id} [get]
func (h *Handler) GetGrocery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.svc.Store.Grocery(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateGrocery handles POST /api/groceries.
//
//	@Summary		Add a grocery item
//	@Tags			groceries
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.Grocery	true	"Item to add"
//	@Success		201		{object}	models.Grocery
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/groceries [post]
func (h *Handler) CreateGrocery(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var item models.Grocery
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	created, err := h.svc.Store.AddGrocery(item)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalid) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("create grocery failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateGrocery handles PUT /api/groceries/{id}.
//
//	@Summary		Update a grocery item
//	@Tags			groceries
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Grocery id"
//	@Param			body	body		models.Grocery	true	"Updated item"
//	@Success		200		{object}	models.Grocery
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/groceries/{id} [put]
func (h *Handler) UpdateGrocery(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	id := chi.URLParam(r, "id")
	var item models.Grocery
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	updated, err := h.svc.Store.UpdateGrocery(id, item)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalid):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		default:
			slog.Error("update grocery failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteGrocery handles DELETE /api/groceries/{id}.
//
//	@Summary		Delete a grocery item
//	@Tags			groceries
//	@Param			id	path	string	true	"Grocery id"
//	@Success		204	"Item deleted"
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/groceries/{id} [delete]
func (h *Handler) DeleteGrocery(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Store.DeleteGrocery(chi.URLParam(r, "id")); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
