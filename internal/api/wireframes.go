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

// ListWireframes handles GET /api/wireframes.
//
//	@Summary		List wireframe records
//	@Tags			wireframes
//	@Produce		json
//	@Success		200	{object}	WireframeListResponse
//	@Security		BearerAuth
//	@Router			/wireframes [get]
func (h *Handler) ListWireframes(w http.ResponseWriter, r *http.Request) {
	records := h.svc.Store.Wireframes()
	writeJSON(w, http.StatusOK, WireframeListResponse{Wireframes: records, Total: len(records)})
}

// GetWireframe handles GET /api/wireframes/{id}. Fetching a record counts
// as a view and lands in the activity feed.
//
//	@Summary		View a wireframe record
//	@Tags			wireframes
//	@Produce		json
//	@Param			id	path		string	true	"Wireframe id"
//	@Success		200	{object}	models.Wireframe
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wireframes/{id} [get]
func (h *Handler) GetWireframe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := h.svc.Store.ViewWireframe(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// CreateWireframe handles POST /api/wireframes.
//
//	@Summary		Create a wireframe record
//	@Tags			wireframes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.Wireframe	true	"Record to create"
//	@Success		201		{object}	models.Wireframe
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wireframes [post]
func (h *Handler) CreateWireframe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var record models.Wireframe
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	created, err := h.svc.Store.AddWireframe(record)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalid) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("create wireframe failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateWireframe handles PUT /api/wireframes/{id}.
//
//	@Summary		Update a wireframe record
//	@Tags			wireframes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Wireframe id"
//	@Param			body	body		models.Wireframe	true	"Updated record"
//	@Success		200		{object}	models.Wireframe
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wireframes/{id} [put]
func (h *Handler) UpdateWireframe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	id := chi.URLParam(r, "id")
	var record models.Wireframe
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	updated, err := h.svc.Store.UpdateWireframe(id, record)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalid):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		default:
			slog.Error("update wireframe failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteWireframe handles DELETE /api/wireframes/{id}.
//
//	@Summary		Delete a wireframe record
//	@Tags			wireframes
//	@Param			id	path	string	true	"Wireframe id"
//	@Success		204	"Record deleted"
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wireframes/{id} [delete]
func (h *Handler) DeleteWireframe(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Store.DeleteWireframe(chi.URLParam(r, "id")); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
