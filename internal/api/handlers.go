package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dokonepal/doko/internal/apperr"
	"github.com/dokonepal/doko/internal/service"
	"github.com/dokonepal/doko/internal/stats"
)

// Handler holds API route handlers.
type Handler struct {
	svc     *service.Service
	version string
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.Service, version string) *Handler {
	return &Handler{svc: svc, version: version}
}

// Login handles POST /api/auth/login.
//
//	@Summary		Start a session with demo credentials
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	errResponse
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	sess, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid username or password"))
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: sess.Token, Username: sess.Username, Role: sess.Role})
}

// Logout handles POST /api/auth/logout.
//
//	@Summary		End the current session
//	@Tags			auth
//	@Success		204	"Logged out"
//	@Failure		401	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.svc.Logout(token); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session.
//
//	@Summary		Describe the active session
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	LoginResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/auth/session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.svc.Auth.Current()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("no active session"))
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: sess.Token, Username: sess.Username, Role: sess.Role})
}

// Dashboard handles GET /api/stats/dashboard.
//
//	@Summary		Combined dashboard statistics
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	Dashboard
//	@Security		BearerAuth
//	@Router			/stats/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard())
}

// LowStock handles GET /api/stats/low-stock.
//
//	@Summary		Items below the low-stock threshold
//	@Tags			stats
//	@Produce		json
//	@Param			threshold	query		int	false	"Quantity threshold"
//	@Success		200			{object}	GroceryListResponse
//	@Security		BearerAuth
//	@Router			/stats/low-stock [get]
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))
	if threshold <= 0 {
		threshold = stats.DefaultLowStockThreshold
	}
	items := stats.LowStock(h.svc.Store.Groceries(), threshold)
	writeJSON(w, http.StatusOK, GroceryListResponse{Groceries: items, Total: len(items)})
}

// Insights handles GET /api/stats/insights.
//
//	@Summary		Inventory health indicators and recommendations
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	stats.Insights
//	@Security		BearerAuth
//	@Router			/stats/insights [get]
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stats.InventoryInsights(h.svc.Store.Groceries()))
}

// Timeline handles GET /api/timeline.
//
//	@Summary		Project timeline layout
//	@Tags			timeline
//	@Produce		json
//	@Param			today	query		string	false	"Reference date (YYYY-MM-DD)"
//	@Success		200		{object}	timeline.Layout
//	@Security		BearerAuth
//	@Router			/timeline [get]
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	today := time.Now()
	if raw := r.URL.Query().Get("today"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid today parameter"))
			return
		}
		today = parsed
	}
	writeJSON(w, http.StatusOK, h.svc.Schedule.Layout(today))
}

// AppendTask handles POST /api/timeline/tasks.
//
//	@Summary		Append a task to the timeline
//	@Tags			timeline
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AppendTaskRequest	true	"Task to append"
//	@Success		201		{object}	models.Task
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/timeline/tasks [post]
func (h *Handler) AppendTask(w http.ResponseWriter, r *http.Request) {
	var req AppendTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid start date"))
		return
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid end date"))
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	task, err := h.svc.Schedule.Append(req.Name, start, end, priority, req.Assignee)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalid) {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid task"))
		} else {
			slog.Error("append task failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// ResetTimeline handles POST /api/timeline/reset.
//
//	@Summary		Restore the built-in project plan
//	@Tags			timeline
//	@Success		204	"Timeline reset"
//	@Security		BearerAuth
//	@Router			/timeline/reset [post]
func (h *Handler) ResetTimeline(w http.ResponseWriter, r *http.Request) {
	h.svc.Schedule.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// RecentActivity handles GET /api/activity.
//
//	@Summary		Recent activity entries, newest first
//	@Tags			activity
//	@Produce		json
//	@Param			limit	query		int	false	"Max entries"
//	@Success		200		{object}	ActivityResponse
//	@Security		BearerAuth
//	@Router			/activity [get]
func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}
	writeJSON(w, http.StatusOK, ActivityResponse{Activity: h.svc.Store.RecentActivity(limit)})
}

// SearchActivity handles GET /api/activity/search.
//
//	@Summary		Search the activity index
//	@Tags			activity
//	@Produce		json
//	@Param			q		query		string	false	"Substring match on messages"
//	@Param			kind	query		string	false	"Activity kind filter"
//	@Param			limit	query		int		false	"Max entries"
//	@Success		200		{object}	ActivityResponse
//	@Security		BearerAuth
//	@Router			/activity/search [get]
func (h *Handler) SearchActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	entries, err := h.svc.Index.Search(q.Get("q"), q.Get("kind"), limit)
	if err != nil {
		slog.Error("search activity failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ActivityResponse{Activity: entries})
}

// Export handles GET /api/export.
//
//	@Summary		Export all collections with summaries
//	@Tags			export
//	@Produce		json
//	@Success		200	{object}	service.ExportDocument
//	@Security		BearerAuth
//	@Router			/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	exporter := ""
	if sess, ok := sessionFrom(r.Context()); ok {
		exporter = sess.Username
	}
	writeJSON(w, http.StatusOK, h.svc.Export(exporter, h.version))
}

// ExportReport handles GET /api/export/report.
//
//	@Summary		Export the analytics report
//	@Tags			export
//	@Produce		json
//	@Success		200	{object}	service.Report
//	@Security		BearerAuth
//	@Router			/export/report [get]
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ExportReport())
}
