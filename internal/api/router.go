package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dokonepal/doko/internal/service"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether session auth is enforced; login stays open
// either way. sseHandler, if non-nil, is mounted at GET /events inside the
// session group.
func NewRouter(svc *service.Service, authEnabled bool, version string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, version)

	r := chi.NewRouter()

	// Login is the only route outside the session group.
	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(authEnabled, svc.Auth))

		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/session", h.Session)

		// Inventory reads are open to any session; mutations need admin.
		r.Get("/groceries", h.ListGroceries)
		r.Get("/groceries/{id}", h.GetGrocery)
		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Post("/groceries", h.CreateGrocery)
			r.Put("/groceries/{id}", h.UpdateGrocery)
			r.Delete("/groceries/{id}", h.DeleteGrocery)
		})

		// Wireframes CRUD.
		r.Get("/wireframes", h.ListWireframes)
		r.Post("/wireframes", h.CreateWireframe)
		r.Get("/wireframes/{id}", h.GetWireframe)
		r.Put("/wireframes/{id}", h.UpdateWireframe)
		r.Delete("/wireframes/{id}", h.DeleteWireframe)

		// Stats.
		r.Get("/stats/dashboard", h.Dashboard)
		r.Get("/stats/low-stock", h.LowStock)
		r.Get("/stats/insights", h.Insights)

		// Timeline.
		r.Get("/timeline", h.Timeline)
		r.Post("/timeline/tasks", h.AppendTask)
		r.Post("/timeline/reset", h.ResetTimeline)

		// Activity feed and index search.
		r.Get("/activity", h.RecentActivity)
		r.Get("/activity/search", h.SearchActivity)

		// Exports.
		r.Get("/export", h.Export)
		r.Get("/export/report", h.ExportReport)

		// SSE endpoint (protected by same session middleware).
		if sseHandler != nil {
			r.Get("/events", sseHandler.ServeHTTP)
		}
	})

	return r
}
