// internal/app/features/admin/routes.go
package admin

import (
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the admin dashboard router, mounted at /admin.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Get("/", h.ServePage)
	r.Get("/{page}", h.ServePage)

	r.Post("/events/new", h.HandleCreateEvent)
	r.Post("/events/update", h.HandleUpdateEvent)
	r.Post("/events/feature", h.HandleToggleFeatured)
	r.Post("/events/delete", h.HandleDeleteEvent)
	r.Post("/proposals/review", h.HandleReviewProposal)
	r.Post("/users/approve", h.HandleApproveUser)
	r.Post("/users/deny", h.HandleDenyUser)
	r.Post("/users/remove", h.HandleRemoveUser)
	r.Post("/announcements/new", h.HandlePublishAnnouncement)
	r.Post("/profile", h.HandleUpdateProfile)
	r.Post("/theme", h.HandleToggleTheme)

	return r
}
