// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the /dashboard router. Sign-in is required; the
// handler fans out to the role-specific areas.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.ServeDashboard)
	return r
}
