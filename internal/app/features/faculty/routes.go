// internal/app/features/faculty/routes.go
package faculty

import (
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the faculty dashboard router, mounted at /faculty.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("faculty"))

	r.Get("/", h.ServePage)
	r.Get("/{page}", h.ServePage)

	r.Post("/proposals/new", h.HandleSubmitProposal)
	r.Post("/collab/new", h.HandleNewCollabPost)
	r.Post("/collab/interest", h.HandleExpressInterest)
	r.Post("/collab/delete", h.HandleDeleteCollabPost)
	r.Post("/profile", h.HandleUpdateProfile)
	r.Post("/theme", h.HandleToggleTheme)

	return r
}
