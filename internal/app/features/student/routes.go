// internal/app/features/student/routes.go
package student

import (
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the student dashboard router, mounted at /student.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("student"))

	r.Get("/", h.ServePage)
	r.Get("/{page}", h.ServePage)

	r.Post("/events/register", h.HandleRegisterEvent)
	r.Post("/collab/interest", h.HandleExpressInterest)
	r.Post("/collab/new", h.HandleNewCollabPost)
	r.Post("/collab/delete", h.HandleDeleteCollabPost)
	r.Post("/achievements/add", h.HandleAddAchievement)
	r.Post("/achievements/select", h.HandleToggleAchievementSelect)
	r.Get("/achievements/export", h.HandleExportAchievements)
	r.Post("/profile", h.HandleUpdateProfile)
	r.Post("/theme", h.HandleToggleTheme)

	return r
}
