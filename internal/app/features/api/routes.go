// internal/app/features/api/routes.go
package api

import "github.com/go-chi/chi/v5"

// Routes returns the JSON API router, mounted at /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/password", h.HandleChangePassword)
	r.Post("/logout", h.HandleLogout)
	r.Get("/departments", h.HandleDepartments)
	r.Get("/test", h.HandleTest)
	return r
}
