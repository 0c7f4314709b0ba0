// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/domain/models"
	"go.uber.org/zap"
)

// Handler routes /dashboard to the signed-in user's role area.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeDashboard redirects to the dashboard for the session's role.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var dest string
	switch u.Role {
	case models.RoleStudent:
		dest = "/student"
	case models.RoleFaculty:
		dest = "/faculty"
	case models.RoleAdmin:
		dest = "/admin"
	default:
		h.Log.Warn("session with unknown role", zap.String("role", u.Role))
		dest = "/"
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
