package logout

import (
	"net/http"

	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Registry   *state.Registry
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, registry *state.Registry, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Registry: registry, Log: logger}
}

// HandleLogout clears the session, releases the dashboard working set,
// and returns to the landing page. The preference cookie survives so
// theme and profile snapshot persist across visits.
// POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	stateID, err := h.SessionMgr.SignOut(w, r)
	if err != nil {
		h.Log.Warn("logout: session clear failed", zap.Error(err))
	}
	if stateID != "" {
		h.Registry.Release(stateID)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
