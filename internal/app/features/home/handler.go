package home

import (
	"net/http"

	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/system/viewdata"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the public landing page.
type Handler struct {
	Log *zap.Logger

	// showcase is a read-only sample working set used to surface
	// featured events to anonymous visitors.
	showcase *state.Store
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		showcase: state.NewStore(models.User{Name: "Guest"}),
	}
}

type landingVM struct {
	viewdata.BaseVM
	Departments []models.Department
	Featured    []models.Event
}

// ServeRoot renders the landing page: hero, featured events, and the
// department directory.
// GET /
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := landingVM{
		BaseVM:      viewdata.NewBaseVM(r, "Welcome", "/"),
		Departments: models.Departments,
		Featured:    state.FeaturedEvents(h.showcase.Events()),
	}

	templates.Render(w, r, "home", data)
}
