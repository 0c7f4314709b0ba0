// internal/app/features/admin/handler.go
package admin

import (
	"net/http"

	uierrors "github.com/campussphere/campussphere/internal/app/features/errors"
	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/store/accounts"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/flash"
	"github.com/campussphere/campussphere/internal/app/system/pagenav"
	"github.com/campussphere/campussphere/internal/app/system/prefs"
	"github.com/campussphere/campussphere/internal/app/system/viewdata"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin dashboard.
type Handler struct {
	Registry   *state.Registry
	SessionMgr *auth.SessionManager
	Prefs      *prefs.Manager
	Accounts   *accounts.Store
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger

	pages *pagenav.PageSet
}

func NewHandler(db *mongo.Database, registry *state.Registry, sessionMgr *auth.SessionManager, prefsMgr *prefs.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Registry:   registry,
		SessionMgr: sessionMgr,
		Prefs:      prefsMgr,
		Accounts:   accounts.New(db),
		ErrLog:     errLog,
		Log:        logger,
		pages: pagenav.New("/admin",
			pagenav.Page{Slug: "overview", Title: "Overview", Icon: "📊"},
			pagenav.Page{Slug: "events", Title: "Events", Icon: "📅"},
			pagenav.Page{Slug: "proposals", Title: "Proposals", Icon: "📋"},
			pagenav.Page{Slug: "users", Title: "Users", Icon: "👥"},
			pagenav.Page{Slug: "announcements", Title: "Announcements", Icon: "📣"},
			pagenav.Page{Slug: "profile", Title: "Profile", Icon: "👤"},
		),
	}
}

func (h *Handler) workingSet(r *http.Request) (*state.Store, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return nil, false
	}
	return h.Registry.GetOrCreate(h.SessionMgr.StateID(r), u.Viewer()), true
}

type pageVM struct {
	viewdata.BaseVM
	Nav        []pagenav.Link
	ActivePage string
	Prefs      prefs.Prefs
	Viewer     models.User

	// overview
	UserCount         int
	EventCount        int
	ProposalCount     int
	PendingProposals  int
	PendingFacultyNum int

	// events
	Events []models.Event

	// proposals
	Proposals    []models.Proposal
	StatusFilter string

	// users
	Users          []models.User
	PendingFaculty []models.User
	UserTab        string

	// announcements
	Announcements []models.Announcement
}

func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	slug := chi.URLParam(r, "page")
	page, known := h.pages.Resolve(slug)
	if !known {
		h.Log.Warn("unknown admin page", zap.String("slug", slug))
		h.renderShell(w, r, st)
		return
	}

	vm := pageVM{
		BaseVM:     viewdata.NewBaseVM(r, page.Title, "/admin"),
		Nav:        h.pages.Links(page.Slug),
		ActivePage: page.Slug,
		Prefs:      h.Prefs.Load(r),
		Viewer:     st.Viewer(),
	}
	if n, ok := flash.Pop(w, r, h.SessionMgr); ok {
		vm.Notice = &n
	}
	vm.Banners = state.BannersFor(st.Announcements(), models.RoleAdmin)

	switch page.Slug {
	case "overview":
		vm.UserCount = len(st.Users())
		vm.EventCount = len(st.Events())
		proposals := st.Proposals()
		vm.ProposalCount = len(proposals)
		vm.PendingProposals = len(state.ProposalsByStatus(proposals, models.ProposalPending))
		vm.PendingFacultyNum = len(state.PendingFaculty(st.Users()))
	case "events":
		vm.Events = st.Events()
	case "proposals":
		vm.StatusFilter = query.Get(r, "status")
		vm.Proposals = state.ProposalsByStatus(st.Proposals(), vm.StatusFilter)
	case "users":
		vm.UserTab = query.Get(r, "tab")
		if vm.UserTab == "" {
			vm.UserTab = "pending"
		}
		vm.Users = st.Users()
		vm.PendingFaculty = state.PendingFaculty(vm.Users)
	case "announcements":
		vm.Announcements = st.Announcements()
	case "profile":
	}

	templates.Render(w, r, "admin_"+page.Slug, vm)
}

func (h *Handler) renderShell(w http.ResponseWriter, r *http.Request, st *state.Store) {
	vm := pageVM{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/admin"),
		Nav:    h.pages.Links(""),
		Prefs:  h.Prefs.Load(r),
		Viewer: st.Viewer(),
	}
	vm.Banners = state.BannersFor(st.Announcements(), models.RoleAdmin)
	templates.Render(w, r, "admin_shell", vm)
}
