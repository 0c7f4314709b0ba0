// internal/app/features/faculty/handler.go
package faculty

import (
	"net/http"

	uierrors "github.com/campussphere/campussphere/internal/app/features/errors"
	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/flash"
	"github.com/campussphere/campussphere/internal/app/system/pagenav"
	"github.com/campussphere/campussphere/internal/app/system/prefs"
	"github.com/campussphere/campussphere/internal/app/system/viewdata"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the faculty dashboard.
type Handler struct {
	Registry   *state.Registry
	SessionMgr *auth.SessionManager
	Prefs      *prefs.Manager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger

	pages *pagenav.PageSet
}

func NewHandler(registry *state.Registry, sessionMgr *auth.SessionManager, prefsMgr *prefs.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Registry:   registry,
		SessionMgr: sessionMgr,
		Prefs:      prefsMgr,
		ErrLog:     errLog,
		Log:        logger,
		pages: pagenav.New("/faculty",
			pagenav.Page{Slug: "overview", Title: "Overview", Icon: "📊"},
			pagenav.Page{Slug: "propose", Title: "Propose Event", Icon: "📝"},
			pagenav.Page{Slug: "collab", Title: "Collab Board", Icon: "🤝"},
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
	ProposalCount int
	ApprovedCount int
	PendingCount  int
	Recent        []models.Proposal

	// propose
	MyProposals []models.Proposal

	// collab
	Posts []models.CollabPost
	Tab   string

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
		h.Log.Warn("unknown faculty page", zap.String("slug", slug))
		h.renderShell(w, r, st)
		return
	}

	viewer := st.Viewer()
	vm := pageVM{
		BaseVM:     viewdata.NewBaseVM(r, page.Title, "/faculty"),
		Nav:        h.pages.Links(page.Slug),
		ActivePage: page.Slug,
		Prefs:      h.Prefs.Load(r),
		Viewer:     viewer,
	}
	if n, ok := flash.Pop(w, r, h.SessionMgr); ok {
		vm.Notice = &n
	}
	vm.Banners = state.BannersFor(st.Announcements(), models.RoleFaculty)

	switch page.Slug {
	case "overview":
		mine := state.ProposalsBySubmitter(st.Proposals(), viewer.Name)
		vm.ProposalCount = len(mine)
		vm.ApprovedCount = len(state.ProposalsByStatus(mine, models.ProposalApproved))
		vm.PendingCount = len(state.ProposalsByStatus(mine, models.ProposalPending))
		vm.Recent = mine
		if len(vm.Recent) > 3 {
			vm.Recent = vm.Recent[:3]
		}
	case "propose":
		vm.MyProposals = state.ProposalsBySubmitter(st.Proposals(), viewer.Name)
	case "collab":
		vm.Tab = query.Get(r, "tab")
		if vm.Tab == "" {
			vm.Tab = state.TabAll
		}
		vm.Posts = state.FilterCollab(st.CollabPosts(), vm.Tab, viewer.ID)
	case "announcements":
		vm.Announcements = state.AnnouncementsFor(st.Announcements(), models.RoleFaculty)
	case "profile":
	}

	templates.Render(w, r, "faculty_"+page.Slug, vm)
}

func (h *Handler) renderShell(w http.ResponseWriter, r *http.Request, st *state.Store) {
	vm := pageVM{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/faculty"),
		Nav:    h.pages.Links(""),
		Prefs:  h.Prefs.Load(r),
		Viewer: st.Viewer(),
	}
	vm.Banners = state.BannersFor(st.Announcements(), models.RoleFaculty)
	templates.Render(w, r, "faculty_shell", vm)
}
