// internal/app/features/student/handler.go
package student

import (
	"net/http"
	"strings"

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

// Handler serves the student dashboard.
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
		pages: pagenav.New("/student",
			pagenav.Page{Slug: "overview", Title: "Overview", Icon: "📊"},
			pagenav.Page{Slug: "discover", Title: "Discover Events", Icon: "🔍"},
			pagenav.Page{Slug: "my-events", Title: "My Events", Icon: "🎟"},
			pagenav.Page{Slug: "collab", Title: "Collab Board", Icon: "🤝"},
			pagenav.Page{Slug: "achievements", Title: "Achievements", Icon: "🏆"},
			pagenav.Page{Slug: "announcements", Title: "Announcements", Icon: "📣"},
			pagenav.Page{Slug: "profile", Title: "Profile", Icon: "👤"},
		),
	}
}

// workingSet returns the viewer's dashboard state, reseeding it when
// the session outlived the registry.
func (h *Handler) workingSet(r *http.Request) (*state.Store, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return nil, false
	}
	return h.Registry.GetOrCreate(h.SessionMgr.StateID(r), u.Viewer()), true
}

// pageVM is the view model for every student dashboard page.
type pageVM struct {
	viewdata.BaseVM
	Nav        []pagenav.Link
	ActivePage string
	Prefs      prefs.Prefs
	Viewer     models.User

	// overview
	RegisteredCount   int
	InterestedCount   int
	AchievementCount  int
	AnnouncementCount int
	Upcoming          []models.Event

	// discover
	Events       []models.Event
	Categories   []string
	Category     string
	EligibleOnly bool
	Registered   map[int64]bool

	// my-events
	MyEvents []models.Event

	// collab
	Posts []models.CollabPost
	Tab   string

	// achievements
	Achievements []models.Achievement
	Selected     map[int64]bool

	// announcements
	Announcements []models.Announcement
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /student and /student/{page}                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	slug := chi.URLParam(r, "page")
	page, known := h.pages.Resolve(slug)
	if !known {
		h.Log.Warn("unknown student page", zap.String("slug", slug))
		h.renderShell(w, r, st)
		return
	}

	viewer := st.Viewer()
	vm := pageVM{
		BaseVM:     viewdata.NewBaseVM(r, page.Title, "/student"),
		Nav:        h.pages.Links(page.Slug),
		ActivePage: page.Slug,
		Prefs:      h.Prefs.Load(r),
		Viewer:     viewer,
	}
	if n, ok := flash.Pop(w, r, h.SessionMgr); ok {
		vm.Notice = &n
	}
	vm.Banners = state.BannersFor(st.Announcements(), models.RoleStudent)

	switch page.Slug {
	case "overview":
		h.fillOverview(&vm, st)
	case "discover":
		vm.Category = query.Get(r, "category")
		vm.EligibleOnly = query.Get(r, "eligible") == "1"
		vm.Events = state.FilterEvents(st.Events(), vm.Category, vm.EligibleOnly, viewer.Dept)
		vm.Categories = categories(st.Events())
		vm.Registered = st.RegisteredEventIDs()
	case "my-events":
		vm.MyEvents = st.RegisteredEvents()
	case "collab":
		vm.Tab = query.Get(r, "tab")
		if vm.Tab == "" {
			vm.Tab = state.TabAll
		}
		vm.Posts = state.FilterCollab(st.CollabPosts(), vm.Tab, viewer.ID)
	case "achievements":
		vm.Achievements = st.Achievements()
		vm.Selected = st.SelectedAchievementIDs()
	case "announcements":
		vm.Announcements = state.AnnouncementsFor(st.Announcements(), models.RoleStudent)
	case "profile":
		// Viewer and Prefs carry everything the form needs.
	}

	templates.Render(w, r, "student_"+strings.ReplaceAll(page.Slug, "-", "_"), vm)
}

// renderShell shows the dashboard frame with no section selected.
func (h *Handler) renderShell(w http.ResponseWriter, r *http.Request, st *state.Store) {
	vm := pageVM{
		BaseVM:     viewdata.NewBaseVM(r, "Dashboard", "/student"),
		Nav:        h.pages.Links(""),
		Prefs:      h.Prefs.Load(r),
		Viewer:     st.Viewer(),
	}
	vm.Banners = state.BannersFor(st.Announcements(), models.RoleStudent)
	templates.Render(w, r, "student_shell", vm)
}

func (h *Handler) fillOverview(vm *pageVM, st *state.Store) {
	vm.RegisteredCount = len(st.RegisteredEventIDs())
	vm.AchievementCount = len(st.Achievements())
	vm.AnnouncementCount = len(state.AnnouncementsFor(st.Announcements(), models.RoleStudent))
	for _, p := range st.CollabPosts() {
		if p.HasInterest(vm.Viewer.ID) {
			vm.InterestedCount++
		}
	}
	vm.Upcoming = st.RegisteredEvents()
	if len(vm.Upcoming) > 3 {
		vm.Upcoming = vm.Upcoming[:3]
	}
}

// categories lists the distinct event categories in list order.
func categories(events []models.Event) []string {
	seen := make(map[string]struct{}, len(events))
	var out []string
	for _, e := range events {
		key := strings.ToLower(e.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
