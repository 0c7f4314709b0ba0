// internal/app/features/student/actions.go
package student

import (
	"fmt"
	"net/http"

	"github.com/campussphere/campussphere/internal/app/system/flash"
	"github.com/campussphere/campussphere/internal/app/system/formutil"
	"github.com/campussphere/campussphere/internal/app/system/sanitize"
	"github.com/campussphere/campussphere/internal/domain/models"
	"go.uber.org/zap"
)

// POST handlers. Each one runs a state action, flashes the returned
// notice, and redirects back to the page the form lives on.

func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, n models.Notice, dest string) {
	if err := flash.Add(w, r, h.SessionMgr, n); err != nil {
		h.Log.Warn("flash notice not saved", zap.Error(err))
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// POST /student/events/register
func (h *Handler) HandleRegisterEvent(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/discover")
		return
	}

	n := st.RegisterForEvent(formutil.Int64(r, "event_id"))
	h.flashAndRedirect(w, r, n, returnPage(r, "/student/discover"))
}

// POST /student/collab/interest
func (h *Handler) HandleExpressInterest(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/collab")
		return
	}

	n, link := st.ExpressInterest(formutil.Int64(r, "post_id"))
	if link != "" {
		// Interest is collected through the post's Google Form.
		http.Redirect(w, r, link, http.StatusSeeOther)
		return
	}
	h.flashAndRedirect(w, r, n, collabURL(r))
}

// POST /student/collab/new
func (h *Handler) HandleNewCollabPost(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/collab")
		return
	}

	title := sanitize.Text(formutil.Value(r, "title"))
	description := sanitize.Text(formutil.Value(r, "description"))
	if title == "" || description == "" {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Missing fields",
			Message: "A post needs both a title and a description.",
			Kind:    models.NoticeError,
		}, collabURL(r))
		return
	}

	n := st.CreateCollabPost(models.CollabPost{
		Title:       title,
		Description: description,
		Skills:      formutil.SplitList(formutil.Value(r, "skills")),
		GFormLink:   formutil.Value(r, "gform_link"),
	})
	h.flashAndRedirect(w, r, n, collabURL(r))
}

// POST /student/collab/delete
func (h *Handler) HandleDeleteCollabPost(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/collab")
		return
	}

	id := formutil.Int64(r, "post_id")
	if !ownsPost(st.CollabPosts(), id, st.Viewer().ID) {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Not allowed",
			Message: "You can only delete your own posts.",
			Kind:    models.NoticeError,
		}, collabURL(r))
		return
	}
	h.flashAndRedirect(w, r, st.DeleteCollabPost(id), collabURL(r))
}

// POST /student/achievements/add
func (h *Handler) HandleAddAchievement(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/achievements")
		return
	}

	title := sanitize.Text(formutil.Value(r, "title"))
	if title == "" {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Missing title",
			Message: "An achievement needs a title.",
			Kind:    models.NoticeError,
		}, "/student/achievements")
		return
	}

	n := st.AddAchievement(models.Achievement{
		Title:  title,
		Issuer: sanitize.Text(formutil.Value(r, "issuer")),
		Date:   formutil.Value(r, "date"),
		Kind:   formutil.Value(r, "kind"),
	})
	h.flashAndRedirect(w, r, n, "/student/achievements")
}

// POST /student/achievements/select
func (h *Handler) HandleToggleAchievementSelect(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/achievements")
		return
	}

	st.ToggleAchievementSelected(formutil.Int64(r, "achievement_id"))
	http.Redirect(w, r, "/student/achievements", http.StatusSeeOther)
}

// GET /student/achievements/export
func (h *Handler) HandleExportAchievements(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	picked := st.SelectedAchievements()
	if len(picked) == 0 {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "No Selection",
			Message: "Select at least one achievement to export.",
			Kind:    models.NoticeWarning,
		}, "/student/achievements")
		return
	}

	viewer := st.Viewer()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="achievements.txt"`)

	fmt.Fprintf(w, "Achievements - %s\n", viewer.Name)
	fmt.Fprintf(w, "%s, %s\n\n", viewer.Dept, viewer.Year)
	for _, a := range picked {
		fmt.Fprintf(w, "- %s (%s), %s, %s\n", a.Title, a.Kind, a.Issuer, a.Date)
	}
}

// POST /student/profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/profile")
		return
	}

	bio := sanitize.Text(formutil.Value(r, "bio"))
	interests := formutil.SplitList(formutil.Value(r, "interests"))
	year := formutil.Value(r, "year")

	n := st.UpdateProfile(bio, interests, year)

	p := h.Prefs.Load(r)
	p.Bio = bio
	p.Interests = interests
	p.Year = year
	if err := h.Prefs.Save(w, p); err != nil {
		h.Log.Warn("prefs cookie not saved", zap.Error(err))
	}

	h.flashAndRedirect(w, r, n, "/student/profile")
}

// POST /student/theme
func (h *Handler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/student/profile")
		return
	}

	p := h.Prefs.Load(r)
	p.DarkMode = formutil.Value(r, "theme") == "dark"
	if err := h.Prefs.Save(w, p); err != nil {
		h.Log.Warn("prefs cookie not saved", zap.Error(err))
	}
	http.Redirect(w, r, returnPage(r, "/student/profile"), http.StatusSeeOther)
}

// returnPage reads the hidden "from" field carried by action forms so
// the redirect lands back on the originating page.
func returnPage(r *http.Request, fallback string) string {
	from := formutil.Value(r, "from")
	if from == "" || from[0] != '/' {
		return fallback
	}
	return from
}

func collabURL(r *http.Request) string {
	if tab := formutil.Value(r, "tab"); tab != "" {
		return "/student/collab?tab=" + tab
	}
	return "/student/collab"
}

func ownsPost(posts []models.CollabPost, id, viewerID int64) bool {
	for _, p := range posts {
		if p.ID == id {
			return p.AuthorID == viewerID
		}
	}
	return false
}
