// internal/app/features/faculty/actions.go
package faculty

import (
	"net/http"

	"github.com/campussphere/campussphere/internal/app/system/flash"
	"github.com/campussphere/campussphere/internal/app/system/formutil"
	"github.com/campussphere/campussphere/internal/app/system/sanitize"
	"github.com/campussphere/campussphere/internal/domain/models"
	"go.uber.org/zap"
)

func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, n models.Notice, dest string) {
	if err := flash.Add(w, r, h.SessionMgr, n); err != nil {
		h.Log.Warn("flash notice not saved", zap.Error(err))
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// POST /faculty/proposals/new
func (h *Handler) HandleSubmitProposal(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/faculty/propose")
		return
	}

	title := sanitize.Text(formutil.Value(r, "title"))
	if title == "" {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Missing title",
			Message: "A proposal needs a title.",
			Kind:    models.NoticeError,
		}, "/faculty/propose")
		return
	}

	n := st.SubmitProposal(models.Proposal{
		Title:       title,
		Date:        formutil.Value(r, "date"),
		Venue:       sanitize.Text(formutil.Value(r, "venue")),
		Category:    formutil.Value(r, "category"),
		Description: sanitize.Text(formutil.Value(r, "description")),
		Submitter:   st.Viewer().Name,
	})
	h.flashAndRedirect(w, r, n, "/faculty/propose")
}

// POST /faculty/collab/new
func (h *Handler) HandleNewCollabPost(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/faculty/collab")
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

// POST /faculty/collab/interest
func (h *Handler) HandleExpressInterest(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/faculty/collab")
		return
	}

	n, link := st.ExpressInterest(formutil.Int64(r, "post_id"))
	if link != "" {
		http.Redirect(w, r, link, http.StatusSeeOther)
		return
	}
	h.flashAndRedirect(w, r, n, collabURL(r))
}

// POST /faculty/collab/delete
func (h *Handler) HandleDeleteCollabPost(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/faculty/collab")
		return
	}

	id := formutil.Int64(r, "post_id")
	viewer := st.Viewer()
	owned := false
	for _, p := range st.CollabPosts() {
		if p.ID == id && p.AuthorID == viewer.ID {
			owned = true
			break
		}
	}
	if !owned {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Not allowed",
			Message: "You can only delete your own posts.",
			Kind:    models.NoticeError,
		}, collabURL(r))
		return
	}
	h.flashAndRedirect(w, r, st.DeleteCollabPost(id), collabURL(r))
}

// POST /faculty/profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/faculty/profile")
		return
	}

	bio := sanitize.Text(formutil.Value(r, "bio"))
	interests := formutil.SplitList(formutil.Value(r, "interests"))

	n := st.UpdateProfile(bio, interests, "")

	p := h.Prefs.Load(r)
	p.Bio = bio
	p.Interests = interests
	if err := h.Prefs.Save(w, p); err != nil {
		h.Log.Warn("prefs cookie not saved", zap.Error(err))
	}

	h.flashAndRedirect(w, r, n, "/faculty/profile")
}

// POST /faculty/theme
func (h *Handler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/faculty/profile")
		return
	}

	p := h.Prefs.Load(r)
	p.DarkMode = formutil.Value(r, "theme") == "dark"
	if err := h.Prefs.Save(w, p); err != nil {
		h.Log.Warn("prefs cookie not saved", zap.Error(err))
	}
	http.Redirect(w, r, "/faculty/profile", http.StatusSeeOther)
}

func collabURL(r *http.Request) string {
	if tab := formutil.Value(r, "tab"); tab != "" {
		return "/faculty/collab?tab=" + tab
	}
	return "/faculty/collab"
}
