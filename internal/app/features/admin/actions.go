// internal/app/features/admin/actions.go
package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/campussphere/campussphere/internal/app/system/flash"
	"github.com/campussphere/campussphere/internal/app/system/formutil"
	"github.com/campussphere/campussphere/internal/app/system/normalize"
	"github.com/campussphere/campussphere/internal/app/system/sanitize"
	"github.com/campussphere/campussphere/internal/app/system/timeouts"
	"github.com/campussphere/campussphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, n models.Notice, dest string) {
	if err := flash.Add(w, r, h.SessionMgr, n); err != nil {
		h.Log.Warn("flash notice not saved", zap.Error(err))
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// eventFromForm builds an event from the create/update form.
func eventFromForm(r *http.Request) models.Event {
	eligibility := formutil.Value(r, "eligibility")
	if eligibility != models.EligibilityDept {
		eligibility = models.EligibilityAll
	}
	return models.Event{
		ID:          formutil.Int64(r, "event_id"),
		Title:       sanitize.Text(formutil.Value(r, "title")),
		Date:        formutil.Value(r, "date"),
		Time:        formutil.Value(r, "time"),
		Venue:       sanitize.Text(formutil.Value(r, "venue")),
		Category:    formutil.Value(r, "category"),
		Dept:        formutil.Value(r, "dept"),
		Description: sanitize.Text(formutil.Value(r, "description")),
		Eligibility: eligibility,
		Featured:    formutil.Checked(r, "featured"),
		GFormLink:   formutil.Value(r, "gform_link"),
	}
}

// POST /admin/events/new
func (h *Handler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/events")
		return
	}

	e := eventFromForm(r)
	if e.Title == "" {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Missing title",
			Message: "An event needs a title.",
			Kind:    models.NoticeError,
		}, "/admin/events")
		return
	}
	e.ID = 0
	h.flashAndRedirect(w, r, st.CreateEvent(e), "/admin/events")
}

// POST /admin/events/update
func (h *Handler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/events")
		return
	}
	h.flashAndRedirect(w, r, st.UpdateEvent(eventFromForm(r)), "/admin/events")
}

// POST /admin/events/feature
func (h *Handler) HandleToggleFeatured(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/events")
		return
	}
	h.flashAndRedirect(w, r, st.ToggleFeatured(formutil.Int64(r, "event_id")), "/admin/events")
}

// POST /admin/events/delete
func (h *Handler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/events")
		return
	}
	h.flashAndRedirect(w, r, st.DeleteEvent(formutil.Int64(r, "event_id")), "/admin/events")
}

// POST /admin/proposals/review
func (h *Handler) HandleReviewProposal(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/proposals")
		return
	}

	id := formutil.Int64(r, "proposal_id")
	action := formutil.Value(r, "action")
	feedback := sanitize.Text(formutil.Value(r, "feedback"))

	n := st.ActOnProposal(id, action, feedback)

	// An approved proposal becomes a listed event.
	if action == "approve" && n.Kind == models.NoticeSuccess {
		for _, p := range st.Proposals() {
			if p.ID == id {
				st.CreateEvent(models.Event{
					Title:       p.Title,
					Date:        p.Date,
					Venue:       p.Venue,
					Category:    p.Category,
					Description: p.Description,
					Eligibility: models.EligibilityAll,
				})
				break
			}
		}
	}

	dest := "/admin/proposals"
	if status := formutil.Value(r, "status"); status != "" {
		dest += "?status=" + status
	}
	h.flashAndRedirect(w, r, n, dest)
}

// POST /admin/users/approve
func (h *Handler) HandleApproveUser(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/users")
		return
	}

	id := formutil.Int64(r, "user_id")
	email := ""
	for _, u := range st.Users() {
		if u.ID == id {
			email = u.Email
			break
		}
	}

	n := st.ApproveUser(id)

	// Best-effort: verify the durable account too when one exists.
	if h.Accounts != nil && email != "" && n.Kind == models.NoticeSuccess {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if err := h.Accounts.SetStatus(ctx, email, models.StatusVerified); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Warn("account status not synced", zap.String("email", email), zap.Error(err))
		}
	}

	h.flashAndRedirect(w, r, n, "/admin/users")
}

// POST /admin/users/deny
func (h *Handler) HandleDenyUser(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/users")
		return
	}
	h.flashAndRedirect(w, r, st.DenyUser(formutil.Int64(r, "user_id")), "/admin/users")
}

// POST /admin/users/remove
func (h *Handler) HandleRemoveUser(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/users")
		return
	}
	h.flashAndRedirect(w, r, st.RemoveUser(formutil.Int64(r, "user_id")), "/admin/users?tab=all")
}

// POST /admin/announcements/new
func (h *Handler) HandlePublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/announcements")
		return
	}

	title := sanitize.Text(formutil.Value(r, "title"))
	message := sanitize.Text(formutil.Value(r, "message"))
	if title == "" || message == "" {
		h.flashAndRedirect(w, r, models.Notice{
			Title:   "Missing fields",
			Message: "An announcement needs a title and a message.",
			Kind:    models.NoticeError,
		}, "/admin/announcements")
		return
	}

	n := st.PublishAnnouncement(models.Announcement{
		Title:    title,
		Message:  message,
		Target:   normalize.Target(formutil.Value(r, "target")),
		Priority: normalize.Priority(formutil.Value(r, "priority")),
		Banner:   formutil.Checked(r, "banner"),
	})
	h.flashAndRedirect(w, r, n, "/admin/announcements")
}

// POST /admin/profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workingSet(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/profile")
		return
	}

	bio := sanitize.Text(formutil.Value(r, "bio"))
	n := st.UpdateProfile(bio, nil, "")

	p := h.Prefs.Load(r)
	p.Bio = bio
	if err := h.Prefs.Save(w, p); err != nil {
		h.Log.Warn("prefs cookie not saved", zap.Error(err))
	}

	h.flashAndRedirect(w, r, n, "/admin/profile")
}

// POST /admin/theme
func (h *Handler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/profile")
		return
	}

	p := h.Prefs.Load(r)
	p.DarkMode = formutil.Value(r, "theme") == "dark"
	if err := h.Prefs.Save(w, p); err != nil {
		h.Log.Warn("prefs cookie not saved", zap.Error(err))
	}
	http.Redirect(w, r, "/admin/profile", http.StatusSeeOther)
}
