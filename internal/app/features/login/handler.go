package login

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	uierrors "github.com/campussphere/campussphere/internal/app/features/errors"
	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/store/accounts"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/authutil"
	"github.com/campussphere/campussphere/internal/app/system/timeouts"
	"github.com/campussphere/campussphere/internal/app/system/viewdata"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Accounts      *accounts.Store
	SessionMgr    *auth.SessionManager
	Registry      *state.Registry
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, registry *state.Registry, errLog *uierrors.ErrorLogger, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts:      accounts.New(db),
		SessionMgr:    sessionMgr,
		Registry:      registry,
		ErrLog:        errLog,
		Log:           logger,
		GoogleEnabled: googleEnabled,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.GoogleEnabled,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Accounts.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		h.renderFormWithError(w, r, "Invalid email or password.", email)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "DB find account", err, "A server error occurred.", "/login")
		return
	}

	if !authutil.CheckPassword(acct.PasswordHash, password) {
		h.renderFormWithError(w, r, "Invalid email or password.", email)
		return
	}
	if acct.Suspended {
		h.renderFormWithError(w, r, "Your account has been suspended. Please contact an administrator.", email)
		return
	}
	if acct.RequiresApproval() {
		h.renderFormWithError(w, r, "Your faculty account is awaiting admin approval.", email)
		return
	}

	h.createSessionAndRedirect(w, r, acct, strings.TrimSpace(r.FormValue("return")))
}

// createSessionAndRedirect seeds the dashboard working set, writes
// the session, and sends the user to their dashboard.
func (h *Handler) createSessionAndRedirect(w http.ResponseWriter, r *http.Request, acct models.Account, returnURL string) {
	viewer := models.User{
		ID:     viewerID(acct),
		Name:   acct.FullName,
		Email:  acct.Email,
		Role:   acct.Role,
		Dept:   acct.Department,
		Year:   acct.Year,
		Status: acct.Status,
	}
	stateID, _ := h.Registry.Create(viewer)

	sessionUser := &auth.SessionUser{
		ID:    acct.ID.Hex(),
		Name:  acct.FullName,
		Email: acct.Email,
		Role:  acct.Role,
		Dept:  acct.Department,
	}
	if err := h.SessionMgr.SignIn(w, r, sessionUser, stateID); err != nil {
		h.Registry.Release(stateID)
		h.Log.Error("save session failed", zap.Error(err), zap.String("email", acct.Email))
		h.renderFormWithError(w, r, "Unable to create session. Please try again.", acct.Email)
		return
	}

	h.Log.Info("login",
		zap.String("email", acct.Email),
		zap.String("role", acct.Role))

	dest := urlutil.SafeReturn(returnURL, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// viewerID derives a stable numeric id for the working set from the
// account's object id timestamp.
func viewerID(acct models.Account) int64 {
	id := acct.ID.Timestamp().UnixMilli()
	if id <= 0 {
		if n, err := strconv.ParseInt(acct.ID.Hex()[:8], 16, 64); err == nil {
			id = n
		} else {
			id = 1
		}
	}
	return id
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" {
		ret = query.Get(r, "return")
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Login", "/"),
		Error:         msg,
		Email:         email,
		ReturnURL:     ret,
		GoogleEnabled: h.GoogleEnabled,
	})
}
