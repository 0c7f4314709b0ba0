package register

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	uierrors "github.com/campussphere/campussphere/internal/app/features/errors"
	"github.com/campussphere/campussphere/internal/app/store/accounts"
	"github.com/campussphere/campussphere/internal/app/system/authutil"
	"github.com/campussphere/campussphere/internal/app/system/normalize"
	"github.com/campussphere/campussphere/internal/app/system/timeouts"
	"github.com/campussphere/campussphere/internal/app/system/viewdata"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// emailPattern mirrors the client-side check: something@something.tld
// with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Handler struct {
	Accounts *accounts.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts: accounts.New(db),
		ErrLog:   errLog,
		Log:      logger,
	}
}

type registerFormData struct {
	viewdata.BaseVM
	Error       string
	Success     string
	FullName    string
	Email       string
	Role        string
	Department  string
	Departments []models.Department
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /register                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "register", registerFormData{
		BaseVM:      viewdata.NewBaseVM(r, "Create account", "/"),
		Role:        models.RoleStudent,
		Departments: models.Departments,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /register                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/register")
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.TrimSpace(r.FormValue("email"))
	role := normalize.Role(r.FormValue("role"))
	department := strings.TrimSpace(r.FormValue("department"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	form := registerFormData{
		BaseVM:      viewdata.NewBaseVM(r, "Create account", "/"),
		FullName:    fullName,
		Email:       email,
		Role:        role,
		Department:  department,
		Departments: models.Departments,
	}

	if msg := Validate(fullName, email, role, department, password, confirm); msg != "" {
		form.Error = msg
		templates.Render(w, r, "register", form)
		return
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash password", err, "A server error occurred.", "/register")
		return
	}

	status := models.StatusVerified
	if role == models.RoleFaculty {
		status = models.StatusPending
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	_, err = h.Accounts.Create(ctx, models.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Department:   department,
		Status:       status,
	})
	switch {
	case errors.Is(err, accounts.ErrDuplicateEmail):
		form.Error = "An account with that email already exists."
		templates.Render(w, r, "register", form)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "DB create account", err, "A server error occurred.", "/register")
		return
	}

	h.Log.Info("account registered",
		zap.String("email", email),
		zap.String("role", role))

	if status == models.StatusPending {
		http.Redirect(w, r, "/login?registered=pending", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// Validate applies the registration rules and returns a user-facing
// message for the first failure, or "" when the input is acceptable.
func Validate(fullName, email, role, department, password, confirm string) string {
	if fullName == "" || email == "" || role == "" || department == "" || password == "" || confirm == "" {
		return "All fields are required."
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address."
	}
	if role != models.RoleStudent && role != models.RoleFaculty {
		return "Role must be student or faculty."
	}
	if err := authutil.ValidatePassword(password); err != nil {
		return "Password must be at least 6 characters."
	}
	if password != confirm {
		return "Passwords do not match."
	}
	return ""
}
