// internal/app/features/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/store/accounts"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/authutil"
	"github.com/campussphere/campussphere/internal/app/system/normalize"
	"github.com/campussphere/campussphere/internal/app/system/timeouts"
	"github.com/campussphere/campussphere/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the JSON API used by script clients and the SPA-style
// front-end pieces. Browser pages use the HTML handlers instead.
type Handler struct {
	Accounts   *accounts.Store
	SessionMgr *auth.SessionManager
	Registry   *state.Registry
	Log        *zap.Logger

	validate *validator.Validate
}

// NewHandler creates a new API handler.
func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, registry *state.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts:   accounts.New(db),
		SessionMgr: sessionMgr,
		Registry:   registry,
		Log:        logger,
		validate:   newValidator(),
	}
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/register                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

type registerRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,oneof=student faculty"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year" validate:"omitempty,max=40"`
}

type registerResponse struct {
	Message          string `json:"message"`
	RequiresApproval bool   `json:"requires_approval"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Role = normalize.Role(req.Role)
	req.Email = normalize.Email(req.Email)

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("hash password failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	status := models.StatusVerified
	if req.Role == models.RoleFaculty {
		status = models.StatusPending
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct := models.Account{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Department:   strings.TrimSpace(req.Department),
		Year:         strings.TrimSpace(req.Year),
		Status:       status,
	}
	if _, err := h.Accounts.Create(ctx, acct); err != nil {
		if errors.Is(err, accounts.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		h.Log.Error("create account failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	msg := "Account created. You can sign in now."
	if status == models.StatusPending {
		msg = "Account created. Faculty accounts require admin approval before sign-in."
	}
	h.Log.Info("api register", zap.String("email", req.Email), zap.String("role", req.Role))
	writeJSON(w, http.StatusCreated, registerResponse{
		Message:          msg,
		RequiresApproval: status == models.StatusPending,
	})
}

// validationMessage renders the first field failure as a human
// readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return strings.ToLower(fe.Field()) + " is required"
	case "email":
		return "email address is not valid"
	case "min":
		if fe.Field() == "Password" {
			return "password must be at least 6 characters"
		}
		return strings.ToLower(fe.Field()) + " is too short"
	case "oneof":
		return "role must be student or faculty"
	default:
		return strings.ToLower(fe.Field()) + " is not valid"
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/login                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string   `json:"message"`
	User    userJSON `json:"user"`
}

type userJSON struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Email = normalize.Email(req.Email)
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Accounts.FindByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	case err != nil:
		h.Log.Error("find account failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "a server error occurred")
		return
	}

	if !authutil.CheckPassword(acct.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if acct.Suspended {
		writeError(w, http.StatusForbidden, "account suspended")
		return
	}
	if acct.RequiresApproval() {
		writeError(w, http.StatusForbidden, "faculty account awaiting approval")
		return
	}

	viewer := models.User{
		ID:     acct.ID.Timestamp().UnixMilli(),
		Name:   acct.FullName,
		Email:  acct.Email,
		Role:   acct.Role,
		Dept:   acct.Department,
		Year:   acct.Year,
		Status: acct.Status,
	}
	stateID, _ := h.Registry.Create(viewer)

	err = h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    acct.ID.Hex(),
		Name:  acct.FullName,
		Email: acct.Email,
		Role:  acct.Role,
		Dept:  acct.Department,
	}, stateID)
	if err != nil {
		h.Registry.Release(stateID)
		h.Log.Error("save session failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to create session")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "signed in",
		User: userJSON{
			ID:         acct.ID.Hex(),
			FullName:   acct.FullName,
			Email:      acct.Email,
			Role:       acct.Role,
			Department: acct.Department,
		},
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/password                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// HandleChangePassword rotates the signed-in user's password after
// re-checking the current one.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, passwordValidationMessage(err))
		return
	}

	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Accounts.FindByID(ctx, id)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		writeError(w, http.StatusUnauthorized, "account no longer exists")
		return
	case err != nil:
		h.Log.Error("find account failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "a server error occurred")
		return
	}

	if !authutil.CheckPassword(acct.PasswordHash, req.CurrentPassword) {
		writeError(w, http.StatusForbidden, "current password is incorrect")
		return
	}

	hash, err := authutil.HashPassword(req.NewPassword)
	if err != nil {
		h.Log.Error("hash password failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not update password")
		return
	}
	if err := h.Accounts.UpdatePasswordHash(ctx, acct.ID, hash); err != nil {
		h.Log.Error("update password failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not update password")
		return
	}

	h.Log.Info("api password change", zap.String("email", acct.Email))
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func passwordValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		if fe.Field() == "CurrentPassword" {
			return "current_password is required"
		}
		return "new_password is required"
	case "min":
		return "new password must be at least 6 characters"
	default:
		return "invalid request"
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/logout                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	stateID, err := h.SessionMgr.SignOut(w, r)
	if err != nil {
		h.Log.Warn("sign-out failed", zap.Error(err))
	}
	if stateID != "" {
		h.Registry.Release(stateID)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/departments                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDepartments(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.Departments)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/test                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "campussphere-api"})
}
