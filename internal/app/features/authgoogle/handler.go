// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	uierrors "github.com/campussphere/campussphere/internal/app/features/errors"
	"github.com/campussphere/campussphere/internal/app/state"
	"github.com/campussphere/campussphere/internal/app/store/accounts"
	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/app/system/timeouts"
	"github.com/campussphere/campussphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler handles Google OAuth sign-in. The flow only signs in
// accounts that already exist; registration stays on /register.
type Handler struct {
	Accounts   *accounts.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Registry   *state.Registry
	ErrLog     *uierrors.ErrorLogger

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g. "https://campussphere.edu/auth/google/callback"
}

// NewHandler creates a new Google OAuth handler.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	registry *state.Registry,
	errLog *uierrors.ErrorLogger,
	clientID, clientSecret, baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Accounts:     accounts.New(db),
		Log:          logger,
		SessionMgr:   sessionMgr,
		Registry:     registry,
		ErrLog:       errLog,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	stateNonce, err := generateState()
	if err != nil {
		h.Log.Error("failed to generate OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	sess, _ := h.SessionMgr.GetSession(r)
	sess.Values["oauth_state"] = stateNonce
	if err := sess.Save(r, w); err != nil {
		h.Log.Error("save oauth state failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(stateNonce), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google/callback                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess, _ := h.SessionMgr.GetSession(r)
	wantState, _ := sess.Values["oauth_state"].(string)
	delete(sess.Values, "oauth_state")
	_ = sess.Save(r, w)

	if wantState == "" || r.URL.Query().Get("state") != wantState {
		h.Log.Warn("OAuth state mismatch")
		http.Redirect(w, r, "/login?error=state_mismatch", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login?error=missing_code", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("OAuth exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=exchange_failed", http.StatusSeeOther)
		return
	}

	email, err := fetchEmail(ctx, h.oauth2Config(), token)
	if err != nil {
		h.Log.Error("fetch Google userinfo failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=userinfo_failed", http.StatusSeeOther)
		return
	}

	acct, err := h.Accounts.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		h.Log.Info("Google sign-in for unknown email", zap.String("email", email))
		http.Redirect(w, r, "/register?email="+email, http.StatusSeeOther)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "DB find account", err, "A server error occurred.", "/login")
		return
	}

	if acct.Suspended || acct.RequiresApproval() {
		http.Redirect(w, r, "/login?error=not_allowed", http.StatusSeeOther)
		return
	}

	viewer := models.User{
		ID:     acct.ID.Timestamp().UnixMilli(),
		Name:   acct.FullName,
		Email:  acct.Email,
		Role:   acct.Role,
		Dept:   acct.Department,
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
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	h.Log.Info("google login", zap.String("email", acct.Email), zap.String("role", acct.Role))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// fetchEmail retrieves the verified email from Google's userinfo
// endpoint.
func fetchEmail(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (string, error) {
	client := cfg.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" || !info.VerifiedEmail {
		return "", fmt.Errorf("no verified email in userinfo")
	}
	return strings.ToLower(info.Email), nil
}

// generateState returns a cryptographically secure nonce.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
