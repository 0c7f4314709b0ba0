package prefs

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
)

const cookieName = "campussphere_prefs"

// Prefs is the per-user preference cache carried in an encoded cookie:
// the theme choice plus a snapshot of the editable profile fields so
// the dashboard shell renders them without touching the working set.
type Prefs struct {
	DarkMode  bool
	Bio       string
	Interests []string
	Year      string
}

// Manager encodes and decodes the preference cookie.
type Manager struct {
	sc     *securecookie.SecureCookie
	secure bool
}

// NewManager derives the cookie codec from the session key. The secure
// flag mirrors the session cookie settings.
func NewManager(key string, secure bool) (*Manager, error) {
	if len(key) < 32 {
		return nil, fmt.Errorf("prefs cookie key too short: need 32+ chars, got %d", len(key))
	}
	return &Manager{
		sc:     securecookie.New([]byte(key), nil),
		secure: secure,
	}, nil
}

// Load reads the preference cookie. A missing or corrupt cookie yields
// defaults, never an error.
func (m *Manager) Load(r *http.Request) Prefs {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return Prefs{}
	}
	var p Prefs
	if err := m.sc.Decode(cookieName, c.Value, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes the preference cookie.
func (m *Manager) Save(w http.ResponseWriter, p Prefs) error {
	encoded, err := m.sc.Encode(cookieName, p)
	if err != nil {
		return fmt.Errorf("encode prefs cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the preference cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   cookieName,
		Path:   "/",
		MaxAge: -1,
	})
}
