package dashboard

import (
	"net/http"
	"testing"

	"github.com/campussphere/campussphere/internal/testutil"
	"go.uber.org/zap"
)

func TestServeDashboard_RoleFanout(t *testing.T) {
	h := NewHandler(zap.NewNop())

	cases := []struct {
		name string
		user testutil.TestUser
		want string
	}{
		{"student", testutil.StudentUser(), "/student"},
		{"faculty", testutil.FacultyUser(), "/faculty"},
		{"admin", testutil.AdminUser(), "/admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard", tc.user)
			rec := testutil.NewRecorder()
			h.ServeDashboard(rec, req)
			rec.AssertRedirect(t, tc.want)
		})
	}
}

func TestServeDashboard_UnknownRole(t *testing.T) {
	h := NewHandler(zap.NewNop())

	u := testutil.StudentUser()
	u.Role = "mascot"
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard", u)
	rec := testutil.NewRecorder()
	h.ServeDashboard(rec, req)
	rec.AssertRedirect(t, "/")
}

func TestServeDashboard_NoUser(t *testing.T) {
	h := NewHandler(zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/dashboard")
	rec := testutil.NewRecorder()
	h.ServeDashboard(rec, req)
	rec.AssertRedirect(t, "/login")
}
