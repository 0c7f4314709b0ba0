package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/campussphere/campussphere/internal/app/system/auth"
	"github.com/campussphere/campussphere/internal/domain/models"
)

const flashKey = "notice"

func init() {
	gob.Register(models.Notice{})
}

// Add queues a transient notice in the session. It is rendered once on
// the next page load and then cleared.
func Add(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, n models.Notice) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		return err
	}
	sess.AddFlash(n, flashKey)
	return sess.Save(r, w)
}

// Pop removes and returns the pending notice, if any. Saving the
// session is what clears the flash, so Pop writes the cookie.
func Pop(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager) (models.Notice, bool) {
	sess, err := sm.GetSession(r)
	if err != nil {
		return models.Notice{}, false
	}
	flashes := sess.Flashes(flashKey)
	if len(flashes) == 0 {
		return models.Notice{}, false
	}
	_ = sess.Save(r, w)

	n, ok := flashes[len(flashes)-1].(models.Notice)
	return n, ok
}
