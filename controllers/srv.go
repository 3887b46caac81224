// controllers/srv.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sdh_inventory/app"
	"sdh_inventory/db"
	"sdh_inventory/inventory"
	"sdh_inventory/session"
)

type Srv struct {
	Repo      *db.Repo
	Assets    *inventory.Manager
	AppSess   *session.AppSessionStore
	WebOrigin string
	Cfg       app.Config
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Repo:      repo,
		Assets:    inventory.NewManager(repo, repo),
		AppSess:   a.AppSessions(),
		WebOrigin: a.Config.WebOrigin,
		Cfg:       a.Config,
	}
}

// --- helpers ---

func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, userID, role, ip, ua string) error {
	_ = s.Repo.TouchUserLogin(ctx, userID, ip, ua) // telemetry, never blocks login
	id := uuid.NewString()
	if err := s.AppSess.Create(ctx, id, userID, role); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.Cfg.SessionTTL)
	return nil
}

func actorName(c *gin.Context) string {
	v, _ := c.Get("username")
	name, _ := v.(string)
	return name
}

// writeError maps core error kinds onto status codes. Validation failures
// are the user's to fix, stale references mean refresh, store failures are
// surfaced verbatim with no retry.
func writeError(c *gin.Context, err error) {
	var ve *inventory.ValidationError
	var pe *inventory.PersistenceError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, app.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, inventory.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrAssetNotDeleted):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	case errors.As(err, &pe):
		c.JSON(http.StatusBadGateway, app.H{"error": pe.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
