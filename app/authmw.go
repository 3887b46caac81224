package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdh_inventory/db"
	"sdh_inventory/models"
	"sdh_inventory/session"
)

const AppSessionCookie = "app_session"

// effectiveRole prefers the role captured at login; sessions written
// before roles were recorded fall back to the stored user.
func effectiveRole(sessRole, userRole string) string {
	if sessRole != "" {
		return sessRole
	}
	return userRole
}

func AuthRequired(appSess *session.AppSessionStore, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AppSessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		as, err := appSess.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session"})
			return
		}

		// confirm the user still exists, drop the session otherwise
		u, err := repo.FindUserByID(c.Request.Context(), as.UserID)
		if err != nil {
			_ = appSess.Delete(c.Request.Context(), ck.Value)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		role := effectiveRole(as.Role, u.Role)
		c.Set("userID", u.ID)
		c.Set("username", u.Username)
		c.Set("isAdmin", role == models.RoleAdmin)

		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("isAdmin")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		if isAdmin, _ := v.(bool); !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
