package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sdh_inventory/models"
)

func TestEffectiveRole(t *testing.T) {
	for _, tc := range []struct {
		sessRole, userRole, want string
	}{
		{models.RoleAdmin, models.RoleReader, models.RoleAdmin},
		{models.RoleReader, models.RoleAdmin, models.RoleReader},
		{"", models.RoleAdmin, models.RoleAdmin},
		{"", models.RoleReader, models.RoleReader},
	} {
		if got := effectiveRole(tc.sessRole, tc.userRole); got != tc.want {
			t.Errorf("effectiveRole(%q, %q) = %q, want %q", tc.sessRole, tc.userRole, got, tc.want)
		}
	}
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set("isAdmin", role == models.RoleAdmin)
			}
		})
		r.GET("/x", AdminOnly(), func(c *gin.Context) { c.JSON(http.StatusOK, H{"ok": true}) })
		return r
	}

	for _, tc := range []struct {
		name string
		role string
		want int
	}{
		{"admin passes", models.RoleAdmin, http.StatusOK},
		{"reader forbidden", models.RoleReader, http.StatusForbidden},
		{"unauthenticated rejected", "", http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			router(tc.role).ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
