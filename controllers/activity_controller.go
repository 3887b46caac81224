package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sdh_inventory/app"
)

type ActivityController struct{ *Srv }

func NewActivityController(s *Srv) *ActivityController { return &ActivityController{Srv: s} }

// GET /api/activity?limit=
func (lc *ActivityController) ListActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entries, err := lc.Repo.ListActivity(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"entries": entries})
}
