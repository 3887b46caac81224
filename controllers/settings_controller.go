package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdh_inventory/app"
	"sdh_inventory/models"
)

type SettingsController struct{ *Srv }

func NewSettingsController(s *Srv) *SettingsController { return &SettingsController{Srv: s} }

// GET /api/settings/:type?all=1
func (sc *SettingsController) ListValues(c *gin.Context) {
	typ := c.Param("type")
	if !models.KnownSettingsType(typ) {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown settings list"})
		return
	}
	includeInactive := c.Query("all") == "1"
	items, err := sc.Repo.ListSettings(c.Request.Context(), typ, includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	values := make([]string, 0, len(items))
	for _, it := range items {
		values = append(values, it.Value)
	}
	c.JSON(http.StatusOK, app.H{"values": values, "items": items})
}

type settingsValueRequest struct {
	Value string `json:"value" binding:"required"`
}

// POST /api/settings/:type
func (sc *SettingsController) AddValue(c *gin.Context) {
	typ := c.Param("type")
	if !models.KnownSettingsType(typ) {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown settings list"})
		return
	}
	var in settingsValueRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := sc.Repo.UpsertSetting(c.Request.Context(), typ, in.Value, true); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// DELETE /api/settings/:type — deactivates, never deletes, so historical
// assets keep a valid reference
func (sc *SettingsController) RemoveValue(c *gin.Context) {
	typ := c.Param("type")
	if !models.KnownSettingsType(typ) {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown settings list"})
		return
	}
	var in settingsValueRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := sc.Repo.DeactivateSetting(c.Request.Context(), typ, in.Value); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
