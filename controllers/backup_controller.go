package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdh_inventory/app"
	"sdh_inventory/inventory"
	"sdh_inventory/models"
)

type BackupController struct{ *Srv }

func NewBackupController(s *Srv) *BackupController { return &BackupController{Srv: s} }

// GET /api/backup — full JSON snapshot, assets and settings including
// deleted/inactive entries
func (bc *BackupController) Export(c *gin.Context) {
	snap, err := bc.Assets.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventory-backup.json"`)
	c.JSON(http.StatusOK, snap)
}

// POST /api/backup/restore
func (bc *BackupController) Restore(c *gin.Context) {
	var snap inventory.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := bc.Assets.RestoreSnapshot(c.Request.Context(), &snap); err != nil {
		writeError(c, err)
		return
	}
	_, _ = bc.Repo.LogActivity(c.Request.Context(), actorName(c), models.ActivityBackupRestored, "", "")
	c.JSON(http.StatusOK, app.H{
		"ok":       true,
		"assets":   len(snap.Assets),
		"settings": len(snap.Settings),
	})
}
