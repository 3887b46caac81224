// controllers/asset_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sdh_inventory/app"
	"sdh_inventory/db"
	"sdh_inventory/inventory"
	"sdh_inventory/models"
)

type AssetController struct{ *Srv }

func NewAssetController(s *Srv) *AssetController { return &AssetController{Srv: s} }

// GET /api/assets?q=&category=&page=&size=
func (ac *AssetController) ListAssets(c *gin.Context) {
	q := db.AssetQuery{
		Q:        c.Query("q"),
		Category: c.Query("category"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "50"))

	res, err := ac.Repo.SearchAssets(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"total": res.Total, "assets": res.Assets})
}

// GET /api/trash
func (ac *AssetController) ListTrash(c *gin.Context) {
	q := db.AssetQuery{Deleted: true}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "50"))

	res, err := ac.Repo.SearchAssets(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"total": res.Total, "assets": res.Assets})
}

// GET /api/assets/:id
func (ac *AssetController) GetAsset(c *gin.Context) {
	a, err := ac.Assets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"asset": a})
}

// POST /api/assets
func (ac *AssetController) CreateAsset(c *gin.Context) {
	var in inventory.AssetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	a, err := ac.Assets.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	_, _ = ac.Repo.LogActivity(c.Request.Context(), actorName(c), models.ActivityCreated, a.ID, a.Name)
	c.JSON(http.StatusCreated, a)
}

// PUT /api/assets/:id
func (ac *AssetController) UpdateAsset(c *gin.Context) {
	var patch inventory.AssetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	a, err := ac.Assets.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	_, _ = ac.Repo.LogActivity(c.Request.Context(), actorName(c), models.ActivityUpdated, a.ID, a.Name)
	c.JSON(http.StatusOK, a)
}

// DELETE /api/assets/:id — soft delete, recoverable from the trash
func (ac *AssetController) SoftDeleteAsset(c *gin.Context) {
	id := c.Param("id")
	a, err := ac.Assets.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := ac.Assets.SoftDelete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	_, _ = ac.Repo.LogActivity(c.Request.Context(), actorName(c), models.ActivitySoftDeleted, a.ID, a.Name)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /api/assets/:id/restore
func (ac *AssetController) RestoreAsset(c *gin.Context) {
	id := c.Param("id")
	a, err := ac.Assets.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := ac.Assets.Restore(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	_, _ = ac.Repo.LogActivity(c.Request.Context(), actorName(c), models.ActivityRestored, a.ID, a.Name)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// DELETE /api/assets/:id/purge — permanent, only from the trash
func (ac *AssetController) PurgeAsset(c *gin.Context) {
	id := c.Param("id")
	a, err := ac.Assets.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := ac.Assets.Purge(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	_, _ = ac.Repo.LogActivity(c.Request.Context(), actorName(c), models.ActivityPurged, a.ID, a.Name)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/notifications — recomputed from scratch on every call
func (ac *AssetController) ListNotifications(c *gin.Context) {
	assets, err := ac.Assets.Active(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"notifications": inventory.Upcoming(assets, time.Now())})
}

// GET /api/stats
func (ac *AssetController) Stats(c *gin.Context) {
	assets, err := ac.Assets.Active(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	byCategory := map[string]int{}
	for _, a := range assets {
		byCategory[a.Category]++
	}
	c.JSON(http.StatusOK, app.H{
		"count":      len(assets),
		"totalValue": inventory.TotalValue(assets),
		"byCategory": byCategory,
	})
}
