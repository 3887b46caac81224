package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sdh_inventory/export"
	"sdh_inventory/inventory"
	"sdh_inventory/models"
)

type ExportController struct{ *Srv }

func NewExportController(s *Srv) *ExportController { return &ExportController{Srv: s} }

// Exports render the whole active set, narrowed by the same q/category
// filters as the browsing list but never paged. One-way views; nothing
// here is read back.

func (ec *ExportController) filtered(c *gin.Context) ([]models.Asset, error) {
	assets, err := ec.Assets.Active(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return inventory.Filter(assets, c.Query("q"), c.Query("category")), nil
}

// GET /api/export/csv
func (ec *ExportController) CSV(c *gin.Context) {
	assets, err := ec.filtered(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, assets); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventory.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GET /api/export/pdf
func (ec *ExportController) PDF(c *gin.Context) {
	assets, err := ec.filtered(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, ec.Cfg.UnitName, assets, time.Now()); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventory.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
