// Package export renders one-way presentation views of the asset
// collection. Nothing here mutates state.
package export

import (
	"encoding/csv"
	"io"

	"sdh_inventory/models"
)

var csvHeader = []string{
	"inventoryNumber", "name", "category", "location", "condition",
	"manager", "purchaseDate", "price", "nextServiceDate",
	"description", "maintenanceNotes",
}

// WriteCSV writes the given assets as UTF-8 CSV. A BOM is prepended so
// spreadsheet apps pick up the encoding; quoting and escaping are left
// entirely to encoding/csv.
func WriteCSV(w io.Writer, assets []models.Asset) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, a := range assets {
		row := []string{
			a.InventoryNumber,
			a.Name,
			a.Category,
			a.Location,
			a.Condition,
			a.Manager,
			a.PurchaseDate,
			a.Price.String(),
			a.NextServiceDate,
			a.Description,
			a.MaintenanceNotes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
