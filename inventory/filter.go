package inventory

import (
	"strings"

	"sdh_inventory/models"
)

// Filter narrows an asset slice the same way the browsing list does:
// q matches name or inventory number case-insensitively, category ""
// or "ALL" matches everything. Unlike the paged search it keeps the
// whole result, so exports see the full collection.
func Filter(assets []models.Asset, q, category string) []models.Asset {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.InventoryNumber), q) {
			continue
		}
		if category != "" && category != "ALL" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}
