package inventory

import (
	"sort"
	"time"

	"sdh_inventory/models"
)

// Notification kinds. DANGER means the service date has passed.
const (
	NotifyWarning = "WARNING"
	NotifyDanger  = "DANGER"
)

// WarningWindowDays is how far ahead upcoming service dates are surfaced.
const WarningWindowDays = 30

// Notification is a derived maintenance alert. Never persisted; recomputed
// from the asset set on every call.
type Notification struct {
	AssetID       string `json:"assetId"`
	AssetName     string `json:"assetName"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	DaysRemaining int    `json:"daysRemaining"`
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Upcoming maps the asset set and a reference date to the ordered list of
// maintenance alerts. Deleted assets and assets without a service date are
// skipped; an unparsable service date counts as absent rather than failing,
// so partially migrated data cannot break the view. Days are counted on
// calendar-day granularity: a service date equal to today yields 0 and is a
// WARNING, strictly negative is DANGER, anything past the warning window is
// dropped. The sort is stable, ties keep the incoming asset order.
func Upcoming(assets []models.Asset, today time.Time) []Notification {
	ref := midnight(today)
	var out []Notification
	for _, a := range assets {
		if a.IsDeleted || a.NextServiceDate == "" {
			continue
		}
		due, err := time.Parse(models.DateLayout, a.NextServiceDate)
		if err != nil {
			continue
		}
		days := int(midnight(due).Sub(ref).Hours() / 24)
		if days > WarningWindowDays {
			continue
		}
		kind := NotifyWarning
		if days < 0 {
			kind = NotifyDanger
		}
		out = append(out, Notification{
			AssetID:       a.ID,
			AssetName:     a.Name,
			Date:          a.NextServiceDate,
			Type:          kind,
			DaysRemaining: days,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysRemaining < out[j].DaysRemaining })
	return out
}
