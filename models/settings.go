package models

import "time"

const SettingsTable = "sdh_settings_lists"

// Settings list types. Assets reference these vocabularies as plain strings
// so the lists can evolve without a schema migration.
const (
	SettingsManagers   = "managers"
	SettingsLocations  = "locations"
	SettingsCategories = "categories"
	SettingsConditions = "conditions"
)

// KnownSettingsType reports whether t names one of the editable lists.
func KnownSettingsType(t string) bool {
	switch t {
	case SettingsManagers, SettingsLocations, SettingsCategories, SettingsConditions:
		return true
	}
	return false
}

// SettingsItem is one allowed value of a settings list. Values are never
// hard-deleted, only deactivated, so historical assets that reference them
// stay valid.
type SettingsItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Type      string    `gorm:"size:40;not null;uniqueIndex:idx_settings_type_value" json:"type"`
	Value     string    `gorm:"size:200;not null;uniqueIndex:idx_settings_type_value" json:"value"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SettingsItem) TableName() string { return SettingsTable }
