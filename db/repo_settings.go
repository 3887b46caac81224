package db

import (
	"context"

	"gorm.io/gorm/clause"

	"sdh_inventory/inventory"
	"sdh_inventory/models"
)

var _ inventory.SettingsStore = (*Repo)(nil)

func (r *Repo) ListSettings(ctx context.Context, typ string, includeInactive bool) ([]models.SettingsItem, error) {
	tx := r.DB.WithContext(ctx).Where("type = ?", typ)
	if !includeInactive {
		tx = tx.Where("active = TRUE")
	}
	var items []models.SettingsItem
	err := tx.Order("value ASC").Find(&items).Error
	return items, err
}

func (r *Repo) AllSettings(ctx context.Context) ([]models.SettingsItem, error) {
	var items []models.SettingsItem
	err := r.DB.WithContext(ctx).Order("type ASC, value ASC").Find(&items).Error
	return items, err
}

// UpsertSetting is idempotent: re-adding an existing value only flips its
// active flag back on.
func (r *Repo) UpsertSetting(ctx context.Context, typ, value string, active bool) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "type"}, {Name: "value"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"active": active}),
		}).
		Create(&models.SettingsItem{Type: typ, Value: value, Active: active}).Error
}

// DeactivateSetting hides a value from the pickers without deleting it, so
// assets referencing it stay valid. Unknown values are a no-op.
func (r *Repo) DeactivateSetting(ctx context.Context, typ, value string) error {
	return r.DB.WithContext(ctx).Model(&models.SettingsItem{}).
		Where("type = ? AND value = ?", typ, value).
		Update("active", false).Error
}
