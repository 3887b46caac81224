package inventory

import (
	"context"
	"time"

	"sdh_inventory/models"
)

// Snapshot is a full, round-trippable export: every asset (active and
// deleted) and every settings value (active and inactive).
type Snapshot struct {
	Timestamp time.Time             `json:"timestamp"`
	Assets    []models.Asset        `json:"assets"`
	Settings  []models.SettingsItem `json:"settings"`
}

// Snapshot assembles a backup of the complete state.
func (m *Manager) Snapshot(ctx context.Context) (*Snapshot, error) {
	assets, err := m.store.ListAssets(ctx, true)
	if err != nil {
		return nil, storeErr("list", err)
	}
	settings, err := m.settings.AllSettings(ctx)
	if err != nil {
		return nil, storeErr("list settings", err)
	}
	return &Snapshot{Timestamp: time.Now().UTC(), Assets: assets, Settings: settings}, nil
}

// RestoreSnapshot loads a backup. Settings are upserted idempotently and
// assets upserted by id, so restoring into a non-empty store updates
// matching records instead of duplicating them.
func (m *Manager) RestoreSnapshot(ctx context.Context, snap *Snapshot) error {
	for _, s := range snap.Settings {
		if err := m.settings.UpsertSetting(ctx, s.Type, s.Value, s.Active); err != nil {
			return storeErr("upsert setting", err)
		}
	}
	for i := range snap.Assets {
		a := snap.Assets[i]
		if err := m.store.UpsertAsset(ctx, &a); err != nil {
			return storeErr("upsert asset", err)
		}
	}
	return nil
}
