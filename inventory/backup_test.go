package inventory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"sdh_inventory/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := newFakeStore()
	m := NewManager(src, src)

	// two active, one soft-deleted
	for i, inv := range []string{"SDH-V-001", "SDH-O-042", "SDH-H-105"} {
		in := validInput()
		in.InventoryNumber = inv
		in.Price = decimal.NewFromInt(int64(1000 * (i + 1)))
		mustCreate(t, m, in)
	}
	trashed, _ := m.Active(ctx)
	if err := m.SoftDelete(ctx, trashed[0].ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	_ = src.UpsertSetting(ctx, models.SettingsLocations, "Sklad", true)
	_ = src.UpsertSetting(ctx, models.SettingsLocations, "Zbrojnice", true)
	_ = src.DeactivateSetting(ctx, models.SettingsLocations, "Zbrojnice")
	_ = src.UpsertSetting(ctx, models.SettingsManagers, "Jan Novak", true)

	snap, err := m.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Assets) != 3 {
		t.Fatalf("snapshot must include deleted assets, got %d", len(snap.Assets))
	}
	if len(snap.Settings) != 3 {
		t.Fatalf("snapshot must include inactive settings, got %d", len(snap.Settings))
	}

	// through JSON, as the backup file would travel
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	dst := newFakeStore()
	m2 := NewManager(dst, dst)
	if err := m2.RestoreSnapshot(ctx, &decoded); err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}

	all, _ := dst.ListAssets(ctx, true)
	if len(all) != 3 {
		t.Fatalf("expected 3 restored assets, got %d", len(all))
	}
	active, _ := dst.ListAssets(ctx, false)
	if len(active) != 2 {
		t.Fatalf("expected 2 active assets after restore, got %d", len(active))
	}
	settings, _ := dst.AllSettings(ctx)
	if len(settings) != 3 {
		t.Fatalf("expected 3 settings values, got %d", len(settings))
	}
	inactive := 0
	for _, s := range settings {
		if !s.Active {
			inactive++
		}
	}
	if inactive != 1 {
		t.Fatalf("expected exactly 1 inactive settings value, got %d", inactive)
	}

	// restoring the same snapshot again must not duplicate anything
	if err := m2.RestoreSnapshot(ctx, &decoded); err != nil {
		t.Fatalf("second RestoreSnapshot: %v", err)
	}
	all, _ = dst.ListAssets(ctx, true)
	if len(all) != 3 {
		t.Fatalf("restore must be idempotent, got %d assets", len(all))
	}
	settings, _ = dst.AllSettings(ctx)
	if len(settings) != 3 {
		t.Fatalf("restore must be idempotent, got %d settings", len(settings))
	}
}
