package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"sdh_inventory/models"
)

// fakeStore is an in-memory Store + SettingsStore used to exercise the
// lifecycle manager without a database.
type fakeStore struct {
	assets   []models.Asset
	settings []models.SettingsItem

	failInsert error
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (f *fakeStore) find(id string) int {
	for i := range f.assets {
		if f.assets[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeStore) ListAssets(_ context.Context, includeDeleted bool) ([]models.Asset, error) {
	var out []models.Asset
	for _, a := range f.assets {
		if !includeDeleted && a.IsDeleted {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) FindAssetByID(_ context.Context, id string) (*models.Asset, error) {
	i := f.find(id)
	if i < 0 {
		return nil, ErrAssetNotFound
	}
	a := f.assets[i]
	return &a, nil
}

func (f *fakeStore) InsertAsset(_ context.Context, a *models.Asset) error {
	if f.failInsert != nil {
		return f.failInsert
	}
	f.assets = append(f.assets, *a)
	return nil
}

func (f *fakeStore) UpdateAssetFields(_ context.Context, id string, fields map[string]any) (*models.Asset, error) {
	i := f.find(id)
	if i < 0 {
		return nil, ErrAssetNotFound
	}
	a := &f.assets[i]
	for k, v := range fields {
		switch k {
		case "name":
			a.Name = v.(string)
		case "inventory_number":
			a.InventoryNumber = v.(string)
		case "category":
			a.Category = v.(string)
		case "location":
			a.Location = v.(string)
		case "condition":
			a.Condition = v.(string)
		case "manager":
			a.Manager = v.(string)
		case "purchase_date":
			a.PurchaseDate = v.(string)
		case "price":
			a.Price = v.(decimal.Decimal)
		case "description":
			a.Description = v.(string)
		case "maintenance_notes":
			a.MaintenanceNotes = v.(string)
		case "image_url":
			a.ImageURL = v.(string)
		case "next_service_date":
			a.NextServiceDate = v.(string)
		default:
			return nil, fmt.Errorf("unexpected column %q", k)
		}
	}
	out := *a
	return &out, nil
}

func (f *fakeStore) SetAssetDeleted(_ context.Context, id string, deleted bool) error {
	i := f.find(id)
	if i < 0 {
		return ErrAssetNotFound
	}
	f.assets[i].IsDeleted = deleted
	return nil
}

func (f *fakeStore) DeleteAsset(_ context.Context, id string) error {
	i := f.find(id)
	if i < 0 {
		return ErrAssetNotFound
	}
	f.assets = append(f.assets[:i], f.assets[i+1:]...)
	return nil
}

func (f *fakeStore) UpsertAsset(_ context.Context, a *models.Asset) error {
	if i := f.find(a.ID); i >= 0 {
		f.assets[i] = *a
		return nil
	}
	f.assets = append(f.assets, *a)
	return nil
}

func (f *fakeStore) ListSettings(_ context.Context, typ string, includeInactive bool) ([]models.SettingsItem, error) {
	var out []models.SettingsItem
	for _, s := range f.settings {
		if s.Type != typ {
			continue
		}
		if !includeInactive && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStore) AllSettings(_ context.Context) ([]models.SettingsItem, error) {
	return append([]models.SettingsItem(nil), f.settings...), nil
}

func (f *fakeStore) UpsertSetting(_ context.Context, typ, value string, active bool) error {
	for i := range f.settings {
		if f.settings[i].Type == typ && f.settings[i].Value == value {
			f.settings[i].Active = active
			return nil
		}
	}
	f.settings = append(f.settings, models.SettingsItem{Type: typ, Value: value, Active: active})
	return nil
}

func (f *fakeStore) DeactivateSetting(ctx context.Context, typ, value string) error {
	return f.UpsertSetting(ctx, typ, value, false)
}

func validInput() AssetInput {
	return AssetInput{
		Name:            "Motorova pila Stihl MS 462",
		InventoryNumber: "SDH-T-015",
		Category:        "Naradi",
		Location:        "Tatra 815 (CAS 30)",
		Condition:       "Dobry",
		Manager:         "Karel Dvorak",
		PurchaseDate:    "2020-08-20",
		Price:           decimal.NewFromInt(28000),
	}
}

func mustCreate(t *testing.T, m *Manager, in AssetInput) *models.Asset {
	t.Helper()
	a, err := m.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return a
}

func TestManagerCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns unique non-empty ids", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)

		seen := map[string]bool{}
		for i := 0; i < 10; i++ {
			in := validInput()
			in.InventoryNumber = fmt.Sprintf("SDH-T-%03d", i)
			a := mustCreate(t, m, in)
			if a.ID == "" {
				t.Fatal("expected non-empty id")
			}
			if seen[a.ID] {
				t.Fatalf("duplicate id %s", a.ID)
			}
			seen[a.ID] = true
			if a.IsDeleted {
				t.Fatal("new asset must not be deleted")
			}
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)

		for _, tc := range []struct {
			field  string
			mutate func(*AssetInput)
		}{
			{"name", func(in *AssetInput) { in.Name = "" }},
			{"inventoryNumber", func(in *AssetInput) { in.InventoryNumber = "" }},
			{"category", func(in *AssetInput) { in.Category = "" }},
			{"location", func(in *AssetInput) { in.Location = "" }},
			{"condition", func(in *AssetInput) { in.Condition = "" }},
			{"manager", func(in *AssetInput) { in.Manager = "" }},
			{"purchaseDate", func(in *AssetInput) { in.PurchaseDate = "" }},
		} {
			in := validInput()
			tc.mutate(&in)
			_, err := m.Create(ctx, in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("%s: expected ValidationError, got %v", tc.field, err)
			}
			if ve.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ve.Field)
			}
		}
		if len(store.assets) != 0 {
			t.Fatalf("store must stay empty after rejected creates, has %d", len(store.assets))
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)

		in := validInput()
		in.Price = decimal.NewFromInt(-5)
		_, err := m.Create(ctx, in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("accepts zero price", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)

		in := validInput()
		in.Price = decimal.Zero
		if _, err := m.Create(ctx, in); err != nil {
			t.Fatalf("zero price must be valid: %v", err)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)

		in := validInput()
		in.PurchaseDate = "20.08.2020"
		if _, err := m.Create(ctx, in); err == nil {
			t.Fatal("expected error for malformed purchaseDate")
		}

		in = validInput()
		in.NextServiceDate = "soon"
		if _, err := m.Create(ctx, in); err == nil {
			t.Fatal("expected error for malformed nextServiceDate")
		}
	})

	t.Run("wraps store failures", func(t *testing.T) {
		store := newFakeStore()
		store.failInsert = errors.New("connection refused")
		m := NewManager(store, store)

		_, err := m.Create(ctx, validInput())
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
		if !errors.Is(err, store.failInsert) {
			t.Fatal("PersistenceError must unwrap to the store error")
		}
	})
}

func TestManagerUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites only the provided fields", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())

		loc := "Sklad"
		price := decimal.NewFromInt(25000)
		got, err := m.Update(ctx, a.ID, AssetPatch{Location: &loc, Price: &price})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Location != "Sklad" || !got.Price.Equal(price) {
			t.Errorf("patched fields not applied: %+v", got)
		}
		if got.Name != a.Name || got.PurchaseDate != a.PurchaseDate {
			t.Errorf("untouched fields changed: %+v", got)
		}
	})

	t.Run("rejects negative price and leaves the store unmodified", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())

		bad := decimal.NewFromInt(-5)
		_, err := m.Update(ctx, a.ID, AssetPatch{Price: &bad})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		stored, _ := store.FindAssetByID(ctx, a.ID)
		if !stored.Price.Equal(a.Price) {
			t.Errorf("price mutated by rejected update: %s", stored.Price)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)

		name := "x"
		_, err := m.Update(ctx, "nope", AssetPatch{Name: &name})
		if !errors.Is(err, ErrAssetNotFound) {
			t.Fatalf("expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())

		got, err := m.Update(ctx, a.ID, AssetPatch{})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Name != a.Name {
			t.Errorf("no-op update changed the record")
		}
	})

	t.Run("clearing nextServiceDate is allowed", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		in := validInput()
		in.NextServiceDate = "2026-10-01"
		a := mustCreate(t, m, in)

		empty := ""
		got, err := m.Update(ctx, a.ID, AssetPatch{NextServiceDate: &empty})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.NextServiceDate != "" {
			t.Errorf("expected cleared service date, got %q", got.NextServiceDate)
		}
	})
}

func TestManagerDeleteRestorePurge(t *testing.T) {
	ctx := context.Background()

	t.Run("soft delete then restore keeps field values", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())

		if err := m.SoftDelete(ctx, a.ID); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		mid, _ := store.FindAssetByID(ctx, a.ID)
		if !mid.IsDeleted {
			t.Fatal("expected IsDeleted after soft delete")
		}

		if err := m.Restore(ctx, a.ID); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		got, _ := store.FindAssetByID(ctx, a.ID)
		if got.IsDeleted {
			t.Fatal("expected active after restore")
		}
		if got.Name != a.Name || got.InventoryNumber != a.InventoryNumber ||
			!got.Price.Equal(a.Price) || got.PurchaseDate != a.PurchaseDate {
			t.Errorf("restore changed fields: %+v", got)
		}
	})

	t.Run("soft delete is idempotent", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())

		for i := 0; i < 2; i++ {
			if err := m.SoftDelete(ctx, a.ID); err != nil {
				t.Fatalf("SoftDelete #%d: %v", i+1, err)
			}
			got, _ := store.FindAssetByID(ctx, a.ID)
			if !got.IsDeleted {
				t.Fatal("expected IsDeleted to stay set")
			}
		}
	})

	t.Run("soft delete of unknown id", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		if err := m.SoftDelete(ctx, "nope"); !errors.Is(err, ErrAssetNotFound) {
			t.Fatalf("expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("purge requires prior soft delete", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())

		if err := m.Purge(ctx, a.ID); !errors.Is(err, ErrAssetNotDeleted) {
			t.Fatalf("expected ErrAssetNotDeleted, got %v", err)
		}
		if _, err := store.FindAssetByID(ctx, a.ID); err != nil {
			t.Fatal("refused purge must not remove the asset")
		}

		if err := m.SoftDelete(ctx, a.ID); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		if err := m.Purge(ctx, a.ID); err != nil {
			t.Fatalf("Purge: %v", err)
		}
		if _, err := store.FindAssetByID(ctx, a.ID); !errors.Is(err, ErrAssetNotFound) {
			t.Fatal("expected the asset to be gone after purge")
		}
	})

	t.Run("deleted assets leave the active view", func(t *testing.T) {
		store := newFakeStore()
		m := NewManager(store, store)
		a := mustCreate(t, m, validInput())
		in := validInput()
		in.InventoryNumber = "SDH-T-016"
		mustCreate(t, m, in)

		if err := m.SoftDelete(ctx, a.ID); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		active, err := m.Active(ctx)
		if err != nil {
			t.Fatalf("Active: %v", err)
		}
		if len(active) != 1 {
			t.Fatalf("expected 1 active asset, got %d", len(active))
		}
		trash, err := m.Trash(ctx)
		if err != nil {
			t.Fatalf("Trash: %v", err)
		}
		if len(trash) != 1 || trash[0].ID != a.ID {
			t.Fatalf("expected the deleted asset in the trash")
		}
	})
}

func TestTotalValue(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, store)

	prices := []string{"4500000", "9500.50", "28000", "1800.25"}
	for i, p := range prices {
		in := validInput()
		in.InventoryNumber = fmt.Sprintf("SDH-V-%03d", i)
		in.Price = decimal.RequireFromString(p)
		mustCreate(t, m, in)
	}

	// a deleted asset must not count toward the total
	in := validInput()
	in.InventoryNumber = "SDH-V-999"
	in.Price = decimal.NewFromInt(1000000)
	a := mustCreate(t, m, in)
	if err := m.SoftDelete(context.Background(), a.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	all, _ := store.ListAssets(context.Background(), true)
	got := TotalValue(all)
	want := decimal.RequireFromString("4539300.75")
	if !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}
}
