package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sdh_inventory/models"
)

// Store is the asset persistence contract. Implementations must report a
// missing id as ErrAssetNotFound rather than silently succeeding.
type Store interface {
	ListAssets(ctx context.Context, includeDeleted bool) ([]models.Asset, error)
	FindAssetByID(ctx context.Context, id string) (*models.Asset, error)
	InsertAsset(ctx context.Context, a *models.Asset) error
	UpdateAssetFields(ctx context.Context, id string, fields map[string]any) (*models.Asset, error)
	SetAssetDeleted(ctx context.Context, id string, deleted bool) error
	DeleteAsset(ctx context.Context, id string) error
	UpsertAsset(ctx context.Context, a *models.Asset) error
}

// SettingsStore is the settings-lists contract. Values are deactivated, not
// removed, so assets referencing them stay valid.
type SettingsStore interface {
	ListSettings(ctx context.Context, typ string, includeInactive bool) ([]models.SettingsItem, error)
	AllSettings(ctx context.Context) ([]models.SettingsItem, error)
	UpsertSetting(ctx context.Context, typ, value string, active bool) error
	DeactivateSetting(ctx context.Context, typ, value string) error
}

// Manager owns asset state transitions. It is the only writer of IsDeleted;
// every persistence call is at-most-once with no retry.
type Manager struct {
	store    Store
	settings SettingsStore
}

func NewManager(store Store, settings SettingsStore) *Manager {
	return &Manager{store: store, settings: settings}
}

// AssetInput is a fully populated asset payload minus the id.
type AssetInput struct {
	Name             string          `json:"name"`
	InventoryNumber  string          `json:"inventoryNumber"`
	Category         string          `json:"category"`
	Location         string          `json:"location"`
	Condition        string          `json:"condition"`
	Manager          string          `json:"manager"`
	PurchaseDate     string          `json:"purchaseDate"`
	Price            decimal.Decimal `json:"price"`
	Description      string          `json:"description"`
	MaintenanceNotes string          `json:"maintenanceNotes"`
	ImageURL         string          `json:"imageUrl"`
	NextServiceDate  string          `json:"nextServiceDate"`
}

// AssetPatch is a partial update; nil fields are left unchanged.
type AssetPatch struct {
	Name             *string          `json:"name"`
	InventoryNumber  *string          `json:"inventoryNumber"`
	Category         *string          `json:"category"`
	Location         *string          `json:"location"`
	Condition        *string          `json:"condition"`
	Manager          *string          `json:"manager"`
	PurchaseDate     *string          `json:"purchaseDate"`
	Price            *decimal.Decimal `json:"price"`
	Description      *string          `json:"description"`
	MaintenanceNotes *string          `json:"maintenanceNotes"`
	ImageURL         *string          `json:"imageUrl"`
	NextServiceDate  *string          `json:"nextServiceDate"`
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func (in *AssetInput) validate() error {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"inventoryNumber", in.InventoryNumber},
		{"category", in.Category},
		{"location", in.Location},
		{"condition", in.Condition},
		{"manager", in.Manager},
		{"purchaseDate", in.PurchaseDate},
	}
	for _, r := range required {
		if r.value == "" {
			return invalid(r.field, "must not be empty")
		}
	}
	if !validDate(in.PurchaseDate) {
		return invalid("purchaseDate", "must be a date in "+models.DateLayout+" form")
	}
	if in.NextServiceDate != "" && !validDate(in.NextServiceDate) {
		return invalid("nextServiceDate", "must be a date in "+models.DateLayout+" form")
	}
	if in.Price.IsNegative() {
		return invalid("price", "must not be negative")
	}
	return nil
}

// Create validates the payload, assigns a fresh id and persists the asset.
func (m *Manager) Create(ctx context.Context, in AssetInput) (*models.Asset, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	a := &models.Asset{
		ID:               uuid.NewString(),
		Name:             in.Name,
		InventoryNumber:  in.InventoryNumber,
		Category:         in.Category,
		Location:         in.Location,
		Condition:        in.Condition,
		Manager:          in.Manager,
		PurchaseDate:     in.PurchaseDate,
		Price:            in.Price,
		Description:      in.Description,
		MaintenanceNotes: in.MaintenanceNotes,
		ImageURL:         in.ImageURL,
		NextServiceDate:  in.NextServiceDate,
		IsDeleted:        false,
	}
	if err := m.store.InsertAsset(ctx, a); err != nil {
		return nil, storeErr("insert", err)
	}
	return a, nil
}

// fields validates the patch and flattens it to column updates. Validation
// happens before any store call so a rejected patch leaves the record
// untouched.
func (p *AssetPatch) fields() (map[string]any, error) {
	set := map[string]any{}
	for _, r := range []struct {
		field string // reported in errors
		col   string // written to the store
		value *string
	}{
		{"name", "name", p.Name},
		{"inventoryNumber", "inventory_number", p.InventoryNumber},
		{"category", "category", p.Category},
		{"location", "location", p.Location},
		{"condition", "condition", p.Condition},
		{"manager", "manager", p.Manager},
		{"purchaseDate", "purchase_date", p.PurchaseDate},
	} {
		if r.value == nil {
			continue
		}
		if *r.value == "" {
			return nil, invalid(r.field, "must not be empty")
		}
		set[r.col] = *r.value
	}
	if p.PurchaseDate != nil && !validDate(*p.PurchaseDate) {
		return nil, invalid("purchaseDate", "must be a date in "+models.DateLayout+" form")
	}
	if p.Price != nil {
		if p.Price.IsNegative() {
			return nil, invalid("price", "must not be negative")
		}
		set["price"] = *p.Price
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.MaintenanceNotes != nil {
		set["maintenance_notes"] = *p.MaintenanceNotes
	}
	if p.ImageURL != nil {
		set["image_url"] = *p.ImageURL
	}
	if p.NextServiceDate != nil {
		if *p.NextServiceDate != "" && !validDate(*p.NextServiceDate) {
			return nil, invalid("nextServiceDate", "must be a date in "+models.DateLayout+" form")
		}
		set["next_service_date"] = *p.NextServiceDate
	}
	return set, nil
}

// Update overwrites the listed fields of an existing asset; omitted fields
// keep their stored values. The id and IsDeleted are never writable here.
func (m *Manager) Update(ctx context.Context, id string, patch AssetPatch) (*models.Asset, error) {
	set, err := patch.fields()
	if err != nil {
		return nil, err
	}
	a, err := m.store.FindAssetByID(ctx, id)
	if err != nil {
		return nil, storeErr("find", err)
	}
	if len(set) == 0 {
		return a, nil
	}
	a, err = m.store.UpdateAssetFields(ctx, id, set)
	if err != nil {
		return nil, storeErr("update", err)
	}
	return a, nil
}

// SoftDelete moves the asset to the trash. Idempotent.
func (m *Manager) SoftDelete(ctx context.Context, id string) error {
	if _, err := m.store.FindAssetByID(ctx, id); err != nil {
		return storeErr("find", err)
	}
	if err := m.store.SetAssetDeleted(ctx, id, true); err != nil {
		return storeErr("delete flag", err)
	}
	return nil
}

// Restore brings a trashed asset back. Idempotent.
func (m *Manager) Restore(ctx context.Context, id string) error {
	if _, err := m.store.FindAssetByID(ctx, id); err != nil {
		return storeErr("find", err)
	}
	if err := m.store.SetAssetDeleted(ctx, id, false); err != nil {
		return storeErr("delete flag", err)
	}
	return nil
}

// Purge permanently removes an asset. Only soft-deleted assets may be
// purged; purging a live record is refused with ErrAssetNotDeleted.
func (m *Manager) Purge(ctx context.Context, id string) error {
	a, err := m.store.FindAssetByID(ctx, id)
	if err != nil {
		return storeErr("find", err)
	}
	if !a.IsDeleted {
		return ErrAssetNotDeleted
	}
	if err := m.store.DeleteAsset(ctx, id); err != nil {
		return storeErr("purge", err)
	}
	return nil
}

// Get returns one asset, deleted or not.
func (m *Manager) Get(ctx context.Context, id string) (*models.Asset, error) {
	a, err := m.store.FindAssetByID(ctx, id)
	if err != nil {
		return nil, storeErr("find", err)
	}
	return a, nil
}

// Active returns the non-deleted asset set.
func (m *Manager) Active(ctx context.Context) ([]models.Asset, error) {
	as, err := m.store.ListAssets(ctx, false)
	if err != nil {
		return nil, storeErr("list", err)
	}
	return as, nil
}

// Trash returns only soft-deleted assets.
func (m *Manager) Trash(ctx context.Context) ([]models.Asset, error) {
	as, err := m.store.ListAssets(ctx, true)
	if err != nil {
		return nil, storeErr("list", err)
	}
	out := as[:0]
	for _, a := range as {
		if a.IsDeleted {
			out = append(out, a)
		}
	}
	return out, nil
}

// TotalValue sums prices over the active subset of assets. Exact decimal
// arithmetic; no float drift for integer currency amounts.
func TotalValue(assets []models.Asset) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range assets {
		if a.IsDeleted {
			continue
		}
		sum = sum.Add(a.Price)
	}
	return sum
}
