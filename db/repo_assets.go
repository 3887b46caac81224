package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sdh_inventory/inventory"
	"sdh_inventory/models"
)

// Verify the repo satisfies the lifecycle manager's store contract.
var _ inventory.Store = (*Repo)(nil)

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inventory.ErrAssetNotFound
	}
	return err
}

func (r *Repo) ListAssets(ctx context.Context, includeDeleted bool) ([]models.Asset, error) {
	tx := r.DB.WithContext(ctx).Order("created_at DESC")
	if !includeDeleted {
		tx = tx.Where("is_deleted = FALSE")
	}
	var assets []models.Asset
	err := tx.Find(&assets).Error
	return assets, err
}

func (r *Repo) FindAssetByID(ctx context.Context, id string) (*models.Asset, error) {
	var a models.Asset
	if err := r.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (r *Repo) InsertAsset(ctx context.Context, a *models.Asset) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *Repo) UpdateAssetFields(ctx context.Context, id string, fields map[string]any) (*models.Asset, error) {
	res := r.DB.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, inventory.ErrAssetNotFound
	}
	return r.FindAssetByID(ctx, id)
}

func (r *Repo) SetAssetDeleted(ctx context.Context, id string, deleted bool) error {
	res := r.DB.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ?", id).
		Update("is_deleted", deleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return inventory.ErrAssetNotFound
	}
	return nil
}

func (r *Repo) DeleteAsset(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return inventory.ErrAssetNotFound
	}
	return nil
}

func (r *Repo) UpsertAsset(ctx context.Context, a *models.Asset) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(a).Error
}

// Filtered browsing view over the active (or trashed) asset set.

type AssetQuery struct {
	Q        string // matches name / inventory number
	Category string
	Deleted  bool // true = trash view
	Page     int
	Size     int
}

type PagedAssets struct {
	Total  int64          `json:"total"`
	Assets []models.Asset `json:"assets"`
}

func (r *Repo) SearchAssets(ctx context.Context, q AssetQuery) (*PagedAssets, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 || q.Size > 200 {
		q.Size = 50
	}

	tx := r.DB.WithContext(ctx).Model(&models.Asset{}).
		Where("is_deleted = ?", q.Deleted)
	if s := strings.TrimSpace(q.Q); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(inventory_number) LIKE ?", pat, pat)
	}
	if q.Category != "" && q.Category != "ALL" {
		tx = tx.Where("category = ?", q.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var assets []models.Asset
	if err := tx.
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return &PagedAssets{Total: total, Assets: assets}, nil
}
