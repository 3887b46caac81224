package db

import (
	"context"
	"fmt"

	"sdh_inventory/models"
)

func (r *Repo) LogActivity(ctx context.Context, actor, action, assetID, assetName string) (*models.ActivityLog, error) {
	entry := &models.ActivityLog{
		Actor:     actor,
		Action:    action,
		AssetID:   assetID,
		AssetName: assetName,
	}
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("insert activity log: %w", err)
	}
	return entry, nil
}

func (r *Repo) ListActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var entries []models.ActivityLog
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
