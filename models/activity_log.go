package models

import "time"

const ActivityTable = "sdh_activity_log"

// Activity actions written by the asset handlers.
const (
	ActivityCreated        = "created"
	ActivityUpdated        = "updated"
	ActivitySoftDeleted    = "soft_deleted"
	ActivityRestored       = "restored"
	ActivityPurged         = "purged"
	ActivityBackupRestored = "backup_restored"
)

// ActivityLog records who did what to which asset. Append-only.
type ActivityLog struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Actor     string    `gorm:"size:255;not null" json:"actor"`
	Action    string    `gorm:"size:40;not null" json:"action"`
	AssetID   string    `gorm:"size:36;index" json:"assetId,omitempty"`
	AssetName string    `gorm:"size:200" json:"assetName,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (ActivityLog) TableName() string { return ActivityTable }
