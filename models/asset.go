package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const AssetTable = "sdh_assets"

// DateLayout is the storage format for calendar dates. Assets carry plain
// date strings (no time component) so records from partially migrated data
// stay loadable; parsing happens where a real date is needed.
const DateLayout = "2006-01-02"

type Asset struct {
	ID               string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string          `gorm:"size:200;not null" json:"name"`
	InventoryNumber  string          `gorm:"size:120;uniqueIndex;not null" json:"inventoryNumber"`
	Category         string          `gorm:"size:120;not null" json:"category"`
	Location         string          `gorm:"size:200;not null" json:"location"`
	Condition        string          `gorm:"size:120;not null" json:"condition"`
	Manager          string          `gorm:"size:200;not null" json:"manager"`
	PurchaseDate     string          `gorm:"size:10;not null" json:"purchaseDate"`
	Price            decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Description      string          `gorm:"type:text" json:"description"`
	MaintenanceNotes string          `gorm:"type:text" json:"maintenanceNotes"`
	ImageURL         string          `gorm:"type:text" json:"imageUrl"`
	NextServiceDate  string          `gorm:"size:10" json:"nextServiceDate,omitempty"`
	IsDeleted        bool            `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (Asset) TableName() string { return AssetTable }
