package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Part represents a spare part in the inventory
type Part struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_parts_user_hsn" json:"user_id"`
	HSNCode           string          `gorm:"size:50;not null;uniqueIndex:idx_parts_user_hsn;column:hsn_code" json:"hsn_code"`
	PartName          string          `gorm:"size:255;not null" json:"part_name"`
	Brand             string          `gorm:"size:255" json:"brand"`
	Category          string          `gorm:"size:255" json:"category"`
	BuyingPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"buying_price"`
	SellingPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"selling_price"`
	SGSTPercentage    decimal.Decimal `gorm:"type:decimal(5,2);column:sgst_percentage" json:"sgst_percentage"`
	CGSTPercentage    decimal.Decimal `gorm:"type:decimal(5,2);column:cgst_percentage" json:"cgst_percentage"`
	Quantity          int             `gorm:"default:0" json:"quantity"`
	LowStockThreshold int             `gorm:"default:5" json:"low_stock_threshold"`
	ImageURL          *string         `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new part
func (p *Part) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Part model
func (Part) TableName() string {
	return "parts"
}

// DisplayName returns the part name with its brand, as shown on invoices
func (p *Part) DisplayName() string {
	if p.Brand == "" {
		return p.PartName
	}
	return p.PartName + " (" + p.Brand + ")"
}

// IsLowStock reports whether the quantity is at or below the threshold
func (p *Part) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
