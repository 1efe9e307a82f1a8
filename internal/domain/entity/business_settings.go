package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessSettings holds the shop profile printed on invoices
type BusinessSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName string    `gorm:"size:255;not null" json:"business_name"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	GSTIN        *string   `gorm:"size:50;column:gstin" json:"gstin,omitempty"`
	ContactPhone *string   `gorm:"size:50" json:"contact_phone,omitempty"`
	ContactEmail *string   `gorm:"size:255" json:"contact_email,omitempty"`
	LogoURL      *string   `gorm:"size:500" json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (b *BusinessSettings) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessSettings model
func (BusinessSettings) TableName() string {
	return "business_settings"
}
