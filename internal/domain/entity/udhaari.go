package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Udhaari represents credit extended to a customer (an amount owed to
// the shop, paid back over time).
type Udhaari struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	Amount      decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaidAmount  decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"paid_amount"`
	Description *string            `gorm:"type:text" json:"description,omitempty"`
	DueDate     *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Status      enum.UdhaariStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new udhaari record
func (u *Udhaari) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Udhaari model
func (Udhaari) TableName() string {
	return "udhaaris"
}

// Pending returns the amount still owed
func (u *Udhaari) Pending() decimal.Decimal {
	return u.Amount.Sub(u.PaidAmount)
}
