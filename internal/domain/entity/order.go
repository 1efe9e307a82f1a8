package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a committed sales order. Orders are immutable once
// created: there are no update or void operations.
type Order struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_user_number" json:"user_id"`
	OrderNumber       string          `gorm:"size:50;not null;uniqueIndex:idx_orders_user_number" json:"order_number"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	TotalBuyingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_buying_price"`
	TotalSellingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_selling_price"`
	ProfitAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"profit_amount"`
	CreatedAt         time.Time       `json:"created_at"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order. Prices and tax amounts
// are snapshots taken at commit time and are never re-derived from the
// part catalog.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	PartID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"part_id"`
	PartName     string          `gorm:"size:255;not null" json:"part_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	BuyingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"buying_price"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"selling_price"`
	SGSTAmount   decimal.Decimal `gorm:"type:decimal(12,2);column:sgst_amount" json:"sgst_amount"`
	CGSTAmount   decimal.Decimal `gorm:"type:decimal(12,2);column:cgst_amount" json:"cgst_amount"`
	TotalGST     decimal.Decimal `gorm:"type:decimal(12,2);column:total_gst" json:"total_gst"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
	Part  Part  `gorm:"foreignKey:PartID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
