package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one requested line of a new order. Price, when
// present, overrides the part's selling price for this line.
type OrderItemRequest struct {
	PartID   uuid.UUID        `json:"part_id" binding:"required"`
	Quantity int              `json:"quantity" binding:"required"`
	Price    *decimal.Decimal `json:"price"`
}

// CreateOrderRequest represents a create order request
type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id"`
	IncludeTax bool               `json:"include_tax"`
	Items      []OrderItemRequest `json:"items"`
}
