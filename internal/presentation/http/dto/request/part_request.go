package request

import "github.com/shopspring/decimal"

// CreatePartRequest represents a create part request. HSNCode is
// optional; the server generates the next code when it is blank.
type CreatePartRequest struct {
	HSNCode           string          `json:"hsn_code"`
	PartName          string          `json:"part_name" binding:"required"`
	Brand             string          `json:"brand"`
	Category          string          `json:"category"`
	BuyingPrice       decimal.Decimal `json:"buying_price" binding:"required"`
	SellingPrice      decimal.Decimal `json:"selling_price" binding:"required"`
	SGSTPercentage    decimal.Decimal `json:"sgst_percentage"`
	CGSTPercentage    decimal.Decimal `json:"cgst_percentage"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

// UpdatePartRequest represents an update part request; omitted fields
// keep their current value
type UpdatePartRequest struct {
	PartName          *string          `json:"part_name"`
	Brand             *string          `json:"brand"`
	Category          *string          `json:"category"`
	BuyingPrice       *decimal.Decimal `json:"buying_price"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
	SGSTPercentage    *decimal.Decimal `json:"sgst_percentage"`
	CGSTPercentage    *decimal.Decimal `json:"cgst_percentage"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// SetStockRequest represents a restock request
type SetStockRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}
