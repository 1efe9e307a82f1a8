package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/apperror"
)

var hundred = decimal.NewFromInt(100)

// Line is one priced row of a draft order. All derived amounts are
// computed from the unit price, the tax percentages and the quantity;
// they are never accumulated incrementally, so merging quantities can
// not compound rounding.
type Line struct {
	PartID       uuid.UUID
	PartName     string
	Quantity     int
	Price        decimal.Decimal // effective unit price charged
	BuyingPrice  decimal.Decimal // unit buying price snapshot
	SellingPrice decimal.Decimal // unit base selling price snapshot
	SGSTPercent  decimal.Decimal
	CGSTPercent  decimal.Decimal
	SGSTAmount   decimal.Decimal // for the whole line
	CGSTAmount   decimal.Decimal
	TotalGST     decimal.Decimal
	Subtotal     decimal.Decimal
}

// Draft is an in-progress order. Drafts are immutable values: every
// operation returns a new draft and leaves the receiver untouched.
type Draft struct {
	IncludeTax bool
	Lines      []Line
}

// NewDraft starts an empty draft order.
func NewDraft(includeTax bool) Draft {
	return Draft{IncludeTax: includeTax}
}

// compute derives every amount of a line from its base prices, the tax
// percentages and the quantity. The GST amounts are always computed and
// kept on the line; the include-tax flag only decides whether they are
// added to the price actually charged.
func (d Draft) compute(line Line) Line {
	qty := decimal.NewFromInt(int64(line.Quantity))

	unitSGST := line.SellingPrice.Mul(line.SGSTPercent).Div(hundred)
	unitCGST := line.SellingPrice.Mul(line.CGSTPercent).Div(hundred)

	line.SGSTAmount = unitSGST.Mul(qty)
	line.CGSTAmount = unitCGST.Mul(qty)
	line.TotalGST = line.SGSTAmount.Add(line.CGSTAmount)

	if d.IncludeTax {
		line.Price = line.SellingPrice.Add(unitSGST).Add(unitCGST)
	} else {
		line.Price = line.SellingPrice
	}

	line.Subtotal = line.Price.Mul(qty)
	return line
}

// Add puts qty units of the part on the draft. Adding a part that is
// already present merges with the existing line: quantities sum and all
// amounts are recomputed from the merged quantity. The quantity
// (including a merged total) must be positive and within the part's
// available stock.
func (d Draft) Add(part *entity.Part, qty int) (Draft, error) {
	if qty <= 0 || qty > part.Quantity {
		return d, apperror.ErrQuantityOutOfRange
	}

	lines := make([]Line, len(d.Lines))
	copy(lines, d.Lines)

	for i, line := range lines {
		if line.PartID == part.ID {
			merged := line.Quantity + qty
			if merged > part.Quantity {
				return d, apperror.ErrQuantityOutOfRange
			}
			line.Quantity = merged
			line.BuyingPrice = part.BuyingPrice
			line.SellingPrice = part.SellingPrice
			line.SGSTPercent = part.SGSTPercentage
			line.CGSTPercent = part.CGSTPercentage
			lines[i] = d.compute(line)
			return Draft{IncludeTax: d.IncludeTax, Lines: lines}, nil
		}
	}

	line := Line{
		PartID:       part.ID,
		PartName:     part.DisplayName(),
		Quantity:     qty,
		BuyingPrice:  part.BuyingPrice,
		SellingPrice: part.SellingPrice,
		SGSTPercent:  part.SGSTPercentage,
		CGSTPercent:  part.CGSTPercentage,
	}
	lines = append(lines, d.compute(line))
	return Draft{IncludeTax: d.IncludeTax, Lines: lines}, nil
}

// SetLinePrice overrides the unit price of the part's line. Tax and
// subtotal are recomputed from the new price; the quantity stays as it
// is. A negative price is rejected.
func (d Draft) SetLinePrice(partID uuid.UUID, price decimal.Decimal) (Draft, error) {
	if price.IsNegative() {
		return d, apperror.ErrInvalidPrice
	}

	lines := make([]Line, len(d.Lines))
	copy(lines, d.Lines)

	for i, line := range lines {
		if line.PartID == partID {
			line.SellingPrice = price
			lines[i] = d.compute(line)
			return Draft{IncludeTax: d.IncludeTax, Lines: lines}, nil
		}
	}

	return d, apperror.NewNotFoundError("Order item")
}

// Remove drops the part's line from the draft. Other lines are not
// affected. Removing a part that is not on the draft is a no-op.
func (d Draft) Remove(partID uuid.UUID) Draft {
	lines := make([]Line, 0, len(d.Lines))
	for _, line := range d.Lines {
		if line.PartID != partID {
			lines = append(lines, line)
		}
	}
	return Draft{IncludeTax: d.IncludeTax, Lines: lines}
}

// IsEmpty reports whether the draft has no lines.
func (d Draft) IsEmpty() bool {
	return len(d.Lines) == 0
}

// TotalAmount is the sum of all line subtotals.
func (d Draft) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.Lines {
		total = total.Add(line.Subtotal)
	}
	return total
}

// TotalGST is the sum of all line GST amounts.
func (d Draft) TotalGST() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.Lines {
		total = total.Add(line.TotalGST)
	}
	return total
}

// TotalBuying is the cost basis of the draft (unit buying price × qty).
func (d Draft) TotalBuying() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.Lines {
		total = total.Add(line.BuyingPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// TotalSelling is the pre-tax selling value of the draft.
func (d Draft) TotalSelling() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.Lines {
		total = total.Add(line.SellingPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Profit is the selling value minus the cost basis.
func (d Draft) Profit() decimal.Decimal {
	return d.TotalSelling().Sub(d.TotalBuying())
}
