package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/apperror"
)

func testPart(name string, selling, buying float64, sgst, cgst float64, stock int) *entity.Part {
	return &entity.Part{
		ID:             uuid.New(),
		PartName:       name,
		Brand:          "Bosch",
		SellingPrice:   decimal.NewFromFloat(selling),
		BuyingPrice:    decimal.NewFromFloat(buying),
		SGSTPercentage: decimal.NewFromFloat(sgst),
		CGSTPercentage: decimal.NewFromFloat(cgst),
		Quantity:       stock,
	}
}

func TestAddComputesTaxInclusiveLine(t *testing.T) {
	part := testPart("Oil Filter", 100, 60, 9, 9, 10)

	draft, err := NewDraft(true).Add(part, 2)
	require.NoError(t, err)
	require.Len(t, draft.Lines, 1)

	line := draft.Lines[0]
	assert.Equal(t, "Oil Filter (Bosch)", line.PartName)
	assert.Equal(t, 2, line.Quantity)
	// unit: 100 + 9 + 9 = 118
	assert.True(t, line.Price.Equal(decimal.NewFromInt(118)), "price = %s", line.Price)
	assert.True(t, line.SGSTAmount.Equal(decimal.NewFromInt(18)), "sgst = %s", line.SGSTAmount)
	assert.True(t, line.CGSTAmount.Equal(decimal.NewFromInt(18)), "cgst = %s", line.CGSTAmount)
	assert.True(t, line.TotalGST.Equal(decimal.NewFromInt(36)))
	assert.True(t, line.Subtotal.Equal(decimal.NewFromInt(236)))
}

func TestAddWithoutTaxChargesBasePriceButKeepsTaxAmounts(t *testing.T) {
	part := testPart("Brake Pad", 500, 350, 9, 9, 5)

	draft, err := NewDraft(false).Add(part, 2)
	require.NoError(t, err)

	line := draft.Lines[0]
	// the customer is charged the base price...
	assert.True(t, line.Price.Equal(decimal.NewFromInt(500)), "price = %s", line.Price)
	assert.True(t, line.Subtotal.Equal(decimal.NewFromInt(1000)), "subtotal = %s", line.Subtotal)
	// ...but the GST amounts stay on the line for tax reporting
	assert.True(t, line.SGSTAmount.Equal(decimal.NewFromInt(90)), "sgst = %s", line.SGSTAmount)
	assert.True(t, line.CGSTAmount.Equal(decimal.NewFromInt(90)), "cgst = %s", line.CGSTAmount)
	assert.True(t, line.TotalGST.Equal(decimal.NewFromInt(180)))
	assert.True(t, draft.TotalGST().Equal(decimal.NewFromInt(180)))
}

func TestAddRejectsQuantityOutOfRange(t *testing.T) {
	part := testPart("Spark Plug", 80, 50, 0, 0, 3)
	draft := NewDraft(true)

	_, err := draft.Add(part, 0)
	assert.ErrorIs(t, err, apperror.ErrQuantityOutOfRange)

	_, err = draft.Add(part, -1)
	assert.ErrorIs(t, err, apperror.ErrQuantityOutOfRange)

	_, err = draft.Add(part, 4)
	assert.ErrorIs(t, err, apperror.ErrQuantityOutOfRange)

	assert.True(t, draft.IsEmpty(), "failed add must leave the draft unchanged")
}

func TestAddMergesDuplicatePartAndRecomputes(t *testing.T) {
	part := testPart("Air Filter", 100, 70, 9, 9, 10)

	draft, err := NewDraft(true).Add(part, 2)
	require.NoError(t, err)
	draft, err = draft.Add(part, 3)
	require.NoError(t, err)

	require.Len(t, draft.Lines, 1, "duplicate part must merge, not duplicate")
	line := draft.Lines[0]
	assert.Equal(t, 5, line.Quantity)
	// everything re-derived from the merged quantity
	assert.True(t, line.SGSTAmount.Equal(decimal.NewFromInt(45)), "sgst = %s", line.SGSTAmount)
	assert.True(t, line.Subtotal.Equal(decimal.NewFromInt(590)), "subtotal = %s", line.Subtotal)
}

func TestAddMergeRejectsExceedingStock(t *testing.T) {
	part := testPart("Clutch Plate", 900, 700, 0, 0, 4)

	draft, err := NewDraft(true).Add(part, 3)
	require.NoError(t, err)

	_, err = draft.Add(part, 2)
	assert.ErrorIs(t, err, apperror.ErrQuantityOutOfRange)
	assert.Equal(t, 3, draft.Lines[0].Quantity)
}

func TestSetLinePriceRecomputesTaxAndSubtotal(t *testing.T) {
	part := testPart("Headlight", 500, 350, 6, 6, 8)

	draft, err := NewDraft(true).Add(part, 2)
	require.NoError(t, err)

	draft, err = draft.SetLinePrice(part.ID, decimal.NewFromInt(400))
	require.NoError(t, err)

	line := draft.Lines[0]
	assert.Equal(t, 2, line.Quantity, "price override must not change quantity")
	// unit: 400 + 24 + 24 = 448
	assert.True(t, line.Price.Equal(decimal.NewFromInt(448)), "price = %s", line.Price)
	assert.True(t, line.SGSTAmount.Equal(decimal.NewFromInt(48)))
	assert.True(t, line.Subtotal.Equal(decimal.NewFromInt(896)))
}

func TestSetLinePriceRejectsNegative(t *testing.T) {
	part := testPart("Wiper", 150, 90, 0, 0, 5)
	draft, err := NewDraft(true).Add(part, 1)
	require.NoError(t, err)

	_, err = draft.SetLinePrice(part.ID, decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, apperror.ErrInvalidPrice)
}

func TestSetLinePriceZeroIsAllowed(t *testing.T) {
	part := testPart("Sticker", 20, 5, 0, 0, 50)
	draft, err := NewDraft(true).Add(part, 1)
	require.NoError(t, err)

	draft, err = draft.SetLinePrice(part.ID, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, draft.Lines[0].Subtotal.IsZero())
}

func TestRemoveDropsOnlyThatLine(t *testing.T) {
	a := testPart("Part A", 100, 50, 9, 9, 10)
	b := testPart("Part B", 200, 120, 9, 9, 10)

	draft, err := NewDraft(true).Add(a, 1)
	require.NoError(t, err)
	draft, err = draft.Add(b, 2)
	require.NoError(t, err)

	draft = draft.Remove(a.ID)
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, b.ID, draft.Lines[0].PartID)

	// removing an unknown part is a no-op
	draft = draft.Remove(uuid.New())
	assert.Len(t, draft.Lines, 1)
}

func TestAggregates(t *testing.T) {
	a := testPart("Part A", 100, 60, 9, 9, 10) // 2 units: sell 200, buy 120, gst 36
	b := testPart("Part B", 50, 30, 0, 0, 10)  // 3 units: sell 150, buy 90, no tax

	draft, err := NewDraft(true).Add(a, 2)
	require.NoError(t, err)
	draft, err = draft.Add(b, 3)
	require.NoError(t, err)

	assert.True(t, draft.TotalSelling().Equal(decimal.NewFromInt(350)), "selling = %s", draft.TotalSelling())
	assert.True(t, draft.TotalBuying().Equal(decimal.NewFromInt(210)), "buying = %s", draft.TotalBuying())
	assert.True(t, draft.TotalGST().Equal(decimal.NewFromInt(36)), "gst = %s", draft.TotalGST())
	// 236 + 150
	assert.True(t, draft.TotalAmount().Equal(decimal.NewFromInt(386)), "total = %s", draft.TotalAmount())
	assert.True(t, draft.Profit().Equal(decimal.NewFromInt(140)), "profit = %s", draft.Profit())
}

func TestDraftOperationsDoNotMutateReceiver(t *testing.T) {
	part := testPart("Part A", 100, 60, 9, 9, 10)

	base, err := NewDraft(true).Add(part, 1)
	require.NoError(t, err)

	_, err = base.Add(part, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, base.Lines[0].Quantity)

	_, err = base.SetLinePrice(part.ID, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, base.Lines[0].SellingPrice.Equal(decimal.NewFromInt(100)))

	base.Remove(part.ID)
	assert.Len(t, base.Lines, 1)
}

func TestFractionalTaxDoesNotCompoundOnMerge(t *testing.T) {
	// 2.5% of 99.99 per unit; merged amounts must equal a fresh
	// computation at the final quantity
	part := testPart("Gasket", 99.99, 60, 2.5, 2.5, 100)

	merged, err := NewDraft(true).Add(part, 7)
	require.NoError(t, err)
	merged, err = merged.Add(part, 5)
	require.NoError(t, err)

	fresh, err := NewDraft(true).Add(part, 12)
	require.NoError(t, err)

	assert.True(t, merged.Lines[0].SGSTAmount.Equal(fresh.Lines[0].SGSTAmount))
	assert.True(t, merged.Lines[0].Subtotal.Equal(fresh.Lines[0].Subtotal))
}
