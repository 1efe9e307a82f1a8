package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/apperror"
	"gorm.io/gorm"
)

func catalogPart(userID uuid.UUID, name string, selling, buying float64, sgst, cgst float64, stock int) *entity.Part {
	return &entity.Part{
		ID:             uuid.New(),
		UserID:         userID,
		PartName:       name,
		Brand:          "Bosch",
		SellingPrice:   decimal.NewFromFloat(selling),
		BuyingPrice:    decimal.NewFromFloat(buying),
		SGSTPercentage: decimal.NewFromFloat(sgst),
		CGSTPercentage: decimal.NewFromFloat(cgst),
		Quantity:       stock,
	}
}

func orderFixture() (*OrderService, *fakeOrderRepo, *fakePartRepo, uuid.UUID, *entity.Customer) {
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), UserID: userID, Code: "CUST-001", Name: "Ramesh"}

	partRepo := newFakePartRepo()
	orderRepo := newFakeOrderRepo(partRepo)
	customerRepo := newFakeCustomerRepo(customer)

	return NewOrderService(orderRepo, partRepo, customerRepo), orderRepo, partRepo, userID, customer
}

func TestCreateOrderCommitsTotalsAndStock(t *testing.T) {
	svc, orderRepo, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Oil Filter", 100, 60, 9, 9, 10)
	require.NoError(t, partRepo.Create(context.Background(), part))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		IncludeTax: true,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-001", order.OrderNumber)
	// unit 100 + 9 + 9 = 118, two units
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(236)), "total = %s", order.TotalAmount)
	assert.True(t, order.TotalSellingPrice.Equal(decimal.NewFromInt(200)))
	assert.True(t, order.TotalBuyingPrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, order.ProfitAmount.Equal(decimal.NewFromInt(80)))

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Oil Filter (Bosch)", order.Items[0].PartName)
	assert.Equal(t, 8, part.Quantity, "stock must be decremented atomically with the commit")
	assert.Equal(t, 1, orderRepo.commits)
}

func TestCreateOrderWithoutTaxKeepsGSTSnapshots(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Oil Filter", 100, 60, 9, 9, 10)
	require.NoError(t, partRepo.Create(context.Background(), part))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		IncludeTax: false,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// base price charged, GST amounts still recorded on the item
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200)), "total = %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.True(t, item.Price.Equal(decimal.NewFromInt(100)))
	assert.True(t, item.SGSTAmount.Equal(decimal.NewFromInt(18)), "sgst = %s", item.SGSTAmount)
	assert.True(t, item.CGSTAmount.Equal(decimal.NewFromInt(18)), "cgst = %s", item.CGSTAmount)
	assert.True(t, item.TotalGST.Equal(decimal.NewFromInt(36)))
}

func TestCreateOrderMergesDuplicateLines(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Air Filter", 100, 70, 9, 9, 10)
	require.NoError(t, partRepo.Create(context.Background(), part))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		IncludeTax: true,
		Items: []OrderLineInput{
			{PartID: part.ID, Quantity: 2},
			{PartID: part.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.Equal(t, 5, part.Quantity)
}

func TestCreateOrderValidatesRequest(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Spark Plug", 80, 50, 0, 0, 3)
	require.NoError(t, partRepo.Create(context.Background(), part))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: uuid.Nil,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperror.ErrNoCustomerSelected)

	_, err = svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyOrder)

	_, err = svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 4}},
	})
	assert.ErrorIs(t, err, apperror.ErrQuantityOutOfRange)
}

func TestCreateOrderRejectsForeignCustomerAndPart(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	foreignPart := catalogPart(uuid.New(), "Brake Pad", 250, 180, 9, 9, 5)
	require.NoError(t, partRepo.Create(context.Background(), foreignPart))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     uuid.New(), // not the customer's owner
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: foreignPart.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Customer not found")

	_, err = svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: foreignPart.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateOrderAppliesPriceOverride(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Headlight", 500, 350, 6, 6, 8)
	require.NoError(t, partRepo.Create(context.Background(), part))

	override := decimal.NewFromInt(400)
	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		IncludeTax: true,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 2, Price: &override}},
	})
	require.NoError(t, err)

	// unit 400 + 24 + 24 = 448, two units
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(896)), "total = %s", order.TotalAmount)
	assert.True(t, order.Items[0].SellingPrice.Equal(override))
}

func TestCreateOrderInsufficientStockAtCommit(t *testing.T) {
	svc, orderRepo, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Clutch Plate", 900, 700, 0, 0, 3)
	require.NoError(t, partRepo.Create(context.Background(), part))

	// another commit takes the stock between validation and this commit
	orderRepo.forceFailedIDs = []uuid.UUID{part.ID}

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 3}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
	assert.Contains(t, err.Error(), "Clutch Plate (Bosch)")
	assert.Empty(t, orderRepo.orders, "rejected commit must not persist an order")
}

func TestCreateOrderRetriesOnDuplicateNumber(t *testing.T) {
	svc, orderRepo, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Wiper", 150, 90, 0, 0, 5)
	require.NoError(t, partRepo.Create(context.Background(), part))

	orderRepo.failuresLeft = 1
	orderRepo.createErr = gorm.ErrDuplicatedKey

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, orderRepo.commits, "lost race must retry with a fresh number")
	assert.NotEmpty(t, order.OrderNumber)
}

func TestCreateOrderGivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, orderRepo, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Wiper", 150, 90, 0, 0, 5)
	require.NoError(t, partRepo.Create(context.Background(), part))

	orderRepo.failuresLeft = maxOrderNumberRetries
	orderRepo.createErr = gorm.ErrDuplicatedKey

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, maxOrderNumberRetries, orderRepo.commits)
}

func TestCreateOrderNumbersAreSequential(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Sticker", 20, 5, 0, 0, 50)
	require.NoError(t, partRepo.Create(context.Background(), part))

	input := &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 1}},
	}

	first, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "ORD-001", first.OrderNumber)
	assert.Equal(t, "ORD-002", second.OrderNumber)
}

func TestGetOrderScopesToOwner(t *testing.T) {
	svc, _, partRepo, userID, customer := orderFixture()
	part := catalogPart(userID, "Gasket", 99, 60, 2.5, 2.5, 100)
	require.NoError(t, partRepo.Create(context.Background(), part))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Items:      []OrderLineInput{{PartID: part.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := svc.GetOrder(context.Background(), userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.GetOrder(context.Background(), uuid.New(), order.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order not found")
}
