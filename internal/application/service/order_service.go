package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/application/billing"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/apperror"
	"github.com/vijaya/autospares-api/pkg/sequence"
	"gorm.io/gorm"
)

// maxOrderNumberRetries bounds how often a commit is retried with a
// freshly generated number after losing a duplicate-number race.
const maxOrderNumberRetries = 3

// OrderService handles order commit and retrieval
type OrderService struct {
	orderRepo    repository.OrderRepository
	partRepo     repository.PartRepository
	customerRepo repository.CustomerRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	partRepo repository.PartRepository,
	customerRepo repository.CustomerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		partRepo:     partRepo,
		customerRepo: customerRepo,
	}
}

// OrderLineInput is one requested line of a new order. Price, when set,
// overrides the part's selling price for this line.
type OrderLineInput struct {
	PartID   uuid.UUID
	Quantity int
	Price    *decimal.Decimal
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID     uuid.UUID
	CustomerID uuid.UUID
	IncludeTax bool
	Items      []OrderLineInput
}

// CreateOrder validates the request, prices it as a draft, and commits
// the order, its items and the stock decrements in one transaction.
// Validation failures surface before anything touches the database.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.CustomerID == uuid.Nil {
		return nil, apperror.ErrNoCustomerSelected
	}
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyOrder
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Batch fetch all parts in one query (prevents N+1)
	partIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		partIDs[i] = item.PartID
	}

	parts, err := s.partRepo.GetByIDs(ctx, partIDs)
	if err != nil {
		return nil, err
	}

	partMap := make(map[uuid.UUID]*entity.Part, len(parts))
	for i := range parts {
		partMap[parts[i].ID] = &parts[i]
	}

	// Price the request as a draft; the draft enforces the quantity and
	// price validation rules and merges duplicate part lines.
	draft := billing.NewDraft(input.IncludeTax)
	for _, item := range input.Items {
		part, exists := partMap[item.PartID]
		if !exists || part.UserID != input.UserID {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Part %s", item.PartID))
		}

		draft, err = draft.Add(part, item.Quantity)
		if err != nil {
			return nil, err
		}
		if item.Price != nil {
			draft, err = draft.SetLinePrice(part.ID, *item.Price)
			if err != nil {
				return nil, err
			}
		}
	}

	items := make([]entity.OrderItem, 0, len(draft.Lines))
	decrements := make(map[uuid.UUID]int, len(draft.Lines))
	for _, line := range draft.Lines {
		items = append(items, entity.OrderItem{
			PartID:       line.PartID,
			PartName:     line.PartName,
			Quantity:     line.Quantity,
			Price:        line.Price,
			BuyingPrice:  line.BuyingPrice,
			SellingPrice: line.SellingPrice,
			SGSTAmount:   line.SGSTAmount,
			CGSTAmount:   line.CGSTAmount,
			TotalGST:     line.TotalGST,
			Subtotal:     line.Subtotal,
		})
		decrements[line.PartID] = line.Quantity
	}

	// Commit, regenerating the order number if a concurrent order took
	// it first. The unique (user_id, order_number) index is what makes
	// the read-increment numbering scheme safe.
	var order *entity.Order
	for attempt := 0; attempt < maxOrderNumberRetries; attempt++ {
		latest, err := s.orderRepo.LatestOrderNumber(ctx, input.UserID)
		if err != nil {
			return nil, err
		}

		order = &entity.Order{
			UserID:            input.UserID,
			OrderNumber:       sequence.Next(sequence.OrderPrefix, latest),
			CustomerID:        input.CustomerID,
			TotalAmount:       draft.TotalAmount(),
			TotalBuyingPrice:  draft.TotalBuying(),
			TotalSellingPrice: draft.TotalSelling(),
			ProfitAmount:      draft.Profit(),
		}

		failedIDs, err := s.orderRepo.CreateWithItems(ctx, order, cloneItems(items), decrements)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if len(failedIDs) > 0 {
			var failedNames []string
			for _, id := range failedIDs {
				if part, exists := partMap[id]; exists {
					failedNames = append(failedNames, part.DisplayName())
				}
			}
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %v", failedNames))
		}

		return s.orderRepo.GetWithItems(ctx, order.ID)
	}

	return nil, apperror.NewConflictError("Could not allocate an order number, please retry")
}

// cloneItems gives each commit attempt fresh item rows so a retried
// insert does not reuse IDs generated by the rolled-back attempt.
func cloneItems(items []entity.OrderItem) []entity.OrderItem {
	cloned := make([]entity.OrderItem, len(items))
	copy(cloned, items)
	for i := range cloned {
		cloned[i].ID = uuid.Nil
	}
	return cloned
}

// GetOrder returns an order with its items, scoped to the owner
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns orders with page-based pagination
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, userID, params)
}

// ListOrdersWithCursor returns orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, userID uuid.UUID, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	return s.orderRepo.ListWithCursor(ctx, userID, params)
}
