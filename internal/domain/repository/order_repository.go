package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithItems persists the order, its items and the matching stock
	// decrements in one transaction. Each decrement only applies when the
	// part still has enough stock; parts that do not are returned in
	// failedPartIDs and the whole transaction is rolled back.
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem, decrements map[uuid.UUID]int) (failedPartIDs []uuid.UUID, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// LatestOrderNumber returns the order number of the most recently
	// created order, or "" when the user has none.
	LatestOrderNumber(ctx context.Context, userID uuid.UUID) (string, error)
	List(ctx context.Context, userID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *OrderCursorFilterParams) ([]entity.Order, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// OrderCursorFilterParams contains cursor-based filtering for order queries
type OrderCursorFilterParams struct {
	Cursor     *pagination.CursorParams
	Search     string
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
