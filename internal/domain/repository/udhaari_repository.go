package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// UdhaariRepository defines the interface for customer credit operations
type UdhaariRepository interface {
	Create(ctx context.Context, udhaari *entity.Udhaari) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Udhaari, error)
	Update(ctx context.Context, udhaari *entity.Udhaari) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Udhaari, int64, error)
	// Totals returns the summed amount and paid amount across all entries
	Totals(ctx context.Context, userID uuid.UUID) (amount, paid decimal.Decimal, err error)
	// CountOpen counts entries that are not fully repaid
	CountOpen(ctx context.Context, userID uuid.UUID) (int64, error)
}
