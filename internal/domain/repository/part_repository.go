package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// PartRepository defines the interface for part data operations
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Part, error)
	// GetByIDs retrieves multiple parts by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Part, error)
	GetByHSNCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *PartFilterParams) ([]entity.Part, int64, error)
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *PartCursorFilterParams) ([]entity.Part, error)
	GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Part, error)
	// LatestHSNCode returns the HSN code of the most recently created part,
	// or "" when the user has none.
	LatestHSNCode(ctx context.Context, userID uuid.UUID) (string, error)
	// SetQuantity sets the stock level to an explicit value (restocking)
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	CountLowStock(ctx context.Context, userID uuid.UUID) (int64, error)
}

// PartFilterParams contains filtering parameters for part queries
type PartFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	InStock    bool // quantity > 0 only (billing part picker)
	SortBy     string
	SortOrder  string
}

// PartCursorFilterParams contains cursor-based filtering parameters for part queries
type PartCursorFilterParams struct {
	Cursor   *pagination.CursorParams
	Search   string
	Category string
	LowStock bool
	InStock  bool
}
