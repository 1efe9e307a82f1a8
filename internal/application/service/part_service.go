package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/apperror"
	"github.com/vijaya/autospares-api/pkg/sequence"
)

// PartService handles catalog and stock operations
type PartService struct {
	partRepo repository.PartRepository
}

// NewPartService creates a new part service
func NewPartService(partRepo repository.PartRepository) *PartService {
	return &PartService{partRepo: partRepo}
}

// CreatePartInput represents the create part input
type CreatePartInput struct {
	UserID            uuid.UUID
	HSNCode           string // generated when blank
	PartName          string
	Brand             string
	Category          string
	BuyingPrice       decimal.Decimal
	SellingPrice      decimal.Decimal
	SGSTPercentage    decimal.Decimal
	CGSTPercentage    decimal.Decimal
	Quantity          int
	LowStockThreshold int
	ImageURL          *string
}

// CreatePart adds a part to the catalog, generating an HSN code when
// none was supplied.
func (s *PartService) CreatePart(ctx context.Context, input *CreatePartInput) (*entity.Part, error) {
	if input.Quantity < 0 {
		return nil, apperror.ErrQuantityOutOfRange
	}
	if input.BuyingPrice.IsNegative() || input.SellingPrice.IsNegative() {
		return nil, apperror.ErrInvalidPrice
	}

	code := input.HSNCode
	if code == "" {
		latest, err := s.partRepo.LatestHSNCode(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		code = sequence.Next(sequence.HSNPrefix, latest)
	} else {
		existing, err := s.partRepo.GetByHSNCode(ctx, input.UserID, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A part with this HSN code already exists")
		}
	}

	threshold := input.LowStockThreshold
	if threshold <= 0 {
		threshold = 5
	}

	part := &entity.Part{
		UserID:            input.UserID,
		HSNCode:           code,
		PartName:          input.PartName,
		Brand:             input.Brand,
		Category:          input.Category,
		BuyingPrice:       input.BuyingPrice,
		SellingPrice:      input.SellingPrice,
		SGSTPercentage:    input.SGSTPercentage,
		CGSTPercentage:    input.CGSTPercentage,
		Quantity:          input.Quantity,
		LowStockThreshold: threshold,
		ImageURL:          input.ImageURL,
	}

	if err := s.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

// GetPart returns a part scoped to the owner
func (s *PartService) GetPart(ctx context.Context, userID, partID uuid.UUID) (*entity.Part, error) {
	part, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil || part.UserID != userID {
		return nil, apperror.NewNotFoundError("Part")
	}
	return part, nil
}

// UpdatePartInput represents the update part input; nil fields keep
// their current value
type UpdatePartInput struct {
	UserID            uuid.UUID
	PartID            uuid.UUID
	PartName          *string
	Brand             *string
	Category          *string
	BuyingPrice       *decimal.Decimal
	SellingPrice      *decimal.Decimal
	SGSTPercentage    *decimal.Decimal
	CGSTPercentage    *decimal.Decimal
	LowStockThreshold *int
	ImageURL          *string
}

// UpdatePart updates catalog fields of a part
func (s *PartService) UpdatePart(ctx context.Context, input *UpdatePartInput) (*entity.Part, error) {
	part, err := s.GetPart(ctx, input.UserID, input.PartID)
	if err != nil {
		return nil, err
	}

	if input.PartName != nil {
		part.PartName = *input.PartName
	}
	if input.Brand != nil {
		part.Brand = *input.Brand
	}
	if input.Category != nil {
		part.Category = *input.Category
	}
	if input.BuyingPrice != nil {
		if input.BuyingPrice.IsNegative() {
			return nil, apperror.ErrInvalidPrice
		}
		part.BuyingPrice = *input.BuyingPrice
	}
	if input.SellingPrice != nil {
		if input.SellingPrice.IsNegative() {
			return nil, apperror.ErrInvalidPrice
		}
		part.SellingPrice = *input.SellingPrice
	}
	if input.SGSTPercentage != nil {
		part.SGSTPercentage = *input.SGSTPercentage
	}
	if input.CGSTPercentage != nil {
		part.CGSTPercentage = *input.CGSTPercentage
	}
	if input.LowStockThreshold != nil {
		part.LowStockThreshold = *input.LowStockThreshold
	}
	if input.ImageURL != nil {
		part.ImageURL = input.ImageURL
	}

	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

// SetStock sets a part's stock level to an explicit quantity (restock)
func (s *PartService) SetStock(ctx context.Context, userID, partID uuid.UUID, quantity int) (*entity.Part, error) {
	if quantity < 0 {
		return nil, apperror.ErrQuantityOutOfRange
	}

	part, err := s.GetPart(ctx, userID, partID)
	if err != nil {
		return nil, err
	}

	if err := s.partRepo.SetQuantity(ctx, part.ID, quantity); err != nil {
		return nil, err
	}

	part.Quantity = quantity
	return part, nil
}

// SetImage attaches an uploaded image URL to a part
func (s *PartService) SetImage(ctx context.Context, userID, partID uuid.UUID, imageURL string) (*entity.Part, error) {
	part, err := s.GetPart(ctx, userID, partID)
	if err != nil {
		return nil, err
	}

	part.ImageURL = &imageURL
	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	return part, nil
}

// DeletePart removes a part from the catalog
func (s *PartService) DeletePart(ctx context.Context, userID, partID uuid.UUID) error {
	part, err := s.GetPart(ctx, userID, partID)
	if err != nil {
		return err
	}
	return s.partRepo.Delete(ctx, part.ID)
}

// ListParts returns parts with page-based pagination
func (s *PartService) ListParts(ctx context.Context, userID uuid.UUID, params *repository.PartFilterParams) ([]entity.Part, int64, error) {
	return s.partRepo.List(ctx, userID, params)
}

// ListPartsWithCursor returns parts with cursor-based pagination
func (s *PartService) ListPartsWithCursor(ctx context.Context, userID uuid.UUID, params *repository.PartCursorFilterParams) ([]entity.Part, error) {
	return s.partRepo.ListWithCursor(ctx, userID, params)
}

// GetLowStock returns parts at or below their low-stock threshold
func (s *PartService) GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Part, error) {
	return s.partRepo.GetLowStock(ctx, userID)
}
