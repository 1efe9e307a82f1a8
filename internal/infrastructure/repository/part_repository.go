package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	domainRepo "github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/pagination"
	"gorm.io/gorm"
)

type partRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) domainRepo.PartRepository {
	return &partRepository{db: db}
}

func (r *partRepository) Create(ctx context.Context, part *entity.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *partRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	var part entity.Part
	err := r.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

// GetByIDs retrieves multiple parts by their IDs in a single query
func (r *partRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Part, error) {
	if len(ids) == 0 {
		return []entity.Part{}, nil
	}
	var parts []entity.Part
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&parts).Error
	return parts, err
}

func (r *partRepository) GetByHSNCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Part, error) {
	var part entity.Part
	err := r.db.WithContext(ctx).First(&part, "user_id = ? AND hsn_code = ?", userID, code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

func (r *partRepository) Update(ctx context.Context, part *entity.Part) error {
	return r.db.WithContext(ctx).Save(part).Error
}

func (r *partRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Part{}, "id = ?", id).Error
}

func applyPartFilters(query *gorm.DB, search, category string, lowStock, inStock bool) *gorm.DB {
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("part_name ILIKE ? OR hsn_code ILIKE ? OR brand ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if lowStock {
		query = query.Where("quantity <= low_stock_threshold")
	}
	if inStock {
		query = query.Where("quantity > 0")
	}
	return query
}

func (r *partRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.PartFilterParams) ([]entity.Part, int64, error) {
	var parts []entity.Part
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Part{}).
		Where("user_id = ?", userID)
	query = applyPartFilters(query, params.Search, params.Category, params.LowStock, params.InStock)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&parts).Error

	return parts, total, err
}

// ListWithCursor returns parts using cursor-based pagination
func (r *partRepository) ListWithCursor(ctx context.Context, userID uuid.UUID, params *domainRepo.PartCursorFilterParams) ([]entity.Part, error) {
	var parts []entity.Part

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Part{}).
		Where("user_id = ?", userID)
	query = applyPartFilters(query, params.Search, params.Category, params.LowStock, params.InStock)

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Limit(params.Cursor.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&parts).Error

	return parts, err
}

func (r *partRepository) GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Part, error) {
	var parts []entity.Part
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity <= low_stock_threshold", userID).
		Order("quantity ASC").
		Find(&parts).Error
	return parts, err
}

// LatestHSNCode returns the HSN code of the most recently created part
func (r *partRepository) LatestHSNCode(ctx context.Context, userID uuid.UUID) (string, error) {
	var part entity.Part
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&part).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return part.HSNCode, nil
}

// SetQuantity sets the stock level to an explicit value (restocking)
func (r *partRepository) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entity.Part{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *partRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Part{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *partRepository) CountLowStock(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Part{}).
		Where("user_id = ? AND quantity <= low_stock_threshold", userID).
		Count(&count).Error
	return count, err
}
