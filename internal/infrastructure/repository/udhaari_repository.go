package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/enum"
	domainRepo "github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/pagination"
	"gorm.io/gorm"
)

type udhaariRepository struct {
	db *gorm.DB
}

// NewUdhaariRepository creates a new udhaari repository
func NewUdhaariRepository(db *gorm.DB) domainRepo.UdhaariRepository {
	return &udhaariRepository{db: db}
}

func (r *udhaariRepository) Create(ctx context.Context, udhaari *entity.Udhaari) error {
	return r.db.WithContext(ctx).Create(udhaari).Error
}

func (r *udhaariRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Udhaari, error) {
	var udhaari entity.Udhaari
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&udhaari, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &udhaari, err
}

func (r *udhaariRepository) Update(ctx context.Context, udhaari *entity.Udhaari) error {
	return r.db.WithContext(ctx).Save(udhaari).Error
}

func (r *udhaariRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Udhaari, int64, error) {
	var udhaaris []entity.Udhaari
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Udhaari{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&udhaaris).Error

	return udhaaris, total, err
}

// Totals returns the summed amount and paid amount across all entries
func (r *udhaariRepository) Totals(ctx context.Context, userID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	var row struct {
		Amount decimal.Decimal
		Paid   decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&entity.Udhaari{}).
		Select("COALESCE(SUM(amount), 0) AS amount, COALESCE(SUM(paid_amount), 0) AS paid").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return row.Amount, row.Paid, nil
}

// CountOpen counts entries that are not fully repaid
func (r *udhaariRepository) CountOpen(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Udhaari{}).
		Where("user_id = ? AND status <> ?", userID, enum.UdhaariStatusPaid).
		Count(&count).Error
	return count, err
}
