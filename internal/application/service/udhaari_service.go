package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/enum"
	"github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/apperror"
	"github.com/vijaya/autospares-api/pkg/pagination"
)

// UdhaariService handles customer credit tracking
type UdhaariService struct {
	udhaariRepo  repository.UdhaariRepository
	customerRepo repository.CustomerRepository
}

// NewUdhaariService creates a new udhaari service
func NewUdhaariService(udhaariRepo repository.UdhaariRepository, customerRepo repository.CustomerRepository) *UdhaariService {
	return &UdhaariService{udhaariRepo: udhaariRepo, customerRepo: customerRepo}
}

// CreateUdhaariInput represents the create udhaari input
type CreateUdhaariInput struct {
	UserID      uuid.UUID
	CustomerID  uuid.UUID
	Amount      decimal.Decimal
	Description *string
	DueDate     *time.Time
}

// CreateUdhaari records credit extended to a customer
func (s *UdhaariService) CreateUdhaari(ctx context.Context, input *CreateUdhaariInput) (*entity.Udhaari, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewUnprocessableError("Amount must be greater than zero")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Customer")
	}

	udhaari := &entity.Udhaari{
		UserID:      input.UserID,
		CustomerID:  input.CustomerID,
		Amount:      input.Amount,
		PaidAmount:  decimal.Zero,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      enum.UdhaariStatusPending,
	}

	if err := s.udhaariRepo.Create(ctx, udhaari); err != nil {
		return nil, err
	}

	return udhaari, nil
}

// GetUdhaari returns an udhaari entry scoped to the owner
func (s *UdhaariService) GetUdhaari(ctx context.Context, userID, udhaariID uuid.UUID) (*entity.Udhaari, error) {
	udhaari, err := s.udhaariRepo.GetByID(ctx, udhaariID)
	if err != nil {
		return nil, err
	}
	if udhaari == nil || udhaari.UserID != userID {
		return nil, apperror.NewNotFoundError("Udhaari")
	}
	return udhaari, nil
}

// RecordPayment applies a repayment to an udhaari entry and moves its
// status forward. Paying the full amount (or more) settles the entry.
func (s *UdhaariService) RecordPayment(ctx context.Context, userID, udhaariID uuid.UUID, amount decimal.Decimal) (*entity.Udhaari, error) {
	if !amount.IsPositive() {
		return nil, apperror.NewUnprocessableError("Payment amount must be greater than zero")
	}

	udhaari, err := s.GetUdhaari(ctx, userID, udhaariID)
	if err != nil {
		return nil, err
	}
	if udhaari.Status == enum.UdhaariStatusPaid {
		return nil, apperror.NewBadRequestError("This udhaari is already settled")
	}

	udhaari.PaidAmount = udhaari.PaidAmount.Add(amount)
	if udhaari.PaidAmount.GreaterThanOrEqual(udhaari.Amount) {
		udhaari.Status = enum.UdhaariStatusPaid
	} else {
		udhaari.Status = enum.UdhaariStatusPartial
	}

	if err := s.udhaariRepo.Update(ctx, udhaari); err != nil {
		return nil, err
	}

	return udhaari, nil
}

// ListUdhaaris returns udhaari entries with page-based pagination
func (s *UdhaariService) ListUdhaaris(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Udhaari, int64, error) {
	return s.udhaariRepo.List(ctx, userID, params)
}

// UdhaariSummary aggregates the credit book
type UdhaariSummary struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	OpenCount     int64           `json:"open_count"`
}

// GetSummary returns the aggregate credit position for a user
func (s *UdhaariService) GetSummary(ctx context.Context, userID uuid.UUID) (*UdhaariSummary, error) {
	amount, paid, err := s.udhaariRepo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	openCount, err := s.udhaariRepo.CountOpen(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UdhaariSummary{
		TotalAmount:   amount,
		PaidAmount:    paid,
		PendingAmount: amount.Sub(paid),
		OpenCount:     openCount,
	}, nil
}
