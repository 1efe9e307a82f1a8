package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/pkg/apperror"
	"github.com/vijaya/autospares-api/pkg/pagination"
	"github.com/vijaya/autospares-api/pkg/sequence"
	"gorm.io/gorm"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   *string
	Email   *string
	Address *string
}

// CreateCustomer creates a customer with a generated code. A lost
// duplicate-code race regenerates and retries, bounded like the order
// number allocation.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	for attempt := 0; attempt < maxOrderNumberRetries; attempt++ {
		latest, err := s.customerRepo.LatestCode(ctx, input.UserID)
		if err != nil {
			return nil, err
		}

		customer := &entity.Customer{
			UserID:  input.UserID,
			Code:    sequence.Next(sequence.CustomerPrefix, latest),
			Name:    input.Name,
			Phone:   input.Phone,
			Email:   input.Email,
			Address: input.Address,
		}

		err = s.customerRepo.Create(ctx, customer)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return customer, nil
	}

	return nil, apperror.NewConflictError("Could not allocate a customer code, please retry")
}

// GetCustomer returns a customer scoped to the owner
func (s *CustomerService) GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	UserID     uuid.UUID
	CustomerID uuid.UUID
	Name       *string
	Phone      *string
	Email      *string
	Address    *string
}

// UpdateCustomer updates a customer's contact details. The code is
// never changed after creation.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, input.UserID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, userID, customerID)
	if err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customer.ID)
}

// ListCustomers returns customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, userID, params, search)
}

// ListCustomersWithCursor returns customers with cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	return s.customerRepo.ListWithCursor(ctx, userID, params, search)
}
