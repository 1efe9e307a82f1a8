package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/domain/repository"
)

// DashboardService aggregates the home-screen counters
type DashboardService struct {
	partRepo     repository.PartRepository
	customerRepo repository.CustomerRepository
	udhaariRepo  repository.UdhaariRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	partRepo repository.PartRepository,
	customerRepo repository.CustomerRepository,
	udhaariRepo repository.UdhaariRepository,
) *DashboardService {
	return &DashboardService{
		partRepo:     partRepo,
		customerRepo: customerRepo,
		udhaariRepo:  udhaariRepo,
	}
}

// DashboardStats holds the counters shown on the dashboard
type DashboardStats struct {
	TotalParts     int64 `json:"total_parts"`
	LowStockParts  int64 `json:"low_stock_parts"`
	TotalCustomers int64 `json:"total_customers"`
	OpenUdhaaris   int64 `json:"open_udhaaris"`
}

// GetStats returns the dashboard counters for a user
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	totalParts, err := s.partRepo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.partRepo.CountLowStock(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.customerRepo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	openUdhaaris, err := s.udhaariRepo.CountOpen(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalParts:     totalParts,
		LowStockParts:  lowStock,
		TotalCustomers: totalCustomers,
		OpenUdhaaris:   openUdhaaris,
	}, nil
}
