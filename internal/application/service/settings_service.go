package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/repository"
)

// defaultBusinessName is used until the owner sets their own
const defaultBusinessName = "Vijaya Auto Spares"

// SettingsService handles business settings operations
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's business settings, creating the
// default record on first access.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.BusinessSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.BusinessSettings{
		UserID:       userID,
		BusinessName: defaultBusinessName,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateSettingsInput represents the update settings input; nil fields
// keep their current value
type UpdateSettingsInput struct {
	UserID       uuid.UUID
	BusinessName *string
	Address      *string
	GSTIN        *string
	ContactPhone *string
	ContactEmail *string
}

// UpdateSettings updates the business details shown on invoices
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.BusinessSettings, error) {
	settings, err := s.GetSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil && *input.BusinessName != "" {
		settings.BusinessName = *input.BusinessName
	}
	if input.Address != nil {
		settings.Address = input.Address
	}
	if input.GSTIN != nil {
		settings.GSTIN = input.GSTIN
	}
	if input.ContactPhone != nil {
		settings.ContactPhone = input.ContactPhone
	}
	if input.ContactEmail != nil {
		settings.ContactEmail = input.ContactEmail
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateLogo attaches an uploaded logo URL to the business settings
func (s *SettingsService) UpdateLogo(ctx context.Context, userID uuid.UUID, logoURL string) (*entity.BusinessSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.LogoURL = &logoURL
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
