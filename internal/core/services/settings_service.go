package services

import (
	"context"
	"fmt"
	"strconv"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/config"
	"aw-society/internal/core/domain"
)

// SettingsService is a thin passthrough over the settings key-value store.
// It also implements LoanDefaults: stored values win, config defaults fill in
// when a key is unset or unparseable.
type SettingsService struct {
	repo     repositories.SettingsRepository
	fallback config.SocietyConfig
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repositories.SettingsRepository, fallback config.SocietyConfig) *SettingsService {
	return &SettingsService{repo: repo, fallback: fallback}
}

// GetAll returns every setting
func (s *SettingsService) GetAll(ctx context.Context) ([]*models.Setting, error) {
	return s.repo.GetAll(ctx)
}

// Update upserts one key→value pair
func (s *SettingsService) Update(ctx context.Context, key, value string) (*models.Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", domain.ErrValidation)
	}
	return s.repo.Upsert(ctx, key, value)
}

// DefaultPlanAmount returns the society-wide monthly plan amount
func (s *SettingsService) DefaultPlanAmount(ctx context.Context) float64 {
	return s.floatSetting(ctx, models.SettingPlanAmount, s.fallback.DefaultPlanAmount)
}

// DefaultInterestRate returns the default loan interest rate percent
func (s *SettingsService) DefaultInterestRate(ctx context.Context) float64 {
	return s.floatSetting(ctx, models.SettingInterestRate, s.fallback.DefaultInterestRate)
}

// DefaultLoanDurationMonths returns the default loan duration in months
func (s *SettingsService) DefaultLoanDurationMonths(ctx context.Context) int {
	raw, err := s.repo.Get(ctx, models.SettingLoanDurationMonth)
	if err != nil || raw == "" {
		return s.fallback.DefaultLoanDurationMonth
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months <= 0 {
		return s.fallback.DefaultLoanDurationMonth
	}
	return months
}

func (s *SettingsService) floatSetting(ctx context.Context, key string, fallback float64) float64 {
	raw, err := s.repo.Get(ctx, key)
	if err != nil || raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
