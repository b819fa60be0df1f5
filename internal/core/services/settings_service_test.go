package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/config"
	"aw-society/internal/core/domain"
)

type fakeSettingsRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
}

func (f *fakeSettingsRepo) GetAll(ctx context.Context) ([]*models.Setting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Setting
	for k, v := range f.values {
		out = append(out, &models.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, key, value string) (*models.Setting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return &models.Setting{Key: key, Value: value}, nil
}

func testFallback() config.SocietyConfig {
	return config.SocietyConfig{
		DefaultPlanAmount:        1000,
		DefaultInterestRate:      2,
		DefaultLoanDurationMonth: 12,
	}
}

func TestDefaultsFallBackToConfig(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), testFallback())
	ctx := context.Background()

	if got := svc.DefaultPlanAmount(ctx); got != 1000 {
		t.Errorf("plan amount = %v, want 1000", got)
	}
	if got := svc.DefaultInterestRate(ctx); got != 2 {
		t.Errorf("interest rate = %v, want 2", got)
	}
	if got := svc.DefaultLoanDurationMonths(ctx); got != 12 {
		t.Errorf("duration = %v, want 12", got)
	}
}

func TestStoredValuesWinOverConfig(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.values[models.SettingPlanAmount] = "2500"
	repo.values[models.SettingInterestRate] = "3.5"
	repo.values[models.SettingLoanDurationMonth] = "18"

	svc := NewSettingsService(repo, testFallback())
	ctx := context.Background()

	if got := svc.DefaultPlanAmount(ctx); got != 2500 {
		t.Errorf("plan amount = %v, want 2500", got)
	}
	if got := svc.DefaultInterestRate(ctx); got != 3.5 {
		t.Errorf("interest rate = %v, want 3.5", got)
	}
	if got := svc.DefaultLoanDurationMonths(ctx); got != 18 {
		t.Errorf("duration = %v, want 18", got)
	}
}

func TestUnparseableValuesFallBack(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.values[models.SettingPlanAmount] = "not-a-number"
	repo.values[models.SettingLoanDurationMonth] = "-4"

	svc := NewSettingsService(repo, testFallback())
	ctx := context.Background()

	if got := svc.DefaultPlanAmount(ctx); got != 1000 {
		t.Errorf("plan amount = %v, want fallback 1000", got)
	}
	if got := svc.DefaultLoanDurationMonths(ctx); got != 12 {
		t.Errorf("duration = %v, want fallback 12", got)
	}
}

func TestUpdateRequiresKey(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), testFallback())
	if _, err := svc.Update(context.Background(), "", "1"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestUpdatePersists(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, testFallback())
	ctx := context.Background()

	if _, err := svc.Update(ctx, models.SettingInterestRate, "4"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := svc.DefaultInterestRate(ctx); got != 4 {
		t.Errorf("interest rate after update = %v, want 4", got)
	}
}
