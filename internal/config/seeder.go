package config

import (
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/core/domain"
	"aw-society/internal/pkg/idgen"
	"aw-society/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedSettings(); err != nil {
		return err
	}
	if err := s.seedAdmin(); err != nil {
		log.Printf("Admin seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedSettings inserts the society defaults the ledger reads when a loan
// request omits its extras. Existing rows are never overwritten.
func (s *Seeder) seedSettings() error {
	defaults := map[string]string{
		models.SettingPlanAmount:        strconv.FormatFloat(s.cfg.Society.DefaultPlanAmount, 'f', -1, 64),
		models.SettingInterestRate:      strconv.FormatFloat(s.cfg.Society.DefaultInterestRate, 'f', -1, 64),
		models.SettingLoanDurationMonth: strconv.Itoa(s.cfg.Society.DefaultLoanDurationMonth),
	}

	for key, value := range defaults {
		var count int64
		s.db.Model(&models.Setting{}).Where("`key` = ?", key).Count(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}
	return nil
}

// seedAdmin creates a default admin account when none exists.
// Development convenience only; production admins are created manually.
func (s *Seeder) seedAdmin() error {
	var count int64
	s.db.Model(&models.Member{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := models.NewMember(domain.RoleAdmin)
	admin.RegNo = idgen.NewRegNo()
	admin.Name = "Society Admin"
	admin.Email = "admin@awsociety.in"
	admin.Mobile = "9999999999"
	admin.Password = hashed

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin account %s", admin.Email)
	return nil
}
