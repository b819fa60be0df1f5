package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/core/domain"
)

// memberRepository implements MemberRepository
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// GetByEmail gets a member by email
func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// List lists members with pagination
func (r *memberRepository) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset).Limit(limit).Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// ListByRole lists all members with the given role
func (r *memberRepository) ListByRole(ctx context.Context, role string) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at DESC").Find(&members).Error
	return members, err
}

// ListActiveLoans lists members with an active loan
func (r *memberRepository) ListActiveLoans(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).Where("loan_active = ?", true).Find(&members).Error
	return members, err
}

// Update updates a member
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete hard deletes a member and all of their transactions in one database
// transaction. Other members' transactions are untouched.
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Member{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrMemberNotFound
		}
		return tx.Where("member_id = ?", id).Delete(&models.Transaction{}).Error
	})
}

// ExistsByEmail checks if an email is already registered
func (r *memberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByMobile checks if a mobile number is already registered
func (r *memberRepository) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("mobile = ?", mobile).Count(&count).Error
	return count > 0, err
}

// SetLoanStatus flips loan status with the precondition in the WHERE clause,
// so concurrent reminder runs cannot apply the transition twice.
func (r *memberRepository) SetLoanStatus(ctx context.Context, memberID uint, from, to string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ? AND loan_active = ? AND loan_status = ?", memberID, true, from).
		Update("loan_status", to)
	return result.RowsAffected > 0, result.Error
}
