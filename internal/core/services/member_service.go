package services

import (
	"context"
	"regexp"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/core/domain"
	"aw-society/internal/pkg/idgen"
	"aw-society/internal/pkg/password"
)

var mobilePattern = regexp.MustCompile(`^[789]\d{9}$`)

// MemberService handles member lifecycle. Profile updates are restricted to
// non-financial fields: the only path that touches a member's financials is
// the ledger.
type MemberService struct {
	memberRepo repositories.MemberRepository
	txnRepo    repositories.TransactionRepository
	notifier   Notifier
	defaults   LoanDefaults
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository, txnRepo repositories.TransactionRepository, notifier Notifier, defaults LoanDefaults) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		notifier:   notifier,
		defaults:   defaults,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Mobile            string  `json:"mobile"`
	Address           string  `json:"address"`
	Pincode           string  `json:"pincode"`
	Password          string  `json:"password"`
	PlanAmount        float64 `json:"plan_amount"`
	PlanDurationYears int     `json:"plan_duration_years"`
	AccountHolder     string  `json:"account_holder"`
	BankName          string  `json:"bank_name"`
	AccountNumber     string  `json:"account_number"`
	IFSCCode          string  `json:"ifsc_code"`
}

// Register creates a member with a generated registration number and zeroed
// financial state (collection due, no loan). Duplicate email and mobile fail
// with distinct conflict errors.
func (s *MemberService) Register(ctx context.Context, input *RegisterInput) (*models.Member, error) {
	if !mobilePattern.MatchString(input.Mobile) {
		return nil, domain.ErrInvalidMobile
	}

	if taken, err := s.memberRepo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}
	if taken, err := s.memberRepo.ExistsByMobile(ctx, input.Mobile); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrMobileTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	member := models.NewMember(domain.RoleMember)
	member.RegNo = idgen.NewRegNo()
	member.Name = input.Name
	member.Email = input.Email
	member.Mobile = input.Mobile
	member.Address = input.Address
	member.Pincode = input.Pincode
	member.Password = hashed
	member.PlanAmount = input.PlanAmount
	member.PlanDurationYears = input.PlanDurationYears
	member.AccountHolder = input.AccountHolder
	member.BankName = input.BankName
	member.AccountNumber = input.AccountNumber
	member.IFSCCode = input.IFSCCode

	if member.PlanAmount <= 0 {
		member.PlanAmount = s.defaults.DefaultPlanAmount(ctx)
	}
	if member.PlanDurationYears <= 0 {
		member.PlanDurationYears = 1
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	welcome := *member
	go s.notifier.NotifyWelcome(&welcome)

	return member, nil
}

// GetByID returns one member
func (s *MemberService) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

// List lists members with pagination
func (s *MemberService) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.List(ctx, offset, limit)
}

// ListMembers lists everyone with the member role
func (s *MemberService) ListMembers(ctx context.Context) ([]*models.Member, error) {
	return s.memberRepo.ListByRole(ctx, string(domain.RoleMember))
}

// UpdateProfileInput represents a profile update. Only non-financial fields
// appear here; nil pointers leave the current value untouched.
type UpdateProfileInput struct {
	Name              *string  `json:"name"`
	Address           *string  `json:"address"`
	Pincode           *string  `json:"pincode"`
	PlanAmount        *float64 `json:"plan_amount"`
	PlanDurationYears *int     `json:"plan_duration_years"`
	AccountHolder     *string  `json:"account_holder"`
	BankName          *string  `json:"bank_name"`
	AccountNumber     *string  `json:"account_number"`
	IFSCCode          *string  `json:"ifsc_code"`
}

// UpdateProfile edits a member's profile. Collection and loan state cannot
// be overwritten through this path.
func (s *MemberService) UpdateProfile(ctx context.Context, id uint, input *UpdateProfileInput) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Address != nil {
		member.Address = *input.Address
	}
	if input.Pincode != nil {
		member.Pincode = *input.Pincode
	}
	if input.PlanAmount != nil && *input.PlanAmount > 0 {
		member.PlanAmount = *input.PlanAmount
	}
	if input.PlanDurationYears != nil && *input.PlanDurationYears > 0 {
		member.PlanDurationYears = *input.PlanDurationYears
	}
	if input.AccountHolder != nil {
		member.AccountHolder = *input.AccountHolder
	}
	if input.BankName != nil {
		member.BankName = *input.BankName
	}
	if input.AccountNumber != nil {
		member.AccountNumber = *input.AccountNumber
	}
	if input.IFSCCode != nil {
		member.IFSCCode = *input.IFSCCode
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member and cascades to all of their transactions.
// Destructive and non-reversible; no soft delete.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	return s.memberRepo.Delete(ctx, id)
}

// GetTransactions returns one member's transaction history, newest first
func (s *MemberService) GetTransactions(ctx context.Context, memberID uint) ([]*models.Transaction, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.txnRepo.ListByMemberID(ctx, memberID)
}
