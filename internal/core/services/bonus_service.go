package services

import (
	"context"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/core/domain"
	"aw-society/internal/pkg/idgen"
)

// DefaultBonusDescription is used when the admin provides none
const DefaultBonusDescription = "Annual Dividend / Bonus"

// BonusService credits a flat bonus to every member as one administrative
// action. The transaction rows land in a single batch insert, so a failed
// insert rejects the whole distribution; the per-member emails are
// independent and a failure for one member never affects the others.
type BonusService struct {
	memberRepo repositories.MemberRepository
	txnRepo    repositories.TransactionRepository
	notifier   Notifier
}

// NewBonusService creates a new bonus service
func NewBonusService(memberRepo repositories.MemberRepository, txnRepo repositories.TransactionRepository, notifier Notifier) *BonusService {
	return &BonusService{
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		notifier:   notifier,
	}
}

// Distribute creates one BonusReceived transaction per member
func (s *BonusService) Distribute(ctx context.Context, amount float64, description string) (*domain.BonusResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if description == "" {
		description = DefaultBonusDescription
	}

	members, err := s.memberRepo.ListByRole(ctx, string(domain.RoleMember))
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.ErrNoMembers
	}

	txns := make([]*models.Transaction, len(members))
	for i, m := range members {
		txns[i] = &models.Transaction{
			TransactionID: idgen.NewTransactionID(),
			MemberID:      m.ID,
			MemberName:    m.Name,
			MemberEmail:   m.Email,
			Type:          string(domain.TxBonusReceived),
			Amount:        amount,
			Description:   description,
		}
	}

	if err := s.txnRepo.CreateBatch(ctx, txns); err != nil {
		return nil, err
	}

	for _, m := range members {
		member := *m
		go s.notifier.NotifyBonus(&member, amount, description)
	}

	return &domain.BonusResult{
		DistributedCount: len(members),
		TotalAmount:      amount * float64(len(members)),
	}, nil
}
