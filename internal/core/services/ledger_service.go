package services

import (
	"context"
	"log"
	"time"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/core/domain"
	"aw-society/internal/pkg/idgen"
	"aw-society/internal/pkg/pdfgen"
)

// LedgerService applies financial events to member state. It is the only
// path that mutates a member's financials: every accepted event appends one
// immutable transaction and updates the member atomically, via the guarded
// repository. Email and receipt side effects run after commit and never
// block or fail the operation.
type LedgerService struct {
	ledgerRepo repositories.LedgerRepository
	defaults   LoanDefaults
	notifier   Notifier
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo repositories.LedgerRepository, defaults LoanDefaults, notifier Notifier) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		defaults:   defaults,
		notifier:   notifier,
	}
}

// ApplyTransactionInput represents one transaction intent
type ApplyTransactionInput struct {
	MemberID       uint                   `json:"member_id"`
	Type           domain.TransactionType `json:"type"`
	Amount         float64                `json:"amount"`
	Description    string                 `json:"description"`
	InterestRate   *float64               `json:"interest_rate,omitempty"`
	DurationMonths *int                   `json:"duration_months,omitempty"`
}

// Apply validates the intent against the member's current state, applies the
// transition, and returns the persisted transaction.
func (s *LedgerService) Apply(ctx context.Context, input *ApplyTransactionInput) (*models.Transaction, error) {
	if !domain.ValidTransactionType(input.Type) {
		return nil, domain.ErrUnknownTransaction
	}
	// A contribution may omit the amount (the member's plan amount applies);
	// every other type requires a positive amount up front.
	if input.Type != domain.TxContributionPaid && input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now()

	// Resolve loan extras once; settings provide absent values.
	rate := 0.0
	months := 0
	if input.Type == domain.TxLoanIssued {
		rate = s.defaults.DefaultInterestRate(ctx)
		if input.InterestRate != nil {
			rate = *input.InterestRate
		}
		months = s.defaults.DefaultLoanDurationMonths(ctx)
		if input.DurationMonths != nil {
			months = *input.DurationMonths
		}
	}

	var notifyMember models.Member

	txn, err := s.ledgerRepo.ApplyTransaction(ctx, input.MemberID, func(m *models.Member) (*models.Transaction, error) {
		amount := input.Amount

		switch input.Type {
		case domain.TxContributionPaid:
			if amount <= 0 {
				amount = m.PlanAmount
			}
			if amount <= 0 {
				amount = s.defaults.DefaultPlanAmount(ctx)
			}
			if err := m.ApplyContribution(amount, now); err != nil {
				return nil, err
			}

		case domain.TxLoanIssued:
			if err := m.IssueLoan(idgen.NewLoanID(), amount, rate, months, now); err != nil {
				return nil, err
			}

		case domain.TxLoanPayment:
			if err := m.ApplyLoanPayment(amount); err != nil {
				return nil, err
			}

		case domain.TxBonusReceived:
			// Purely additive: a bonus touches neither collection nor loan
			// state. Bonus totals are derived by summing these rows.
		}

		txn := &models.Transaction{
			TransactionID: idgen.NewTransactionID(),
			MemberID:      m.ID,
			MemberName:    m.Name,
			MemberEmail:   m.Email,
			Type:          string(input.Type),
			Amount:        amount,
			Description:   input.Description,
		}
		if input.Type == domain.TxLoanIssued {
			txn.InterestRate = &rate
			txn.DurationMonths = &months
		}

		notifyMember = *m
		return txn, nil
	})
	if err != nil {
		return nil, err
	}

	go s.notifyTransaction(&notifyMember, txn)

	return txn, nil
}

// notifyTransaction renders the receipt and emails the member. Runs off the
// request path; a failure here is logged and never surfaces to the caller.
func (s *LedgerService) notifyTransaction(member *models.Member, txn *models.Transaction) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Transaction notification panicked: %v", r)
		}
	}()

	pdf, err := pdfgen.ReceiptPDF(txn, member)
	if err != nil {
		log.Printf("Receipt PDF for %s failed: %v", txn.TransactionID, err)
		pdf = nil
	}
	s.notifier.NotifyTransaction(member, txn, pdf)
}
