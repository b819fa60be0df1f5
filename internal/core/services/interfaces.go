package services

import (
	"context"

	"aw-society/internal/adapters/persistence/models"
)

// Notifier is the outbound notification contract. Implementations must never
// block the financial operation that triggered them; every method is safe to
// call from a goroutine after the primary write has committed, and failures
// are logged, never propagated.
type Notifier interface {
	NotifyTransaction(member *models.Member, txn *models.Transaction, receiptPDF []byte)
	NotifyBonus(member *models.Member, amount float64, description string)
	NotifyWelcome(member *models.Member)
	NotifyReceipt(member *models.Member, receipt *models.Receipt)
	NotifyLoanReminder(member *models.Member, daysLeft int)
	NotifyLoanOverdue(member *models.Member)
}

// LoanDefaults supplies society-wide fallback values for loan issuance and
// contributions when the caller omits them.
type LoanDefaults interface {
	DefaultPlanAmount(ctx context.Context) float64
	DefaultInterestRate(ctx context.Context) float64
	DefaultLoanDurationMonths(ctx context.Context) int
}
