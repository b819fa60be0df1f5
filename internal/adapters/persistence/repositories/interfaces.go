package repositories

import (
	"context"

	"aw-society/internal/adapters/persistence/models"
)

// MemberRepository defines member data access
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error)
	ListByRole(ctx context.Context, role string) ([]*models.Member, error)
	ListActiveLoans(ctx context.Context) ([]*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	// Delete removes the member and cascades to their transactions.
	Delete(ctx context.Context, id uint) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByMobile(ctx context.Context, mobile string) (bool, error)
	// SetLoanStatus flips the loan status of an active loan in a single
	// guarded update. Returns false when no row matched the precondition.
	SetLoanStatus(ctx context.Context, memberID uint, from, to string) (bool, error)
}

// TransactionRepository defines transaction-log data access.
// Rows are append-only; there is no update path.
type TransactionRepository interface {
	CreateBatch(ctx context.Context, txns []*models.Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, offset, limit int) ([]*models.Transaction, int64, error)
	ListAll(ctx context.Context) ([]*models.Transaction, error)
	ListByMemberID(ctx context.Context, memberID uint) ([]*models.Transaction, error)
}

// LedgerRepository is the guarded update path for a member's financials.
// ApplyTransaction loads the member under a row lock, runs apply, and commits
// the mutated member together with the transaction apply returns. Either both
// writes land or neither does.
type LedgerRepository interface {
	ApplyTransaction(ctx context.Context, memberID uint, apply func(m *models.Member) (*models.Transaction, error)) (*models.Transaction, error)
}

// ReceiptRepository defines receipt data access
type ReceiptRepository interface {
	Upsert(ctx context.Context, receipt *models.Receipt) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Receipt, error)
}

// SettingsRepository defines settings data access
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]*models.Setting, error)
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) (*models.Setting, error)
}
