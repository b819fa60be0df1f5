package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/core/domain"
)

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateBatch inserts transactions in one statement. All rows land or none;
// the bonus engine relies on this for its no-partial-credit policy.
func (r *transactionRepository) CreateBatch(ctx context.Context, txns []*models.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&txns).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// GetByTransactionID gets a transaction by its generated transaction ID
func (r *transactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// List lists transactions with pagination, newest first
func (r *transactionRepository) List(ctx context.Context, offset, limit int) ([]*models.Transaction, int64, error) {
	var txns []*models.Transaction
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&txns).Error
	return txns, total, err
}

// ListAll lists every transaction, newest first
func (r *transactionRepository) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txns).Error
	return txns, err
}

// ListByMemberID lists a member's transactions, newest first
func (r *transactionRepository) ListByMemberID(ctx context.Context, memberID uint) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

// ledgerRepository implements LedgerRepository on top of gorm transactions
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// ApplyTransaction serialises concurrent mutations of one member behind a row
// lock, then commits the member update and the transaction insert together.
// When apply fails its error is returned untouched and nothing is written.
func (r *ledgerRepository) ApplyTransaction(ctx context.Context, memberID uint, apply func(m *models.Member) (*models.Transaction, error)) (*models.Transaction, error) {
	var created *models.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", memberID).
			First(&member).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMemberNotFound
			}
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}

		txn, err := apply(&member)
		if err != nil {
			return err
		}

		if err := tx.Save(&member).Error; err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
