package services

import (
	"context"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
)

// TransactionQueryService exposes read-only views over the transaction log
type TransactionQueryService struct {
	txnRepo repositories.TransactionRepository
}

// NewTransactionQueryService creates a new transaction query service
func NewTransactionQueryService(txnRepo repositories.TransactionRepository) *TransactionQueryService {
	return &TransactionQueryService{txnRepo: txnRepo}
}

// List returns transactions newest first with pagination
func (s *TransactionQueryService) List(ctx context.Context, offset, limit int) ([]*models.Transaction, int64, error) {
	return s.txnRepo.List(ctx, offset, limit)
}

// GetByTransactionID returns one transaction
func (s *TransactionQueryService) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return s.txnRepo.GetByTransactionID(ctx, transactionID)
}
