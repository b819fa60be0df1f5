package services

import (
	"context"
	"time"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/pkg/idgen"
	"aw-society/internal/pkg/pdfgen"
)

// ReceiptService renders and stores receipt documents. Receipts are keyed by
// transaction ID and upserted: regenerating replaces the stored PDF. They are
// peripheral to the ledger; a receipt failure never touches financial state.
type ReceiptService struct {
	receiptRepo repositories.ReceiptRepository
	txnRepo     repositories.TransactionRepository
	memberRepo  repositories.MemberRepository
	notifier    Notifier
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repositories.ReceiptRepository,
	txnRepo repositories.TransactionRepository,
	memberRepo repositories.MemberRepository,
	notifier Notifier,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		txnRepo:     txnRepo,
		memberRepo:  memberRepo,
		notifier:    notifier,
	}
}

// Generate renders the PDF for a transaction, upserts the receipt record, and
// emails it to the member in the background.
func (s *ReceiptService) Generate(ctx context.Context, transactionID, generatedBy string) (*models.Receipt, error) {
	txn, err := s.txnRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepo.GetByID(ctx, txn.MemberID)
	if err != nil {
		return nil, err
	}

	pdf, err := pdfgen.ReceiptPDF(txn, member)
	if err != nil {
		return nil, err
	}

	receipt := &models.Receipt{
		TransactionID: txn.TransactionID,
		MemberID:      member.ID,
		ReceiptNo:     idgen.NewReceiptNo(),
		GeneratedBy:   generatedBy,
		MemberName:    txn.MemberName,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Date:          time.Now().Format("02 Jan 2006"),
		PDFData:       pdf,
	}

	if err := s.receiptRepo.Upsert(ctx, receipt); err != nil {
		return nil, err
	}

	notifyMember := *member
	notifyReceipt := *receipt
	go s.notifier.NotifyReceipt(&notifyMember, &notifyReceipt)

	return receipt, nil
}

// GetByTransactionID returns the stored receipt for a transaction
func (s *ReceiptService) GetByTransactionID(ctx context.Context, transactionID string) (*models.Receipt, error) {
	return s.receiptRepo.GetByTransactionID(ctx, transactionID)
}
