package pdfgen

import (
	"bytes"
	"testing"

	"aw-society/internal/adapters/persistence/models"
)

func TestReceiptPDF(t *testing.T) {
	member := &models.Member{
		RegNo:  "AS-12345",
		Name:   "Asha Verma",
		Email:  "asha@example.com",
		Mobile: "9876543210",
	}
	txn := &models.Transaction{
		TransactionID: "TXN0011223344",
		Type:          "ContributionPaid",
		Amount:        1000,
		Description:   "Monthly contribution",
	}

	pdf, err := ReceiptPDF(txn, member)
	if err != nil {
		t.Fatalf("ReceiptPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (first bytes %q)", pdf[:min(8, len(pdf))])
	}
}
