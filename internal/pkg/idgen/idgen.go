// Package idgen generates the display identifiers used across the system.
// Uniqueness comes from UUIDv4 entropy; the prefixes match what members see
// on receipts and statements.
package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func short() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// NewTransactionID returns a fresh transaction identifier, e.g. TXN8F0A1B2C3D4E
func NewTransactionID() string {
	return "TXN" + short()
}

// NewLoanID returns a fresh loan identifier, e.g. LOAN-8F0A1B2C
func NewLoanID() string {
	return "LOAN-" + short()[:8]
}

// NewReceiptNo returns a fresh receipt number, e.g. RCPT8F0A1B2C3D4E
func NewReceiptNo() string {
	return "RCPT" + short()
}

// NewRegNo returns a fresh society registration number, e.g. AS-8F0A1
func NewRegNo() string {
	return fmt.Sprintf("AS-%s", short()[:5])
}
