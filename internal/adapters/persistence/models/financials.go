package models

import (
	"time"

	"aw-society/internal/core/domain"
)

// The methods in this file are the ledger's state transitions. They mutate the
// member in memory only; persisting the result is the caller's job, and must
// happen under the per-member guard the ledger repository provides.

// HasActiveLoan reports whether the member has a loan that still blocks a new
// issue: flagged active with balance outstanding.
func (m *Member) HasActiveLoan() bool {
	return m.LoanActive && m.LoanRemaining > 0
}

// ApplyContribution credits a monthly contribution. Amount must already be
// resolved (explicit or the member's plan amount).
func (m *Member) ApplyContribution(amount float64, now time.Time) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	m.CollectionPaid += amount
	m.CollectionStatus = string(domain.CollectionPaid)
	m.CollectionPaidDate = &now
	return nil
}

// IssueLoan opens a new loan for the member. Fails if an active loan with a
// remaining balance exists, regardless of the requested amount.
func (m *Member) IssueLoan(loanID string, amount, interestRate float64, durationMonths int, now time.Time) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if m.HasActiveLoan() {
		return domain.ErrActiveLoanExists
	}
	due := now.AddDate(0, durationMonths, 0)
	m.LoanActive = true
	m.LoanID = &loanID
	m.LoanPrincipal = amount
	m.LoanInterestRate = interestRate
	m.LoanIssuedAt = &now
	m.LoanDueAt = &due
	m.LoanRemaining = amount
	m.LoanStatus = string(domain.LoanActive)
	return nil
}

// ApplyLoanPayment reduces the remaining balance, clamping at zero. An
// overpayment never drives the balance negative; reaching zero closes the
// loan (active=false, status=paid).
func (m *Member) ApplyLoanPayment(amount float64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if !m.LoanActive {
		return domain.ErrNoActiveLoan
	}
	m.LoanRemaining -= amount
	if m.LoanRemaining <= 0 {
		m.LoanRemaining = 0
		m.LoanStatus = string(domain.LoanPaid)
		m.LoanActive = false
	}
	return nil
}

// MarkLoanOverdue transitions an active loan past its due date. Returns false
// when the loan is not active or already flagged.
func (m *Member) MarkLoanOverdue(now time.Time) bool {
	if !m.LoanActive || m.LoanDueAt == nil {
		return false
	}
	if m.LoanStatus == string(domain.LoanOverdue) || now.Before(*m.LoanDueAt) {
		return false
	}
	m.LoanStatus = string(domain.LoanOverdue)
	return true
}
