package services

import (
	"context"
	"errors"
	"testing"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/core/domain"
)

func newLedgerFixture() (*LedgerService, *fakeMemberRepo, *fakeTxnRepo, *fakeNotifier) {
	members := newFakeMemberRepo()
	txns := &fakeTxnRepo{}
	notifier := &fakeNotifier{}
	ledger := &fakeLedgerRepo{members: members, txns: txns}
	svc := NewLedgerService(ledger, fakeDefaults{plan: 1000, rate: 2, months: 12}, notifier)
	return svc, members, txns, notifier
}

func seedMember(repo *fakeMemberRepo) *models.Member {
	m := models.NewMember(domain.RoleMember)
	m.Name = "Asha Verma"
	m.Email = "asha@example.com"
	m.PlanAmount = 500
	return repo.add(m)
}

func TestApplyRejectsUnknownType(t *testing.T) {
	svc, members, _, _ := newLedgerFixture()
	m := seedMember(members)

	_, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: m.ID,
		Type:     domain.TransactionType("Withdrawal"),
		Amount:   100,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestApplyRejectsMissingMember(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()

	_, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: 99,
		Type:     domain.TxLoanIssued,
		Amount:   100,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestApplyContributionUsesPlanAmount(t *testing.T) {
	svc, members, txns, _ := newLedgerFixture()
	m := seedMember(members)

	txn, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: m.ID,
		Type:     domain.TxContributionPaid,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if txn.Amount != 500 {
		t.Errorf("amount = %v, want plan amount 500", txn.Amount)
	}
	if txn.MemberName != "Asha Verma" || txn.MemberEmail != "asha@example.com" {
		t.Errorf("snapshot = %q / %q not taken from member", txn.MemberName, txn.MemberEmail)
	}

	updated, _ := members.GetByID(context.Background(), m.ID)
	if updated.CollectionStatus != string(domain.CollectionPaid) {
		t.Errorf("collection status = %q, want paid", updated.CollectionStatus)
	}
	if updated.CollectionPaid != 500 {
		t.Errorf("collection paid = %v, want 500", updated.CollectionPaid)
	}
	if len(txns.txns) != 1 {
		t.Errorf("transaction count = %d, want 1", len(txns.txns))
	}
}

func TestApplyContributionFallsBackToSocietyDefault(t *testing.T) {
	svc, members, _, _ := newLedgerFixture()
	m := models.NewMember(domain.RoleMember)
	m.Email = "noplan@example.com"
	members.add(m)

	txn, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: m.ID,
		Type:     domain.TxContributionPaid,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if txn.Amount != 1000 {
		t.Errorf("amount = %v, want society default 1000", txn.Amount)
	}
}

func TestApplyLoanIssuedDefaultsAndExtras(t *testing.T) {
	svc, members, _, _ := newLedgerFixture()
	m := seedMember(members)

	txn, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: m.ID,
		Type:     domain.TxLoanIssued,
		Amount:   10000,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if txn.InterestRate == nil || *txn.InterestRate != 2 {
		t.Errorf("interest rate = %v, want default 2", txn.InterestRate)
	}
	if txn.DurationMonths == nil || *txn.DurationMonths != 12 {
		t.Errorf("duration = %v, want default 12", txn.DurationMonths)
	}

	updated, _ := members.GetByID(context.Background(), m.ID)
	if !updated.LoanActive || updated.LoanRemaining != 10000 {
		t.Errorf("loan state = active:%v remaining:%v, want active 10000", updated.LoanActive, updated.LoanRemaining)
	}
	if updated.LoanID == nil || *updated.LoanID == "" {
		t.Error("loan id not assigned")
	}
}

func TestApplySecondLoanConflicts(t *testing.T) {
	svc, members, txns, _ := newLedgerFixture()
	m := seedMember(members)
	ctx := context.Background()

	if _, err := svc.Apply(ctx, &ApplyTransactionInput{MemberID: m.ID, Type: domain.TxLoanIssued, Amount: 5000}); err != nil {
		t.Fatalf("first loan: %v", err)
	}
	_, err := svc.Apply(ctx, &ApplyTransactionInput{MemberID: m.ID, Type: domain.TxLoanIssued, Amount: 3000})
	if !errors.Is(err, domain.ErrActiveLoanExists) {
		t.Fatalf("err = %v, want active loan conflict", err)
	}
	if len(txns.txns) != 1 {
		t.Errorf("transaction count = %d after rejected loan, want 1", len(txns.txns))
	}
}

func TestApplyLoanPaymentOverpaymentClamps(t *testing.T) {
	svc, members, _, _ := newLedgerFixture()
	m := seedMember(members)
	ctx := context.Background()

	if _, err := svc.Apply(ctx, &ApplyTransactionInput{MemberID: m.ID, Type: domain.TxLoanIssued, Amount: 5000}); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Apply(ctx, &ApplyTransactionInput{MemberID: m.ID, Type: domain.TxLoanPayment, Amount: 6000}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	updated, _ := members.GetByID(ctx, m.ID)
	if updated.LoanRemaining != 0 {
		t.Errorf("remaining = %v, want 0", updated.LoanRemaining)
	}
	if updated.LoanActive {
		t.Error("loan still active after payoff")
	}
	if updated.LoanStatus != string(domain.LoanPaid) {
		t.Errorf("status = %q, want paid", updated.LoanStatus)
	}
}

func TestApplyLoanPaymentWithoutLoanRejected(t *testing.T) {
	svc, members, _, _ := newLedgerFixture()
	m := seedMember(members)

	_, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: m.ID,
		Type:     domain.TxLoanPayment,
		Amount:   100,
	})
	if !errors.Is(err, domain.ErrNoActiveLoan) {
		t.Fatalf("err = %v, want no active loan", err)
	}
}

func TestApplyNonContributionRequiresAmount(t *testing.T) {
	svc, members, _, _ := newLedgerFixture()
	m := seedMember(members)

	for _, typ := range []domain.TransactionType{domain.TxLoanIssued, domain.TxLoanPayment, domain.TxBonusReceived} {
		_, err := svc.Apply(context.Background(), &ApplyTransactionInput{MemberID: m.ID, Type: typ})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("%s: err = %v, want invalid amount", typ, err)
		}
	}
}

func TestApplyBonusLeavesFinancialsUntouched(t *testing.T) {
	svc, members, _, notifier := newLedgerFixture()
	m := seedMember(members)

	if _, err := svc.Apply(context.Background(), &ApplyTransactionInput{
		MemberID: m.ID,
		Type:     domain.TxBonusReceived,
		Amount:   250,
	}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	updated, _ := members.GetByID(context.Background(), m.ID)
	if updated.CollectionPaid != 0 || updated.LoanActive {
		t.Error("bonus mutated financial state")
	}
	waitFor(t, notifier, func(f *fakeNotifier) []string { return f.transactions }, 1)
}
