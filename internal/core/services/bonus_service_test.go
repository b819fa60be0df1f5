package services

import (
	"context"
	"errors"
	"testing"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/core/domain"
)

func TestDistributeCreatesOneRowPerMember(t *testing.T) {
	members := newFakeMemberRepo()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		m := models.NewMember(domain.RoleMember)
		m.Email = email
		members.add(m)
	}
	admin := models.NewMember(domain.RoleAdmin)
	admin.Email = "admin@x.com"
	members.add(admin)

	txns := &fakeTxnRepo{}
	notifier := &fakeNotifier{}
	svc := NewBonusService(members, txns, notifier)

	result, err := svc.Distribute(context.Background(), 500, "")
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if result.DistributedCount != 3 {
		t.Errorf("distributed = %d, want 3 (admins excluded)", result.DistributedCount)
	}
	if result.TotalAmount != 1500 {
		t.Errorf("total = %v, want 1500", result.TotalAmount)
	}
	if len(txns.txns) != 3 {
		t.Fatalf("transaction rows = %d, want 3", len(txns.txns))
	}
	seen := map[string]bool{}
	for _, txn := range txns.txns {
		if txn.Type != string(domain.TxBonusReceived) {
			t.Errorf("type = %q, want BonusReceived", txn.Type)
		}
		if txn.Amount != 500 {
			t.Errorf("amount = %v, want 500", txn.Amount)
		}
		if txn.Description != DefaultBonusDescription {
			t.Errorf("description = %q, want default", txn.Description)
		}
		if seen[txn.TransactionID] {
			t.Errorf("duplicate transaction id %s", txn.TransactionID)
		}
		seen[txn.TransactionID] = true
	}

	waitFor(t, notifier, func(f *fakeNotifier) []string { return f.bonuses }, 3)
}

func TestDistributeRejectsNonPositiveAmount(t *testing.T) {
	svc := NewBonusService(newFakeMemberRepo(), &fakeTxnRepo{}, &fakeNotifier{})
	for _, amount := range []float64{0, -10} {
		if _, err := svc.Distribute(context.Background(), amount, "x"); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %v: err = %v, want invalid amount", amount, err)
		}
	}
}

func TestDistributeRejectsEmptySociety(t *testing.T) {
	svc := NewBonusService(newFakeMemberRepo(), &fakeTxnRepo{}, &fakeNotifier{})
	if _, err := svc.Distribute(context.Background(), 100, "x"); !errors.Is(err, domain.ErrNoMembers) {
		t.Fatalf("err = %v, want no members", err)
	}
}

func TestDistributeBatchFailureRejectsWholeRun(t *testing.T) {
	members := newFakeMemberRepo()
	m := models.NewMember(domain.RoleMember)
	m.Email = "a@x.com"
	members.add(m)

	txns := &fakeTxnRepo{batchErr: domain.ErrPersistence}
	notifier := &fakeNotifier{}
	svc := NewBonusService(members, txns, notifier)

	if _, err := svc.Distribute(context.Background(), 100, "x"); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("err = %v, want persistence failure", err)
	}
	if len(txns.txns) != 0 {
		t.Errorf("rows = %d after failed batch, want 0", len(txns.txns))
	}
	if notifier.count(func(f *fakeNotifier) []string { return f.bonuses }) != 0 {
		t.Error("bonus emails sent despite failed batch")
	}
}
