package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/core/domain"
)

// ---- fake repositories ----

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[uint]*models.Member
	nextID  uint
	listErr error
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uint]*models.Member), nextID: 1}
}

func (f *fakeMemberRepo) add(m *models.Member) *models.Member {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID == 0 {
		m.ID = f.nextID
		f.nextID++
	}
	cp := *m
	f.members[m.ID] = &cp
	return m
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *models.Member) error {
	f.add(m)
	return nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMemberRepo) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (f *fakeMemberRepo) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	all, err := f.ListByRole(ctx, "")
	return all, int64(len(all)), err
}

func (f *fakeMemberRepo) ListByRole(ctx context.Context, role string) ([]*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Member
	for _, m := range f.members {
		if role == "" || m.Role == role {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) ListActiveLoans(ctx context.Context) ([]*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Member
	for _, m := range f.members {
		if m.LoanActive {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.members[m.ID]; !ok {
		return domain.ErrMemberNotFound
	}
	cp := *m
	f.members[m.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.members[id]; !ok {
		return domain.ErrMemberNotFound
	}
	delete(f.members, id)
	return nil
}

func (f *fakeMemberRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeMemberRepo) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) SetLoanStatus(ctx context.Context, memberID uint, from, to string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[memberID]
	if !ok || !m.LoanActive || m.LoanStatus != from {
		return false, nil
	}
	m.LoanStatus = to
	return true, nil
}

type fakeTxnRepo struct {
	mu       sync.Mutex
	txns     []*models.Transaction
	batchErr error
}

func (f *fakeTxnRepo) CreateBatch(ctx context.Context, txns []*models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.batchErr != nil {
		return f.batchErr
	}
	f.txns = append(f.txns, txns...)
	return nil
}

func (f *fakeTxnRepo) GetByTransactionID(ctx context.Context, id string) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.txns {
		if t.TransactionID == id {
			return t, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (f *fakeTxnRepo) List(ctx context.Context, offset, limit int) ([]*models.Transaction, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.txns, int64(len(f.txns)), nil
}

func (f *fakeTxnRepo) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.txns, nil
}

func (f *fakeTxnRepo) ListByMemberID(ctx context.Context, memberID uint) ([]*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Transaction
	for _, t := range f.txns {
		if t.MemberID == memberID {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeLedgerRepo mimics the guarded update path: apply runs on a copy and the
// copy replaces the stored member only when apply and the insert both succeed.
type fakeLedgerRepo struct {
	members *fakeMemberRepo
	txns    *fakeTxnRepo
	mu      sync.Mutex
}

func (f *fakeLedgerRepo) ApplyTransaction(ctx context.Context, memberID uint, apply func(m *models.Member) (*models.Transaction, error)) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	member, err := f.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	txn, err := apply(member)
	if err != nil {
		return nil, err
	}
	if err := f.txns.CreateBatch(ctx, []*models.Transaction{txn}); err != nil {
		return nil, err
	}
	if err := f.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return txn, nil
}

// ---- fake notifier & defaults ----

type fakeNotifier struct {
	mu           sync.Mutex
	transactions []string
	bonuses      []string
	welcomes     []string
	receipts     []string
	reminders    []string
	overdues     []string
}

func (f *fakeNotifier) NotifyTransaction(m *models.Member, t *models.Transaction, pdf []byte) {
	f.record(&f.transactions, t.TransactionID)
}
func (f *fakeNotifier) NotifyBonus(m *models.Member, amount float64, description string) {
	f.record(&f.bonuses, m.Email)
}
func (f *fakeNotifier) NotifyWelcome(m *models.Member) {
	f.record(&f.welcomes, m.Email)
}
func (f *fakeNotifier) NotifyReceipt(m *models.Member, r *models.Receipt) {
	f.record(&f.receipts, r.TransactionID)
}
func (f *fakeNotifier) NotifyLoanReminder(m *models.Member, daysLeft int) {
	f.record(&f.reminders, m.Email)
}
func (f *fakeNotifier) NotifyLoanOverdue(m *models.Member) {
	f.record(&f.overdues, m.Email)
}

func (f *fakeNotifier) record(dst *[]string, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*dst = append(*dst, v)
}

func (f *fakeNotifier) count(get func(*fakeNotifier) []string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(get(f))
}

// waitFor polls until the notifier count reaches want; notifications run on
// goroutines so tests cannot assert them synchronously.
func waitFor(t *testing.T, f *fakeNotifier, get func(*fakeNotifier) []string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.count(get) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("notifier count = %d, want %d", f.count(get), want)
}

type fakeDefaults struct {
	plan   float64
	rate   float64
	months int
}

func (f fakeDefaults) DefaultPlanAmount(ctx context.Context) float64   { return f.plan }
func (f fakeDefaults) DefaultInterestRate(ctx context.Context) float64 { return f.rate }
func (f fakeDefaults) DefaultLoanDurationMonths(ctx context.Context) int {
	return f.months
}
