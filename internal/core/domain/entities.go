package domain

// Role represents a registered person's role in the society
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// CollectionStatus represents the state of a member's monthly contribution
type CollectionStatus string

const (
	CollectionDue  CollectionStatus = "due"
	CollectionPaid CollectionStatus = "paid"
)

// LoanStatus represents the lifecycle state of a member's loan
type LoanStatus string

const (
	LoanActive  LoanStatus = "active"
	LoanOverdue LoanStatus = "overdue"
	LoanPaid    LoanStatus = "paid"
)

// TransactionType classifies a financial event in the ledger
type TransactionType string

const (
	TxContributionPaid TransactionType = "ContributionPaid"
	TxLoanIssued       TransactionType = "LoanIssued"
	TxLoanPayment      TransactionType = "LoanPayment"
	TxBonusReceived    TransactionType = "BonusReceived"
)

// ValidTransactionType reports whether t is one of the four ledger event types
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TxContributionPaid, TxLoanIssued, TxLoanPayment, TxBonusReceived:
		return true
	}
	return false
}

// Stats is a point-in-time snapshot of society-wide figures.
// Recomputed from scratch on every request; never cached.
type Stats struct {
	TotalMembers    int64   `json:"total_members"`
	TotalCollection float64 `json:"total_collection"`
	PendingAmount   float64 `json:"pending_amount"`
	OutstandingLoan float64 `json:"outstanding_loan"`
	ActiveLoans     int64   `json:"active_loans"`
	TotalInterest   float64 `json:"total_interest"`
}

// BonusResult summarises a bonus distribution batch
type BonusResult struct {
	DistributedCount int     `json:"distributed_count"`
	TotalAmount      float64 `json:"total_amount"`
}
