package models

import (
	"time"

	"gorm.io/gorm"

	"aw-society/internal/core/domain"
)

// Member represents the members table. The collection and loan sub-state are
// flattened onto the row and mutated only through the ledger path.
type Member struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RegNo    string `gorm:"uniqueIndex;size:20;not null" json:"reg_no"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Mobile   string `gorm:"uniqueIndex;size:15;not null" json:"mobile"`
	Address  string `gorm:"size:255" json:"address"`
	Pincode  string `gorm:"size:10" json:"pincode"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:10;default:'member';index" json:"role"`

	PlanAmount        float64 `gorm:"type:decimal(15,2);default:0" json:"plan_amount"`
	PlanDurationYears int     `gorm:"default:1" json:"plan_duration_years"`

	AccountHolder string `gorm:"size:100" json:"account_holder,omitempty"`
	BankName      string `gorm:"size:100" json:"bank_name,omitempty"`
	AccountNumber string `gorm:"size:30" json:"account_number,omitempty"`
	IFSCCode      string `gorm:"column:ifsc_code;size:15" json:"ifsc_code,omitempty"`

	CollectionStatus   string     `gorm:"size:10;default:'due'" json:"collection_status"`
	CollectionPaid     float64    `gorm:"type:decimal(15,2);default:0" json:"collection_paid"`
	CollectionPaidDate *time.Time `json:"collection_paid_date"`

	LoanActive       bool       `gorm:"default:false;index" json:"loan_active"`
	LoanID           *string    `gorm:"size:50;uniqueIndex" json:"loan_id"`
	LoanPrincipal    float64    `gorm:"type:decimal(15,2);default:0" json:"loan_principal"`
	LoanInterestRate float64    `gorm:"type:decimal(5,2);default:0" json:"loan_interest_rate"`
	LoanIssuedAt     *time.Time `json:"loan_issued_at"`
	LoanDueAt        *time.Time `json:"loan_due_at"`
	LoanRemaining    float64    `gorm:"type:decimal(15,2);default:0" json:"loan_remaining"`
	LoanStatus       string     `gorm:"size:10;default:'paid'" json:"loan_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse DTO
type MemberResponse struct {
	ID                uint             `json:"id"`
	RegNo             string           `json:"reg_no"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Mobile            string           `json:"mobile"`
	Address           string           `json:"address,omitempty"`
	Role              string           `json:"role"`
	PlanAmount        float64          `json:"plan_amount"`
	PlanDurationYears int              `json:"plan_duration_years"`
	Financials        FinancialsView   `json:"financials"`
	CreatedAt         time.Time        `json:"created_at"`
	History           []*Transaction   `json:"history,omitempty"`
}

// FinancialsView is the nested read shape for a member's financial state
type FinancialsView struct {
	Collection CollectionView `json:"collection"`
	Loan       LoanView       `json:"loan"`
}

type CollectionView struct {
	Status     string     `json:"status"`
	AmountPaid float64    `json:"amount_paid"`
	LastPaidAt *time.Time `json:"last_paid_at"`
}

type LoanView struct {
	Active       bool       `json:"active"`
	LoanID       string     `json:"loan_id,omitempty"`
	Principal    float64    `json:"principal"`
	InterestRate float64    `json:"interest_rate"`
	IssuedAt     *time.Time `json:"issued_at"`
	DueAt        *time.Time `json:"due_at"`
	Remaining    float64    `json:"remaining"`
	Status       string     `json:"status"`
}

func (m *Member) ToResponse() *MemberResponse {
	resp := &MemberResponse{
		ID:                m.ID,
		RegNo:             m.RegNo,
		Name:              m.Name,
		Email:             m.Email,
		Mobile:            m.Mobile,
		Address:           m.Address,
		Role:              m.Role,
		PlanAmount:        m.PlanAmount,
		PlanDurationYears: m.PlanDurationYears,
		CreatedAt:         m.CreatedAt,
		Financials: FinancialsView{
			Collection: CollectionView{
				Status:     m.CollectionStatus,
				AmountPaid: m.CollectionPaid,
				LastPaidAt: m.CollectionPaidDate,
			},
			Loan: LoanView{
				Active:       m.LoanActive,
				Principal:    m.LoanPrincipal,
				InterestRate: m.LoanInterestRate,
				IssuedAt:     m.LoanIssuedAt,
				DueAt:        m.LoanDueAt,
				Remaining:    m.LoanRemaining,
				Status:       m.LoanStatus,
			},
		},
	}
	if m.LoanID != nil {
		resp.Financials.Loan.LoanID = *m.LoanID
	}
	return resp
}

// Transaction represents one immutable financial event.
// MemberName and MemberEmail are snapshots taken at creation time and are
// intentionally not kept in sync with later profile edits.
type Transaction struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	TransactionID  string   `gorm:"uniqueIndex;size:50;not null" json:"transaction_id"`
	MemberID       uint     `gorm:"not null;index" json:"member_id"`
	MemberName     string   `gorm:"size:100;not null" json:"member_name"`
	MemberEmail    string   `gorm:"size:100;not null" json:"member_email"`
	Type           string   `gorm:"size:30;not null" json:"type"`
	Amount         float64  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description    string   `gorm:"type:text" json:"description"`
	InterestRate   *float64 `gorm:"type:decimal(5,2)" json:"interest_rate,omitempty"`
	DurationMonths *int     `json:"duration_months,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Receipt represents a generated receipt document for one transaction.
// Upserted: regenerating a receipt replaces the stored PDF.
type Receipt struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	TransactionID string  `gorm:"uniqueIndex;size:50;not null" json:"transaction_id"`
	MemberID      uint    `gorm:"not null;index" json:"member_id"`
	ReceiptNo     string  `gorm:"uniqueIndex;size:50;not null" json:"receipt_no"`
	GeneratedBy   string  `gorm:"size:100" json:"generated_by"`
	MemberName    string  `gorm:"size:100" json:"member_name"`
	Amount        float64 `gorm:"type:decimal(15,2)" json:"amount"`
	Type          string  `gorm:"size:30" json:"type"`
	Date          string  `gorm:"size:30" json:"date"`
	PDFData       []byte  `gorm:"type:mediumblob" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Receipt) TableName() string {
	return "receipts"
}

// Setting represents one key→value configuration row
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:50;not null" json:"key"`
	Value     string    `gorm:"size:100;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Setting keys read by the ledger when a loan request omits its extras
const (
	SettingPlanAmount        = "default_plan_amount"
	SettingInterestRate      = "default_interest_rate"
	SettingLoanDurationMonth = "default_loan_duration_months"
)

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&Transaction{},
		&Receipt{},
		&Setting{},
	)
}

// NewMember returns a member initialised per registration rules: collection
// due with nothing paid, no loan on the books.
func NewMember(role domain.Role) *Member {
	return &Member{
		Role:             string(role),
		CollectionStatus: string(domain.CollectionDue),
		LoanStatus:       string(domain.LoanPaid),
	}
}
