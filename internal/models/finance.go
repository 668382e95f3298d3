package models

import "time"

const (
	DiscrepancyStatusPending  = "pending"
	DiscrepancyStatusResolved = "resolved"
	DiscrepancyStatusRejected = "rejected"
)

const (
	FollowUpStatusPending    = "pending"
	FollowUpStatusInProgress = "in_progress"
	FollowUpStatusCompleted  = "completed"
)

const (
	PayableCheckStatusIssued   = "issued"
	PayableCheckStatusPaid     = "paid"
	PayableCheckStatusReturned = "returned"
)

const (
	ReceivableCheckStatusReceived  = "received"
	ReceivableCheckStatusDeposited = "deposited"
	ReceivableCheckStatusReturned  = "returned"
)

const (
	DebtStatusPending     = "pending"
	DebtStatusPartialPaid = "partial_paid"
	DebtStatusPaid        = "paid"
)

// OverdueAccount tracks a customer balance past its due date, linked to
// the ledger account it belongs to.
type OverdueAccount struct {
	ID            string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountID     string    `gorm:"type:uuid;index;not null" json:"account_id"`
	CustomerName  string    `gorm:"size:200;not null" json:"customer_name"`
	OverdueAmount float64   `gorm:"not null" json:"overdue_amount"`
	DueDate       time.Time `gorm:"not null" json:"due_date"`
	ContactInfo   string    `json:"contact_info"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Discrepancy records a mismatch found on an account during
// reconciliation, attributed to the user who reported it.
type Discrepancy struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	AccountID   string    `gorm:"type:uuid;index;not null" json:"account_id"`
	Status      string    `gorm:"size:50;not null;default:pending" json:"status"`
	CreatedByID string    `gorm:"type:uuid;index;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FollowUp is a customer follow-up item owned by the user who opened it.
type FollowUp struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	CustomerName string    `gorm:"size:200;not null" json:"customer_name"`
	FollowUpDate time.Time `gorm:"not null" json:"follow_up_date"`
	Status       string    `gorm:"size:50;not null;default:pending" json:"status"`
	CreatedByID  string    `gorm:"type:uuid;index;not null" json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PayableCheck is an outgoing check issued to a payee.
type PayableCheck struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CheckNumber string    `gorm:"size:50;not null" json:"check_number"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Payee       string    `gorm:"size:200;not null" json:"payee"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	BankName    string    `gorm:"size:100;not null" json:"bank_name"`
	Status      string    `gorm:"size:50;not null;default:issued" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReceivableCheck is an incoming check received from a payer.
type ReceivableCheck struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CheckNumber string    `gorm:"size:50;not null" json:"check_number"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Payer       string    `gorm:"size:200;not null" json:"payer"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	BankName    string    `gorm:"size:100;not null" json:"bank_name"`
	Status      string    `gorm:"size:50;not null;default:received" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OngoingDebt is an open liability owed to a creditor.
type OngoingDebt struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CreditorName string    `gorm:"size:200;not null" json:"creditor_name"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Description  string    `gorm:"not null" json:"description"`
	DueDate      time.Time `gorm:"not null" json:"due_date"`
	Status       string    `gorm:"size:50;not null;default:pending" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FinancialSummary is the aggregate snapshot the dashboard shows.
type FinancialSummary struct {
	TotalAccounts         int64   `json:"total_accounts"`
	TotalBalance          float64 `json:"total_balance"`
	OverdueAccountsCount  int64   `json:"overdue_accounts_count"`
	OverdueAmount         float64 `json:"overdue_amount"`
	PendingDiscrepancies  int64   `json:"pending_discrepancies"`
	PayableChecksCount    int64   `json:"payable_checks_count"`
	ReceivableChecksCount int64   `json:"receivable_checks_count"`
	OngoingDebtsCount     int64   `json:"ongoing_debts_count"`
	OngoingDebtsAmount    float64 `json:"ongoing_debts_amount"`
}
