package entity

import "time"

type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeEarning  TransactionType = "earning"
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypePayout   TransactionType = "payout"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is an immutable ledger entry. The ledger is an append-only
// audit trail; the profile balance is the authoritative display figure and
// the two may drift until an admin settles pending entries.
type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	PostID      string            `json:"post_id,omitempty"`
	Type        TransactionType   `json:"type"`
	AmountCents int64             `json:"amount_cents"` // signed
	Description string            `json:"description,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
