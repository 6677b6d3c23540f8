package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType represents the direction of a ledger entry.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// Transaction is a read-only projection of the ledger's history.
// Transactions are never constructed client-side; they are only ever
// unmarshalled from server responses.
type Transaction struct {
	Date           time.Time       `json:"date"`
	Note           string          `json:"note"`
	Amount         decimal.Decimal `json:"amount"`
	Type           EntryType       `json:"type"`
	RelatedAccount string          `json:"relatedAccount"`
}
