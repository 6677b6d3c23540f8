package domain

import "github.com/shopspring/decimal"

// TransferIntent captures a transfer the user is about to submit.
type TransferIntent struct {
	SenderAccount   string
	ReceiverAccount string
	Amount          decimal.Decimal
	Note            string
}

// Validate ensures the intent adheres to domain rules before any network
// call is issued. It returns a *ValidationError describing the first rule
// that fails.
func (t *TransferIntent) Validate() error {
	if t.SenderAccount == "" || t.ReceiverAccount == "" {
		return &ValidationError{Reason: "Please select both sender and receiver accounts"}
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Reason: "Amount must be greater than 0"}
	}
	if t.SenderAccount == t.ReceiverAccount {
		return &ValidationError{Reason: "Sender and receiver accounts must be different"}
	}
	return nil
}
