package domain

import "github.com/shopspring/decimal"

// Account is one ledger account as reported by the server. The client never
// computes balances; it only renders what the server returns.
type Account struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	OwnerID       string          `json:"ownerId"`
}

// FindAccount returns the account with the given number, if present.
func FindAccount(accounts []Account, accountNumber string) (Account, bool) {
	for _, account := range accounts {
		if account.AccountNumber == accountNumber {
			return account, true
		}
	}
	return Account{}, false
}
