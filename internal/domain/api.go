package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AuthResult is the server's response to a login or registration request.
type AuthResult struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// NewUserResult is the server's response to an admin user creation.
type NewUserResult struct {
	AccountNumber string `json:"accountNumber"`
}

// AdminMutationResult carries the values the server echoes back after an
// admin deposit or withdrawal. Notifications are built from these echoed
// figures, never from client-side arithmetic, so the numbers shown always
// match the ledger's authoritative ones.
type AdminMutationResult struct {
	DepositedAmount decimal.Decimal `json:"depositedAmount"`
	WithdrawnAmount decimal.Decimal `json:"withdrawnAmount"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	Username        string          `json:"username"`
}

// BankingAPI is the network boundary to the remote ledger. The server is
// the sole authority on balances and authorization; this client only
// submits requests and renders what comes back.
type BankingAPI interface {
	// Login authenticates with the given credentials.
	Login(ctx context.Context, username, password string) (*AuthResult, error)

	// Register creates a new user and authenticates it immediately.
	Register(ctx context.Context, username, password string) (*AuthResult, error)

	// MyAccounts lists the accounts owned by the authenticated user.
	MyAccounts(ctx context.Context) ([]Account, error)

	// AllAccounts lists every account. Admin only; the server enforces it.
	AllAccounts(ctx context.Context) ([]Account, error)

	// CreateAccount opens a new account with the given initial balance.
	CreateAccount(ctx context.Context, initialBalance decimal.Decimal) (*Account, error)

	// AdminCreateUser creates a user together with its first account.
	AdminCreateUser(ctx context.Context, username, password string) (*NewUserResult, error)

	// AdminDeposit credits a user's account on their behalf.
	AdminDeposit(ctx context.Context, userID int64, amount decimal.Decimal) (*AdminMutationResult, error)

	// AdminWithdraw debits a user's account on their behalf.
	AdminWithdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*AdminMutationResult, error)

	// Deposit credits an account and returns its updated state.
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*Account, error)

	// Withdraw debits an account and returns its updated state.
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*Account, error)

	// Transfer moves funds between two accounts.
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, note string) error

	// MyTransactions lists the authenticated user's transaction history.
	MyTransactions(ctx context.Context) ([]Transaction, error)

	// AccountTransactions lists the history of a single account.
	AccountTransactions(ctx context.Context, accountNumber string) ([]Transaction, error)
}
