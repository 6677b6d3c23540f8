package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/ombank/teller/internal/domain"
)

type transactionRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
}

// Deposit credits an account and returns its updated state.
func (c *Client) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*domain.Account, error) {
	var account domain.Account
	err := c.do(ctx, http.MethodPost, "/transactions/deposit", transactionRequest{
		AccountNumber: accountNumber,
		Amount:        amount,
		Note:          note,
	}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Withdraw debits an account and returns its updated state.
func (c *Client) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*domain.Account, error) {
	var account domain.Account
	err := c.do(ctx, http.MethodPost, "/transactions/withdraw", transactionRequest{
		AccountNumber: accountNumber,
		Amount:        amount,
		Note:          note,
	}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

type transferRequest struct {
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
}

// Transfer moves funds between two accounts. The ledger applies the
// operation atomically; the response body carries no values this client
// needs.
func (c *Client) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, note string) error {
	return c.do(ctx, http.MethodPost, "/transactions/transfer", transferRequest{
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
		Note:        note,
	}, nil)
}

// MyTransactions lists the authenticated user's transaction history.
func (c *Client) MyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/my-transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// AccountTransactions lists the history of a single account.
func (c *Client) AccountTransactions(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	path := "/transactions/account/" + url.PathEscape(accountNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
