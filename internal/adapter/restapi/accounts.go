package restapi

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ombank/teller/internal/domain"
)

// MyAccounts lists the accounts owned by the authenticated user.
func (c *Client) MyAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, "/accounts/my-accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// AllAccounts lists every account. The server authorizes this against the
// token; the client's cached role flag plays no part in it.
func (c *Client) AllAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, "/accounts/all", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

type createAccountRequest struct {
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// CreateAccount opens a new account with the given initial balance.
func (c *Client) CreateAccount(ctx context.Context, initialBalance decimal.Decimal) (*domain.Account, error) {
	var account domain.Account
	err := c.do(ctx, http.MethodPost, "/accounts/create", createAccountRequest{
		InitialBalance: initialBalance,
	}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AdminCreateUser creates a user together with its first account.
func (c *Client) AdminCreateUser(ctx context.Context, username, password string) (*domain.NewUserResult, error) {
	var result domain.NewUserResult
	err := c.do(ctx, http.MethodPost, "/accounts/admin/create-user", credentialsRequest{
		Username: username,
		Password: password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type adminMutationRequest struct {
	UserID int64           `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
}

// AdminDeposit credits a user's account on their behalf.
func (c *Client) AdminDeposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.AdminMutationResult, error) {
	var result domain.AdminMutationResult
	err := c.do(ctx, http.MethodPost, "/accounts/admin/deposit", adminMutationRequest{
		UserID: userID,
		Amount: amount,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AdminWithdraw debits a user's account on their behalf.
func (c *Client) AdminWithdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.AdminMutationResult, error) {
	var result domain.AdminMutationResult
	err := c.do(ctx, http.MethodPost, "/accounts/admin/withdraw", adminMutationRequest{
		UserID: userID,
		Amount: amount,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
