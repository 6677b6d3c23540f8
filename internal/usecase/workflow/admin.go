package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ombank/teller/internal/domain"
)

// CreateAccount opens a new account. The initial balance may be zero.
func (w *Workflow) CreateAccount(ctx context.Context, rawInitialBalance string) (*domain.Account, error) {
	if !w.begin() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer w.end()

	cleaned := strings.ReplaceAll(strings.TrimSpace(rawInitialBalance), ",", "")
	if cleaned == "" {
		cleaned = "0"
	}
	balance, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, &domain.ValidationError{Reason: "Initial balance must be a number"}
	}
	if balance.IsNegative() {
		return nil, &domain.ValidationError{Reason: "Initial balance cannot be negative"}
	}

	account, err := w.api.CreateAccount(ctx, balance)
	if err != nil {
		w.fail(err)
		return nil, err
	}

	w.notifier.Set("Account created successfully!", domain.SeveritySuccess)
	w.reconcile(ctx)
	return account, nil
}

// AdminCreateUser creates a user together with its first account.
func (w *Workflow) AdminCreateUser(ctx context.Context, username, password string) (*domain.NewUserResult, error) {
	if !w.begin() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer w.end()

	if username == "" || password == "" {
		return nil, &domain.ValidationError{Reason: "Username and password are required"}
	}

	result, err := w.api.AdminCreateUser(ctx, username, password)
	if err != nil {
		w.fail(err)
		return nil, err
	}

	w.notifier.Set(fmt.Sprintf("User created! Account #%s", result.AccountNumber), domain.SeveritySuccess)
	w.reconcile(ctx)
	return result, nil
}

// AdminDeposit credits a user's account on their behalf. The notification
// is built from the figures the server echoes back, never from client
// arithmetic.
func (w *Workflow) AdminDeposit(ctx context.Context, rawUserID, rawAmount string) (*domain.AdminMutationResult, error) {
	if !w.begin() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer w.end()

	userID, amount, err := parseAdminMutation(rawUserID, rawAmount)
	if err != nil {
		return nil, err
	}

	result, err := w.api.AdminDeposit(ctx, userID, amount)
	if err != nil {
		w.fail(err)
		return nil, err
	}

	w.notifier.Set(fmt.Sprintf("Deposited $%s to %s. New balance: $%s",
		result.DepositedAmount.String(), result.Username, result.NewBalance.String()), domain.SeveritySuccess)
	w.reconcile(ctx)
	return result, nil
}

// AdminWithdraw debits a user's account on their behalf.
func (w *Workflow) AdminWithdraw(ctx context.Context, rawUserID, rawAmount string) (*domain.AdminMutationResult, error) {
	if !w.begin() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer w.end()

	userID, amount, err := parseAdminMutation(rawUserID, rawAmount)
	if err != nil {
		return nil, err
	}

	result, err := w.api.AdminWithdraw(ctx, userID, amount)
	if err != nil {
		w.fail(err)
		return nil, err
	}

	w.notifier.Set(fmt.Sprintf("Withdrew $%s from %s. New balance: $%s",
		result.WithdrawnAmount.String(), result.Username, result.NewBalance.String()), domain.SeveritySuccess)
	w.reconcile(ctx)
	return result, nil
}

func parseAdminMutation(rawUserID, rawAmount string) (int64, decimal.Decimal, error) {
	rawUserID = strings.TrimSpace(rawUserID)
	if rawUserID == "" {
		return 0, decimal.Zero, &domain.ValidationError{Reason: "Please enter a user ID"}
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		return 0, decimal.Zero, &domain.ValidationError{Reason: "User ID must be a number"}
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return userID, amount, nil
}
