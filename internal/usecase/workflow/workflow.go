// Package workflow drives the validate-submit-reconcile pipeline for
// ledger mutations.
//
// Every operation follows the same shape: validate synchronously (a
// failure raises *domain.ValidationError and issues zero network calls),
// submit exactly one request, surface the outcome as a notification, then
// refresh the account cache unconditionally and reselect the active
// account(s) by identifier from the post-refresh listing. Reselecting from
// any snapshot captured before the mutation would reintroduce the
// stale-read bug this ordering exists to prevent.
package workflow

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/ombank/teller/internal/domain"
	"github.com/ombank/teller/internal/usecase/accountcache"
)

// MutationAPI is the slice of the banking API the workflows consume.
type MutationAPI interface {
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*domain.Account, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*domain.Account, error)
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, note string) error
	CreateAccount(ctx context.Context, initialBalance decimal.Decimal) (*domain.Account, error)
	AdminCreateUser(ctx context.Context, username, password string) (*domain.NewUserResult, error)
	AdminDeposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.AdminMutationResult, error)
	AdminWithdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.AdminMutationResult, error)
}

// Sessions yields the live session scoping cache refreshes, and
// invalidates it when the server rejects the token.
type Sessions interface {
	Current() domain.Session
	InvalidateIfAuthError(err error) bool
}

// Workflow executes mutations for a single form. The in-flight flag is a
// one-writer lock per form, not a global lock: independent forms may have
// concurrent requests outstanding, but one form never submits twice at
// once.
type Workflow struct {
	api      MutationAPI
	cache    *accountcache.Cache
	notifier domain.Notifier
	sessions Sessions
	logger   *slog.Logger

	inFlight atomic.Bool
}

// New creates a Workflow for one form.
func New(api MutationAPI, cache *accountcache.Cache, notifier domain.Notifier, sessions Sessions, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		api:      api,
		cache:    cache,
		notifier: notifier,
		sessions: sessions,
		logger:   logger,
	}
}

// Deposit credits the selected account. On success it returns the
// account's post-refresh state.
func (w *Workflow) Deposit(ctx context.Context, accountNumber, rawAmount string) (*domain.Account, error) {
	return w.transact(ctx, accountNumber, rawAmount, "Deposit", w.api.Deposit)
}

// Withdraw debits the selected account. On success it returns the
// account's post-refresh state.
func (w *Workflow) Withdraw(ctx context.Context, accountNumber, rawAmount string) (*domain.Account, error) {
	return w.transact(ctx, accountNumber, rawAmount, "Withdraw", w.api.Withdraw)
}

type transactFunc func(ctx context.Context, accountNumber string, amount decimal.Decimal, note string) (*domain.Account, error)

func (w *Workflow) transact(ctx context.Context, accountNumber, rawAmount, kind string, submit transactFunc) (*domain.Account, error) {
	if !w.begin() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer w.end()

	if accountNumber == "" {
		return nil, &domain.ValidationError{Reason: "Please select an account"}
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	if _, err := submit(ctx, accountNumber, amount, kind); err != nil {
		w.fail(err)
		return nil, err
	}

	w.notifier.Set(kind+" successful!", domain.SeveritySuccess)
	w.reconcile(ctx)

	if account, ok := w.cache.Lookup(accountNumber); ok {
		return &account, nil
	}
	return nil, nil
}

// TransferResult carries the reselected accounts, both read from the
// post-refresh cache.
type TransferResult struct {
	Sender   *domain.Account
	Receiver *domain.Account
}

// Transfer moves funds between two accounts.
func (w *Workflow) Transfer(ctx context.Context, senderAccount, receiverAccount, rawAmount, note string) (*TransferResult, error) {
	if !w.begin() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer w.end()

	if senderAccount == "" || receiverAccount == "" {
		return nil, &domain.ValidationError{Reason: "Please select both sender and receiver accounts"}
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	intent := domain.TransferIntent{
		SenderAccount:   senderAccount,
		ReceiverAccount: receiverAccount,
		Amount:          amount,
		Note:            note,
	}
	if intent.Note == "" {
		intent.Note = "Transfer to #" + intent.ReceiverAccount
	}
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	if err := w.api.Transfer(ctx, intent.SenderAccount, intent.ReceiverAccount, intent.Amount, intent.Note); err != nil {
		w.fail(err)
		return nil, err
	}

	w.notifier.Set("Transfer successful!", domain.SeveritySuccess)
	w.reconcile(ctx)

	result := &TransferResult{}
	if sender, ok := w.cache.Lookup(intent.SenderAccount); ok {
		result.Sender = &sender
	}
	if receiver, ok := w.cache.Lookup(intent.ReceiverAccount); ok {
		result.Receiver = &receiver
	}
	return result, nil
}

// begin claims the form's in-flight slot. A false return means a previous
// submission from this form is still outstanding.
func (w *Workflow) begin() bool {
	return w.inFlight.CompareAndSwap(false, true)
}

func (w *Workflow) end() {
	w.inFlight.Store(false)
}

// InFlight reports whether a submission from this form is outstanding.
func (w *Workflow) InFlight() bool {
	return w.inFlight.Load()
}

// reconcile refreshes the cache strictly after the mutation's response has
// been received. Refresh failures keep the prior listing and surface their
// own danger notification inside the cache.
func (w *Workflow) reconcile(ctx context.Context) {
	if _, err := w.cache.Refresh(ctx, w.sessions.Current().Role); err != nil {
		w.sessions.InvalidateIfAuthError(err)
		w.logger.Warn("post-mutation refresh failed", "error", err)
	}
}

// fail surfaces the server or transport error message verbatim. No retry,
// and no partial effect is assumed: the remote ledger applies each
// mutation atomically.
func (w *Workflow) fail(err error) {
	w.notifier.Set(err.Error(), domain.SeverityDanger)
	w.sessions.InvalidateIfAuthError(err)
}

// ParseAmount parses a user-entered amount. Thousands separators are
// tolerated, the way the forms render amounts back to the user.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, &domain.ValidationError{Reason: "Amount must be greater than 0"}
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Reason: "Amount must be a number"}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &domain.ValidationError{Reason: "Amount must be greater than 0"}
	}
	return amount, nil
}
