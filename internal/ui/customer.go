package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/ombank/teller/internal/domain"
	"github.com/ombank/teller/internal/usecase/workflow"
)

// submitFunc is the shape shared by the deposit and withdraw forms.
type submitFunc func(ctx context.Context, accountNumber, rawAmount string) (*domain.Account, error)

// runCustomer mounts the customer screen until logout or quit. Each form
// owns its own workflow instance, so the in-flight guard is per form.
func (a *App) runCustomer(ctx context.Context) error {
	h := a.mount()
	defer a.unmount(h)

	depositForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)
	withdrawForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)
	transferForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)

	if _, err := a.cache.Refresh(ctx, a.sessions.Current().Role); err != nil {
		a.sessions.InvalidateIfAuthError(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sess := a.sessions.Current()
		if !sess.Authenticated {
			return nil
		}

		fmt.Fprintf(a.out, "\n== Om Bank - %s ==\n", sess.Username)
		a.showNotification()
		fmt.Fprintln(a.out, "1) Accounts  2) Deposit  3) Withdraw  4) Transfer  5) History  6) Logout  q) Quit")

		choice, err := a.prompt("Select")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.refreshAndList(ctx, h)
		case "2":
			a.runTransact(ctx, h, depositForm.Deposit, "Deposit")
		case "3":
			a.runTransact(ctx, h, withdrawForm.Withdraw, "Withdraw")
		case "4":
			a.runTransfer(ctx, h, transferForm)
		case "5":
			a.runHistory(ctx, h)
		case "6":
			a.sessions.Logout()
			a.cache.Drop()
			return nil
		case "q":
			return errQuit
		}
	}
}

// refreshAndList reloads the role-scoped listing and renders it.
func (a *App) refreshAndList(ctx context.Context, h *screenHandle) {
	accounts, err := a.cache.Refresh(ctx, a.sessions.Current().Role)
	if !h.Alive() {
		return
	}
	if err != nil {
		a.sessions.InvalidateIfAuthError(err)
		a.showNotification()
		return
	}
	a.printAccounts(accounts)
}

// runTransact drives one deposit or withdraw form submission.
func (a *App) runTransact(ctx context.Context, h *screenHandle, submit submitFunc, kind string) {
	a.printAccounts(a.cache.Snapshot())

	accountNumber, err := a.prompt(kind + " account #")
	if err != nil {
		return
	}
	amount, err := a.prompt("Amount")
	if err != nil {
		return
	}

	updated, submitErr := submit(ctx, accountNumber, amount)
	if !h.Alive() {
		return
	}
	if submitErr != nil {
		a.reportFormError(submitErr)
		return
	}
	a.showNotification()
	if updated != nil {
		fmt.Fprintf(a.out, "Account #%s balance: $%s\n", updated.AccountNumber, updated.Balance.StringFixed(2))
	}
}

// runTransfer drives one transfer form submission.
func (a *App) runTransfer(ctx context.Context, h *screenHandle, form *workflow.Workflow) {
	a.printAccounts(a.cache.Snapshot())

	sender, err := a.prompt("From account #")
	if err != nil {
		return
	}
	receiver, err := a.prompt("To account #")
	if err != nil {
		return
	}
	amount, err := a.prompt("Amount")
	if err != nil {
		return
	}
	note, err := a.prompt("Note (optional)")
	if err != nil {
		return
	}

	result, submitErr := form.Transfer(ctx, sender, receiver, amount, note)
	if !h.Alive() {
		return
	}
	if submitErr != nil {
		a.reportFormError(submitErr)
		return
	}
	a.showNotification()
	if result.Sender != nil {
		fmt.Fprintf(a.out, "Sender #%s balance: $%s\n",
			result.Sender.AccountNumber, result.Sender.Balance.StringFixed(2))
	}
	if result.Receiver != nil {
		fmt.Fprintf(a.out, "Receiver #%s balance: $%s\n",
			result.Receiver.AccountNumber, result.Receiver.Balance.StringFixed(2))
	}
}

// runHistory renders the user's transaction history.
func (a *App) runHistory(ctx context.Context, h *screenHandle) {
	transactions, err := a.api.MyTransactions(ctx)
	if !h.Alive() {
		return
	}
	if err != nil {
		a.notifier.Set(err.Error(), domain.SeverityDanger)
		a.sessions.InvalidateIfAuthError(err)
		a.showNotification()
		return
	}
	a.printTransactions(transactions)
}

// reportFormError renders a rejected submission. Validation failures and
// in-flight rejections never produced a notification, so they are printed
// directly; everything else already set one.
func (a *App) reportFormError(err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintf(a.out, "[!!] %s\n", validationErr.Reason)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		fmt.Fprintf(a.out, "[!!] %s\n", err.Error())
	default:
		a.showNotification()
	}
}
