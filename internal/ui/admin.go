package ui

import (
	"context"
	"fmt"

	"github.com/ombank/teller/internal/domain"
	"github.com/ombank/teller/internal/usecase/workflow"
)

// runAdmin mounts the admin screen until logout or quit.
func (a *App) runAdmin(ctx context.Context) error {
	h := a.mount()
	defer a.unmount(h)

	createAccountForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)
	createUserForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)
	depositForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)
	withdrawForm := workflow.New(a.api, a.cache, a.notifier, a.sessions, a.logger)

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

		fmt.Fprintf(a.out, "\n== Om Bank Admin - %s ==\n", sess.Username)
		a.showNotification()
		fmt.Fprintln(a.out, "1) All accounts  2) Create account  3) Create user  4) Deposit funds  5) Withdraw funds  6) Account history  7) Logout  q) Quit")

		choice, err := a.prompt("Select")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.refreshAndList(ctx, h)
		case "2":
			a.runCreateAccount(ctx, h, createAccountForm)
		case "3":
			a.runCreateUser(ctx, h, createUserForm)
		case "4":
			a.runAdminMutation(ctx, h, depositForm.AdminDeposit)
		case "5":
			a.runAdminMutation(ctx, h, withdrawForm.AdminWithdraw)
		case "6":
			a.runAccountHistory(ctx, h)
		case "7":
			a.sessions.Logout()
			a.cache.Drop()
			return nil
		case "q":
			return errQuit
		}
	}
}

// runAccountHistory renders one account's ledger history.
func (a *App) runAccountHistory(ctx context.Context, h *screenHandle) {
	accountNumber, err := a.prompt("Account #")
	if err != nil || accountNumber == "" {
		return
	}

	transactions, apiErr := a.api.AccountTransactions(ctx, accountNumber)
	if !h.Alive() {
		return
	}
	if apiErr != nil {
		a.notifier.Set(apiErr.Error(), domain.SeverityDanger)
		a.sessions.InvalidateIfAuthError(apiErr)
		a.showNotification()
		return
	}
	a.printTransactions(transactions)
}

func (a *App) runCreateAccount(ctx context.Context, h *screenHandle, form *workflow.Workflow) {
	initialBalance, err := a.prompt("Initial balance")
	if err != nil {
		return
	}

	account, submitErr := form.CreateAccount(ctx, initialBalance)
	if !h.Alive() {
		return
	}
	if submitErr != nil {
		a.reportFormError(submitErr)
		return
	}
	a.showNotification()
	fmt.Fprintf(a.out, "Account #%s opened with $%s\n", account.AccountNumber, account.Balance.StringFixed(2))
}

func (a *App) runCreateUser(ctx context.Context, h *screenHandle, form *workflow.Workflow) {
	username, err := a.prompt("New username")
	if err != nil {
		return
	}
	password, err := a.prompt("New password")
	if err != nil {
		return
	}

	_, submitErr := form.AdminCreateUser(ctx, username, password)
	if !h.Alive() {
		return
	}
	if submitErr != nil {
		a.reportFormError(submitErr)
		return
	}
	a.showNotification()
}

type adminMutationFunc func(ctx context.Context, rawUserID, rawAmount string) (*domain.AdminMutationResult, error)

func (a *App) runAdminMutation(ctx context.Context, h *screenHandle, submit adminMutationFunc) {
	userID, err := a.prompt("User ID")
	if err != nil {
		return
	}
	amount, err := a.prompt("Amount")
	if err != nil {
		return
	}

	_, submitErr := submit(ctx, userID, amount)
	if !h.Alive() {
		return
	}
	if submitErr != nil {
		a.reportFormError(submitErr)
		return
	}
	a.showNotification()
}
