// Package ui renders the client's screens on a line-oriented terminal.
// The screens are interchangeable plumbing; session gating, caching and
// the mutation workflows all live in the usecase packages.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/ombank/teller/internal/dispatch"
	"github.com/ombank/teller/internal/domain"
	"github.com/ombank/teller/internal/usecase/accountcache"
	"github.com/ombank/teller/internal/usecase/notify"
	"github.com/ombank/teller/internal/usecase/session"
)

// errQuit unwinds the run loop when the user asks to exit.
var errQuit = errors.New("quit")

// App wires the screens to the usecase layer and runs the main loop.
type App struct {
	in       *bufio.Scanner
	out      io.Writer
	api      domain.BankingAPI
	sessions *session.Service
	cache    *accountcache.Cache
	notifier *notify.Notifier
	logger   *slog.Logger

	// signUp toggles the unauthenticated view between login and sign-up.
	signUp bool
}

// NewApp creates the terminal application.
func NewApp(in io.Reader, out io.Writer, api domain.BankingAPI, sessions *session.Service,
	cache *accountcache.Cache, notifier *notify.Notifier, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		in:       bufio.NewScanner(in),
		out:      out,
		api:      api,
		sessions: sessions,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// Run re-evaluates the dispatcher whenever a screen returns, i.e. whenever
// the session may have changed, and mounts the screen it resolves to.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch dispatch.Resolve(a.sessions.Current(), a.signUp) {
		case dispatch.ScreenLogin:
			err = a.runLogin(ctx)
		case dispatch.ScreenSignUp:
			err = a.runSignUp(ctx)
		case dispatch.ScreenAdmin:
			err = a.runAdmin(ctx)
		case dispatch.ScreenCustomer:
			err = a.runCustomer(ctx)
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// screenHandle marks a mounted screen as live. Handlers that complete
// after a suspension point check it before applying state, so a response
// never writes into a torn-down view.
type screenHandle struct {
	alive atomic.Bool
}

func (h *screenHandle) Alive() bool { return h.alive.Load() }

func (a *App) mount() *screenHandle {
	h := &screenHandle{}
	h.alive.Store(true)
	return h
}

// unmount tears the screen down and cancels any pending notification
// timer, so no orphaned callback fires afterwards.
func (a *App) unmount(h *screenHandle) {
	h.alive.Store(false)
	a.notifier.Clear()
}

// prompt reads one trimmed line of input.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// showNotification prints the current notification slot, if occupied.
func (a *App) showNotification() {
	n, ok := a.notifier.Current()
	if !ok {
		return
	}
	switch n.Severity {
	case domain.SeveritySuccess:
		fmt.Fprintf(a.out, "[ok] %s\n", n.Message)
	case domain.SeverityDanger:
		fmt.Fprintf(a.out, "[!!] %s\n", n.Message)
	default:
		fmt.Fprintf(a.out, "[--] %s\n", n.Message)
	}
}

func (a *App) printAccounts(accounts []domain.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts found.")
		return
	}
	fmt.Fprintf(a.out, "%-14s %14s  %s\n", "Account", "Balance", "Owner")
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "%-14s %14s  %s\n",
			"#"+acc.AccountNumber, "$"+acc.Balance.StringFixed(2), acc.OwnerID)
	}
}

func (a *App) printTransactions(transactions []domain.Transaction) {
	if len(transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions found.")
		return
	}
	for _, tx := range transactions {
		sign := "+"
		if tx.Type == domain.EntryTypeDebit {
			sign = "-"
		}
		fmt.Fprintf(a.out, "%s  %s$%s  #%s  %s\n",
			tx.Date.Format("2006-01-02"), sign, tx.Amount.StringFixed(2), tx.RelatedAccount, tx.Note)
	}
}
