package ui

import (
	"context"
	"fmt"

	"github.com/ombank/teller/internal/domain"
)

// runLogin mounts the login screen for one attempt, then hands control
// back so the dispatcher can re-evaluate the session.
func (a *App) runLogin(ctx context.Context) error {
	h := a.mount()
	defer a.unmount(h)

	fmt.Fprintln(a.out, "\n== Om Bank - Login ==")
	a.showNotification()
	fmt.Fprintln(a.out, "(enter a blank username to switch to sign-up, or 'q' to quit)")

	username, err := a.prompt("Username")
	if err != nil {
		return err
	}
	if username == "q" {
		return errQuit
	}
	if username == "" {
		a.signUp = true
		return nil
	}

	password, err := a.prompt("Password")
	if err != nil {
		return err
	}

	sess, err := a.sessions.Login(ctx, username, password)
	if !h.Alive() {
		return nil
	}
	if err != nil {
		a.notifier.Set(err.Error(), domain.SeverityDanger)
		a.showNotification()
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.Username)
	return nil
}

// runSignUp mounts the sign-up screen for one attempt. A successful
// registration authenticates immediately, same as login.
func (a *App) runSignUp(ctx context.Context) error {
	h := a.mount()
	defer a.unmount(h)

	fmt.Fprintln(a.out, "\n== Om Bank - Sign Up ==")
	a.showNotification()
	fmt.Fprintln(a.out, "(enter a blank username to switch to login)")

	username, err := a.prompt("Choose a username")
	if err != nil {
		return err
	}
	if username == "" {
		a.signUp = false
		return nil
	}

	password, err := a.prompt("Choose a password")
	if err != nil {
		return err
	}

	sess, err := a.sessions.Register(ctx, username, password)
	if !h.Alive() {
		return nil
	}
	if err != nil {
		a.notifier.Set(err.Error(), domain.SeverityDanger)
		a.showNotification()
		return nil
	}

	a.signUp = false
	fmt.Fprintf(a.out, "Account created successfully! Welcome, %s!\n", sess.Username)
	return nil
}
