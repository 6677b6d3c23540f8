// Package accountcache mirrors the server's role-scoped account listing.
//
// The cache is refreshed wholesale and never merged incrementally: a
// successful refresh replaces the entire list atomically, a failed one
// leaves the previous list untouched. Reads between refreshes may be
// stale; that staleness is an accepted eventual-consistency property, not
// a transactional read.
package accountcache

import (
	"context"
	"sync"

	"github.com/ombank/teller/internal/domain"
)

// AccountLister is the slice of the banking API the cache consumes.
type AccountLister interface {
	MyAccounts(ctx context.Context) ([]domain.Account, error)
	AllAccounts(ctx context.Context) ([]domain.Account, error)
}

// Cache holds the most recently fetched account listing.
type Cache struct {
	api      AccountLister
	notifier domain.Notifier

	mu       sync.RWMutex
	accounts []domain.Account
}

// NewCache creates an empty account cache.
func NewCache(api AccountLister, notifier domain.Notifier) *Cache {
	return &Cache{
		api:      api,
		notifier: notifier,
	}
}

// Refresh fetches the role-scoped listing (all accounts for an admin,
// owned accounts for a customer) and replaces the cached list with the
// server's, verbatim. On failure the prior list stands and a danger
// notification is surfaced; no partial overwrite is ever observable.
func (c *Cache) Refresh(ctx context.Context, role domain.Role) ([]domain.Account, error) {
	var (
		accounts []domain.Account
		err      error
	)
	if role == domain.RoleAdmin {
		accounts, err = c.api.AllAccounts(ctx)
	} else {
		accounts, err = c.api.MyAccounts(ctx)
	}
	if err != nil {
		c.notifier.Set("Failed to load accounts", domain.SeverityDanger)
		return nil, err
	}

	c.mu.Lock()
	c.accounts = accounts
	c.mu.Unlock()

	return c.Snapshot(), nil
}

// Lookup reads the current cache by account number. The result may be
// stale between refreshes.
func (c *Cache) Lookup(accountNumber string) (domain.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.FindAccount(c.accounts, accountNumber)
}

// Snapshot returns a copy of the cached listing.
func (c *Cache) Snapshot() []domain.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]domain.Account, len(c.accounts))
	copy(snapshot, c.accounts)
	return snapshot
}

// Drop discards the cached listing, e.g. when the session ends.
func (c *Cache) Drop() {
	c.mu.Lock()
	c.accounts = nil
	c.mu.Unlock()
}
