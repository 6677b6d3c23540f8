package accountcache

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ombank/teller/internal/domain"
	"github.com/ombank/teller/internal/usecase/notify"
)

// MockAccountLister is a mock implementation of AccountLister for testing
type MockAccountLister struct {
	mock.Mock
}

func (m *MockAccountLister) MyAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountLister) AllAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func testAccounts() []domain.Account {
	return []domain.Account{
		{AccountNumber: "1000000001", Balance: decimal.NewFromInt(300), OwnerID: "1"},
		{AccountNumber: "1000000002", Balance: decimal.NewFromInt(150), OwnerID: "2"},
	}
}

func TestRefresh_CustomerUsesOwnedListing(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAccountLister)
	notifier := notify.NewNotifier(notify.DefaultTTL)
	cache := NewCache(mockAPI, notifier)

	mockAPI.On("MyAccounts", ctx).Return(testAccounts(), nil)

	accounts, err := cache.Refresh(ctx, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	mockAPI.AssertNotCalled(t, "AllAccounts", mock.Anything)
}

func TestRefresh_AdminUsesFullListing(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAccountLister)
	notifier := notify.NewNotifier(notify.DefaultTTL)
	cache := NewCache(mockAPI, notifier)

	mockAPI.On("AllAccounts", ctx).Return(testAccounts(), nil)

	_, err := cache.Refresh(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	mockAPI.AssertNotCalled(t, "MyAccounts", mock.Anything)
}

func TestRefresh_ReplacesListWholesale(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAccountLister)
	notifier := notify.NewNotifier(notify.DefaultTTL)
	cache := NewCache(mockAPI, notifier)

	mockAPI.On("MyAccounts", ctx).Return(testAccounts(), nil).Once()
	_, err := cache.Refresh(ctx, domain.RoleCustomer)
	require.NoError(t, err)

	// The next listing drops one account and changes a balance; the cache
	// must mirror it verbatim, no merging with the previous list.
	replacement := []domain.Account{
		{AccountNumber: "1000000002", Balance: decimal.NewFromInt(999), OwnerID: "2"},
	}
	mockAPI.On("MyAccounts", ctx).Return(replacement, nil).Once()

	accounts, err := cache.Refresh(ctx, domain.RoleCustomer)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(999)))

	_, ok := cache.Lookup("1000000001")
	assert.False(t, ok)
}

func TestRefresh_FailureKeepsPriorListAndNotifies(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAccountLister)
	notifier := notify.NewNotifier(notify.DefaultTTL)
	cache := NewCache(mockAPI, notifier)

	mockAPI.On("MyAccounts", ctx).Return(testAccounts(), nil).Once()
	_, err := cache.Refresh(ctx, domain.RoleCustomer)
	require.NoError(t, err)

	mockAPI.On("MyAccounts", ctx).Return(nil, &domain.NetworkError{Err: errors.New("timeout")}).Once()

	_, err = cache.Refresh(ctx, domain.RoleCustomer)
	require.Error(t, err)

	// Stale but available.
	assert.Len(t, cache.Snapshot(), 2)
	_, ok := cache.Lookup("1000000001")
	assert.True(t, ok)

	n, visible := notifier.Current()
	require.True(t, visible)
	assert.Equal(t, domain.SeverityDanger, n.Severity)
	assert.Equal(t, "Failed to load accounts", n.Message)
}

func TestLookup_MissingAccount(t *testing.T) {
	mockAPI := new(MockAccountLister)
	cache := NewCache(mockAPI, notify.NewNotifier(notify.DefaultTTL))

	_, ok := cache.Lookup("nope")
	assert.False(t, ok)
}

func TestDrop_DiscardsListing(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAccountLister)
	cache := NewCache(mockAPI, notify.NewNotifier(notify.DefaultTTL))

	mockAPI.On("MyAccounts", ctx).Return(testAccounts(), nil)
	_, err := cache.Refresh(ctx, domain.RoleCustomer)
	require.NoError(t, err)

	cache.Drop()
	assert.Empty(t, cache.Snapshot())
}
