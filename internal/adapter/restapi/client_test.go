package restapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ombank/teller/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.Client(), server.URL, func() string { return token }, nil)
	require.NoError(t, err)
	return client, server
}

func TestClient_AttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, handler, "t1")

	_, err := client.MyAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_OmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"token":"t1","isAdmin":false}`))
	})
	client, _ := newTestClient(t, handler, "")

	_, err := client.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	assert.False(t, hasAuth, "no Authorization header expected, got %q", gotAuth)
}

func TestClient_LoginParsesAuthResult(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"t1","isAdmin":true}`))
	})
	client, _ := newTestClient(t, handler, "")

	result, err := client.Login(context.Background(), "root", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t1", result.Token)
	assert.True(t, result.IsAdmin)
}

func TestClient_MyAccountsDecodesBalances(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"accountNumber":"1000000001","balance":350.00,"ownerId":"7"}]`))
	})
	client, _ := newTestClient(t, handler, "t1")

	accounts, err := client.MyAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "1000000001", accounts[0].AccountNumber)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromFloat(350.00)))
}

func TestClient_NonSuccessBodyIsVerbatimErrorMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("insufficient balance"))
	})
	client, _ := newTestClient(t, handler, "t1")

	_, err := client.Withdraw(context.Background(), "1000000001", decimal.NewFromInt(100), "Withdraw")
	require.Error(t, err)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusConflict, remoteErr.StatusCode)
	assert.Equal(t, "insufficient balance", remoteErr.Message)
}

func TestClient_UnauthorizedBecomesAuthError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("token expired"))
	})
	client, _ := newTestClient(t, handler, "stale")

	_, err := client.MyAccounts(context.Background())
	require.Error(t, err)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "token expired", authErr.Message)
}

func TestClient_TransportFailureBecomesNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(nil, url, nil, nil)
	require.NoError(t, err)

	_, err = client.MyAccounts(context.Background())
	require.Error(t, err)

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestClient_TransferSendsFullIntent(t *testing.T) {
	var gotBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{}`))
	})
	client, _ := newTestClient(t, handler, "t1")

	err := client.Transfer(context.Background(), "1000000001", "1000000002", decimal.NewFromInt(50), "rent")
	require.NoError(t, err)

	assert.JSONEq(t, `{"fromAccount":"1000000001","toAccount":"1000000002","amount":"50","note":"rent"}`, gotBody)
}
