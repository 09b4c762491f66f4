package bitcoin_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/chains/bitcoin"
)

type recordedRequest struct {
	method string
	uri    string
	body   []byte
	apiKey string
}

// newRecordingServer answers every request with status/body and records it.
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest, *int32) {
	t.Helper()
	var (
		calls    int32
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		b, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		requests = append(requests, recordedRequest{
			method: r.Method,
			uri:    r.URL.RequestURI(),
			body:   b,
			apiKey: r.Header.Get(api.APIKeyHeader),
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests, &calls
}

func newClient(t *testing.T, srv *httptest.Server, blockchain api.Blockchain, network string) *api.Client {
	t.Helper()
	cfg, err := api.NewEndpointConfig("my-key", blockchain, network, api.WithHost(srv.URL))
	require.NoError(t, err)
	return api.NewClient(cfg)
}

func TestAddressService_GetAddressInfo(t *testing.T) {
	srv, requests, _ := newRecordingServer(t, http.StatusOK, `{"payload":{"address":"1A2b3C"}}`)
	svc := bitcoin.NewAddressService(newClient(t, srv, api.Bitcoin, api.Mainnet))

	resp, err := svc.GetAddressInfo(context.Background(), "1A2b3C")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/v1/bc/btc/mainnet/address/1A2b3C", req.uri)
	assert.Empty(t, req.body)
	assert.Equal(t, "my-key", req.apiKey)
}

func TestAddressService_GetTransactions(t *testing.T) {
	srv, requests, _ := newRecordingServer(t, http.StatusOK, `{"payload":[]}`)
	svc := bitcoin.NewAddressService(newClient(t, srv, api.Bitcoin, api.Mainnet))

	_, err := svc.GetTransactions(context.Background(), "1A2b3C", map[string]string{"limit": "5"})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/v1/bc/btc/mainnet/address/1A2b3C/transactions?limit=5", (*requests)[0].uri)
}

func TestAddressService_GetTransactions_UnknownParameter(t *testing.T) {
	srv, _, calls := newRecordingServer(t, http.StatusOK, `{}`)
	svc := bitcoin.NewAddressService(newClient(t, srv, api.Bitcoin, api.Mainnet))

	resp, err := svc.GetTransactions(context.Background(), "1A2b3C", map[string]string{"foo": "bar"})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
	assert.Contains(t, err.Error(), "foo")
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestAddressService_RemoteError(t *testing.T) {
	srv, _, _ := newRecordingServer(t, http.StatusInternalServerError, `{"code":500,"message":"internal"}`)
	svc := bitcoin.NewAddressService(newClient(t, srv, api.Bitcoin, api.Mainnet))

	_, err := svc.GetAddressInfo(context.Background(), "1A2b3C")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindRemote, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "internal", apiErr.Message)
}

func TestAddressService_Paths(t *testing.T) {
	srv, requests, _ := newRecordingServer(t, http.StatusOK, `{}`)
	svc := bitcoin.NewAddressService(newClient(t, srv, api.Litecoin, api.Testnet))
	ctx := context.Background()

	_, err := svc.GetMultisigAddressInfo(ctx, "mzEaY", map[string]string{"index": "0", "limit": "2"})
	require.NoError(t, err)
	_, err = svc.GenerateAddress(ctx)
	require.NoError(t, err)
	_, err = svc.GetAddressInfo(ctx, "a/b c")
	require.NoError(t, err)

	require.Len(t, *requests, 3)
	assert.Equal(t, "/v1/bc/ltc/testnet/address/mzEaY/multisig?index=0&limit=2", (*requests)[0].uri)
	assert.Equal(t, http.MethodPost, (*requests)[1].method)
	assert.Equal(t, "/v1/bc/ltc/testnet/address", (*requests)[1].uri)
	assert.Empty(t, (*requests)[1].body)
	assert.Equal(t, "/v1/bc/ltc/testnet/address/a%2Fb%20c", (*requests)[2].uri)
}

func TestAddressService_EmptyAddress(t *testing.T) {
	srv, _, calls := newRecordingServer(t, http.StatusOK, `{}`)
	svc := bitcoin.NewAddressService(newClient(t, srv, api.Bitcoin, api.Mainnet))

	_, err := svc.GetAddressInfo(context.Background(), "  ")
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
	_, err = svc.GetTransactions(context.Background(), "", nil)
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
	assert.Zero(t, atomic.LoadInt32(calls))
}
