package explorer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IykeSol/Token-safety-scanner/internal/models"
	"github.com/IykeSol/Token-safety-scanner/internal/providers"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.baseURL = srv.URL
	return c
}

func TestTokenInfo(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "56", r.URL.Query().Get("chainid"))
		assert.Equal(t, "tokeninfo", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`{
			"status": "1",
			"message": "OK",
			"result": [{
				"contractAddress": "0xabc",
				"tokenName": "Test Token",
				"symbol": "TST",
				"divisor": "8",
				"totalSupply": "21000000",
				"blueCheckmark": "yes"
			}]
		}`))
	})

	got, err := c.TokenInfo(context.Background(), models.NetworkBSC, "0xabc")
	require.NoError(t, err)

	assert.Equal(t, "Test Token", got.Name)
	assert.Equal(t, "TST", got.Symbol)
	assert.Equal(t, 8, got.Decimals)
	assert.Equal(t, "21000000", got.TotalSupply)
	assert.True(t, got.Verified)
}

func TestTokenInfo_APIErrorIsNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
	})

	_, err := c.TokenInfo(context.Background(), models.NetworkEthereum, "0xabc")
	assert.True(t, providers.IsNotFound(err))
}

func TestTokenInfo_EmptyResultIsNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":[]}`))
	})

	_, err := c.TokenInfo(context.Background(), models.NetworkEthereum, "0xabc")
	assert.True(t, providers.IsNotFound(err))
}

func TestTokenInfo_ServerErrorIsNotAbsence(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.TokenInfo(context.Background(), models.NetworkEthereum, "0xabc")
	require.Error(t, err)
	assert.False(t, providers.IsNotFound(err))
}

func TestVerification_Verified(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getsourcecode", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`{
			"status": "1",
			"message": "OK",
			"result": [{
				"SourceCode": "contract Test {}",
				"ABI": "[]",
				"ContractName": "Test",
				"CompilerVersion": "v0.8.19+commit.7dd6d404",
				"LicenseType": "MIT",
				"Proxy": "0"
			}]
		}`))
	})

	got, err := c.Verification(context.Background(), models.NetworkEthereum, "0xabc")
	require.NoError(t, err)

	assert.True(t, got.Verified)
	assert.Equal(t, "Test", got.ContractName)
	assert.Equal(t, "v0.8.19+commit.7dd6d404", got.CompilerVersion)
	assert.Equal(t, "MIT", got.License)
}

func TestVerification_UnverifiedIsFoundResult(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "1",
			"message": "OK",
			"result": [{
				"SourceCode": "",
				"ABI": "Contract source code not verified",
				"ContractName": "",
				"CompilerVersion": "",
				"LicenseType": "",
				"Proxy": "0"
			}]
		}`))
	})

	got, err := c.Verification(context.Background(), models.NetworkPolygon, "0xabc")
	require.NoError(t, err)
	assert.False(t, got.Verified)
}
