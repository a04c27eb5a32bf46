// Package chainstate reads Solana mint accounts directly over JSON-RPC.
package chainstate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/IykeSol/Token-safety-scanner/internal/metrics"
	"github.com/IykeSol/Token-safety-scanner/internal/providers"
)

type Client struct {
	rpcURL     string
	httpClient *http.Client
}

// MintAccount holds the parsed fields of an SPL token mint. A nil
// authority means the capability has been revoked.
type MintAccount struct {
	MintAuthority   *string
	FreezeAuthority *string
	Supply          string
	Decimals        int
	IsInitialized   bool
}

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type accountInfoResponse struct {
	Result struct {
		Value *struct {
			Data struct {
				Parsed struct {
					Type string `json:"type"`
					Info struct {
						MintAuthority   *string `json:"mintAuthority"`
						FreezeAuthority *string `json:"freezeAuthority"`
						Supply          string  `json:"supply"`
						Decimals        int     `json:"decimals"`
						IsInitialized   bool    `json:"isInitialized"`
					} `json:"info"`
				} `json:"parsed"`
				Program string `json:"program"`
			} `json:"data"`
		} `json:"value"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func New(rpcURL string, timeout time.Duration) *Client {
	return &Client{
		rpcURL:     rpcURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// MintAccount fetches the mint record for an address via getAccountInfo
// with jsonParsed encoding. Returns providers.ErrNotFound when the
// account does not exist or is not a token mint.
func (c *Client) MintAccount(ctx context.Context, mint string) (acc *MintAccount, err error) {
	defer func() { metrics.ProviderCalls.WithLabelValues("chainstate", providers.Outcome(err)).Inc() }()

	payload, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  "getAccountInfo",
		Params:  []any{mint, map[string]string{"encoding": "jsonParsed", "commitment": "finalized"}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chain-state request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chain-state status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading chain-state response: %w", err)
	}

	var result accountInfoResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding chain-state response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("chain-state rpc error %d: %s", result.Error.Code, result.Error.Message)
	}
	if result.Result.Value == nil || result.Result.Value.Data.Parsed.Type != "mint" {
		return nil, providers.ErrNotFound
	}

	info := result.Result.Value.Data.Parsed.Info
	return &MintAccount{
		MintAuthority:   info.MintAuthority,
		FreezeAuthority: info.FreezeAuthority,
		Supply:          info.Supply,
		Decimals:        info.Decimals,
		IsInitialized:   info.IsInitialized,
	}, nil
}
