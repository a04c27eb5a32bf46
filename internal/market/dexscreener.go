// Package market implements the DexScreener client for DEX pair data.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/IykeSol/Token-safety-scanner/internal/metrics"
	"github.com/IykeSol/Token-safety-scanner/internal/providers"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Pair is one DEX trading pair for a token.
type Pair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	PairAddress string `json:"pairAddress"`
	BaseToken   struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	PriceUSD  string `json:"priceUsd"`
	Liquidity struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	Volume struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
}

type tokensResponse struct {
	Pairs []Pair `json:"pairs"`
}

func New(timeout time.Duration) *Client {
	return &Client{
		baseURL:    "https://api.dexscreener.com/latest/dex/tokens",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TopPairs fetches all pairs for a token, sorted descending by quoted
// liquidity in USD. Provider return order is preserved on ties. Returns
// providers.ErrNotFound when no pair exists.
func (c *Client) TopPairs(ctx context.Context, address string) (pairs []Pair, err error) {
	defer func() { metrics.ProviderCalls.WithLabelValues("market", providers.Outcome(err)).Inc() }()

	url := fmt.Sprintf("%s/%s", c.baseURL, address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading market response: %w", err)
	}

	var result tokensResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding market response: %w", err)
	}
	if len(result.Pairs) == 0 {
		return nil, providers.ErrNotFound
	}

	sort.SliceStable(result.Pairs, func(i, j int) bool {
		return result.Pairs[i].Liquidity.USD > result.Pairs[j].Liquidity.USD
	})

	return result.Pairs, nil
}
