// Package security implements the GoPlus token-security client and
// normalizes its all-string payload into SecuritySignals.
package security

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/IykeSol/Token-safety-scanner/internal/metrics"
	"github.com/IykeSol/Token-safety-scanner/internal/models"
	"github.com/IykeSol/Token-safety-scanner/internal/providers"
)

var chainIDs = map[models.Network]string{
	models.NetworkEthereum: "1",
	models.NetworkBSC:      "56",
	models.NetworkPolygon:  "137",
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type apiResponse struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Result  map[string]tokenData `json:"result"`
}

type tokenData struct {
	IsHoneypot           string `json:"is_honeypot"`
	CannotBuy            string `json:"cannot_buy"`
	CannotSellAll        string `json:"cannot_sell_all"`
	IsMintable           string `json:"is_mintable"`
	IsBlacklisted        string `json:"is_blacklisted"`
	IsProxy              string `json:"is_proxy"`
	IsOpenSource         string `json:"is_open_source"`
	CanTakeBackOwnership string `json:"can_take_back_ownership"`
	OwnerAddress         string `json:"owner_address"`
	BuyTax               string `json:"buy_tax"`
	SellTax              string `json:"sell_tax"`
	HolderCount          string `json:"holder_count"`
	LPTotalSupply        string `json:"lp_total_supply"`
	TotalSupply          string `json:"total_supply"`
	TokenName            string `json:"token_name"`
	TokenSymbol          string `json:"token_symbol"`
	Holders              []struct {
		Address  string `json:"address"`
		Tag      string `json:"tag"`
		Balance  string `json:"balance"`
		Percent  string `json:"percent"`
		IsLocked int    `json:"is_locked"`
	} `json:"holders"`
}

func New(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    "https://api.gopluslabs.io",
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Signals fetches the heuristics record for a token. EVM lookups are
// keyed by the lower-cased address. Returns providers.ErrNotFound when
// GoPlus has not indexed the token.
func (c *Client) Signals(ctx context.Context, network models.Network, address string) (sig *models.SecuritySignals, err error) {
	defer func() { metrics.ProviderCalls.WithLabelValues("security", providers.Outcome(err)).Inc() }()

	var url string
	if network.IsEVM() {
		address = strings.ToLower(address)
		url = fmt.Sprintf("%s/api/v1/token_security/%s?contract_addresses=%s", c.baseURL, chainIDs[network], address)
	} else {
		url = fmt.Sprintf("%s/api/v1/solana/token_security?contract_addresses=%s", c.baseURL, address)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("security request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("security status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading security response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("decoding security response: %w", err)
	}
	if apiResp.Code != 1 {
		c.logger.Debug("security api refused request", "code", apiResp.Code, "message", apiResp.Message)
		return nil, providers.ErrNotFound
	}

	data, ok := apiResp.Result[strings.ToLower(address)]
	if !ok {
		data, ok = apiResp.Result[address]
	}
	if !ok {
		return nil, providers.ErrNotFound
	}

	return normalize(data), nil
}

// normalize converts the provider's string payload into typed signals.
// Unparseable numeric fields fall back to their unknown sentinels.
func normalize(data tokenData) *models.SecuritySignals {
	buyTax, _ := strconv.ParseFloat(data.BuyTax, 64)
	sellTax, _ := strconv.ParseFloat(data.SellTax, 64)

	holderCount := -1
	if n, err := strconv.Atoi(data.HolderCount); err == nil {
		holderCount = n
	}

	lpSupply := -1.0
	if f, err := strconv.ParseFloat(data.LPTotalSupply, 64); err == nil {
		lpSupply = f
	}

	holders := make([]models.HolderEntry, 0, len(data.Holders))
	for _, h := range data.Holders {
		percent, _ := strconv.ParseFloat(h.Percent, 64)
		holders = append(holders, models.HolderEntry{
			Address: h.Address,
			Balance: h.Balance,
			Percent: percent,
			Tag:     h.Tag,
		})
	}

	owner := data.OwnerAddress
	renounced := owner == "" || owner == models.ZeroAddress

	return &models.SecuritySignals{
		Honeypot:            data.IsHoneypot == "1" || data.CannotBuy == "1",
		CannotSellAll:       data.CannotSellAll == "1",
		Mintable:            data.IsMintable == "1",
		Blacklistable:       data.IsBlacklisted == "1",
		Proxy:               data.IsProxy == "1",
		OwnershipRenounced:  renounced,
		CanReclaimOwnership: data.CanTakeBackOwnership == "1",
		BuyTax:              buyTax,
		SellTax:             sellTax,
		OwnerAddress:        owner,
		TokenName:           data.TokenName,
		TokenSymbol:         data.TokenSymbol,
		TotalSupply:         data.TotalSupply,
		HolderCount:         holderCount,
		LPTotalSupply:       lpSupply,
		Holders:             holders,
	}
}
