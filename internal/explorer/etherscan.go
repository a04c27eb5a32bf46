// Package explorer implements the Etherscan v2 multi-chain client used
// for token metadata and contract source verification.
package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
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
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// TokenMetadata is the explorer's view of a token.
type TokenMetadata struct {
	Name        string
	Symbol      string
	Decimals    int
	TotalSupply string
	// BlueCheckmark is the explorer's own (provisional) verification flag.
	Verified bool
}

type tokenInfoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  []struct {
		ContractAddress string `json:"contractAddress"`
		TokenName       string `json:"tokenName"`
		Symbol          string `json:"symbol"`
		Divisor         string `json:"divisor"`
		TotalSupply     string `json:"totalSupply"`
		BlueCheckmark   string `json:"blueCheckmark"`
	} `json:"result"`
}

type sourceCodeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  []struct {
		SourceCode      string `json:"SourceCode"`
		ABI             string `json:"ABI"`
		ContractName    string `json:"ContractName"`
		CompilerVersion string `json:"CompilerVersion"`
		LicenseType     string `json:"LicenseType"`
		Proxy           string `json:"Proxy"`
	} `json:"result"`
}

// apiErrorResponse is used when the API returns an error (result is a string).
type apiErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func New(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://api.etherscan.io/v2/api",
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// TokenInfo fetches token metadata. Returns providers.ErrNotFound when
// the explorer has no record for the address.
func (c *Client) TokenInfo(ctx context.Context, network models.Network, address string) (meta *TokenMetadata, err error) {
	defer func() { metrics.ProviderCalls.WithLabelValues("explorer_tokeninfo", providers.Outcome(err)).Inc() }()

	url := fmt.Sprintf("%s?chainid=%s&module=token&action=tokeninfo&contractaddress=%s&apikey=%s",
		c.baseURL, chainIDs[network], address, c.apiKey)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var result tokenInfoResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding tokeninfo response: %w", err)
	}
	if result.Status != "1" || len(result.Result) == 0 {
		return nil, providers.ErrNotFound
	}

	info := result.Result[0]
	decimals := -1
	if d, err := strconv.Atoi(info.Divisor); err == nil {
		decimals = d
	}
	return &TokenMetadata{
		Name:        info.TokenName,
		Symbol:      info.Symbol,
		Decimals:    decimals,
		TotalSupply: info.TotalSupply,
		Verified:    info.BlueCheckmark == "yes",
	}, nil
}

// Verification fetches the authoritative source-verification status via
// getsourcecode. An unverified contract is a found result with
// Verified=false, not an absence.
func (c *Client) Verification(ctx context.Context, network models.Network, address string) (vs *models.VerificationStatus, err error) {
	defer func() { metrics.ProviderCalls.WithLabelValues("explorer_verification", providers.Outcome(err)).Inc() }()

	url := fmt.Sprintf("%s?chainid=%s&module=contract&action=getsourcecode&address=%s&apikey=%s",
		c.baseURL, chainIDs[network], address, c.apiKey)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var result sourceCodeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding getsourcecode response: %w", err)
	}
	if result.Status != "1" || len(result.Result) == 0 {
		return nil, providers.ErrNotFound
	}

	src := result.Result[0]
	verified := src.SourceCode != "" && src.ABI != "" && src.ABI != "Contract source code not verified"
	return &models.VerificationStatus{
		Verified:        verified,
		ContractName:    src.ContractName,
		CompilerVersion: src.CompilerVersion,
		License:         src.LicenseType,
	}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("explorer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading explorer response: %w", err)
	}

	// The API reports errors with a string result payload.
	var errResp apiErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Status == "0" && errResp.Result != "" {
		c.logger.Debug("explorer api error", "message", errResp.Message, "result", errResp.Result)
		return nil, providers.ErrNotFound
	}

	return body, nil
}
