package models

import "fmt"

// TokenInfo is the token block of a scan result.
type TokenInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int    `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
	Verified    bool   `json:"verified"`
}

// SecurityInfo is the security block of a scan result. Taxes are on a
// 0-100 percent scale here, regardless of how the provider reported them.
type SecurityInfo struct {
	IsHoneypot           bool          `json:"isHoneypot"`
	CanSell              bool          `json:"canSell"`
	BuyTax               float64       `json:"buyTax"`
	SellTax              float64       `json:"sellTax"`
	OwnerAddress         string        `json:"ownerAddress,omitempty"`
	IsOwnershipRenounced bool          `json:"isOwnershipRenounced"`
	IsMintable           bool          `json:"isMintable"`
	HasBlacklist         bool          `json:"hasBlacklist"`
	IsProxy              bool          `json:"isProxy"`
	TotalSupply          string        `json:"totalSupply"`
	HolderCount          int           `json:"holderCount"`
	TopHolders           []HolderEntry `json:"topHolders,omitempty"`
}

// ScanResult is the full verdict for one token, in the shape the
// presentation layer consumes.
type ScanResult struct {
	Network             Network             `json:"network"`
	Address             string              `json:"address"`
	TokenInfo           TokenInfo           `json:"tokenInfo"`
	Security            SecurityInfo        `json:"security"`
	HolderConcentration HolderAnalysis      `json:"holderConcentration"`
	Verification        *VerificationStatus `json:"verification,omitempty"`
	RiskAssessment      RiskAssessment      `json:"riskAssessment"`
	ExplorerURL         string              `json:"explorerUrl"`
}

// ErrorKind classifies scan failures surfaced to the caller.
type ErrorKind string

const (
	ErrInvalidNetwork          ErrorKind = "invalid_network"
	ErrInvalidAddress          ErrorKind = "invalid_address"
	ErrSecurityDataUnavailable ErrorKind = "security_data_unavailable"
	ErrInternalFailure         ErrorKind = "internal_failure"
)

// ScanError is a scan failure. Partial carries whatever profile was
// assembled before the failure, so the caller can still show the token's
// name when no verdict could be computed.
type ScanError struct {
	Kind    ErrorKind
	Message string
	Partial *TokenProfile
	Err     error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ScanError) Unwrap() error { return e.Err }
