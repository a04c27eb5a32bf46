// Package models defines the canonical token description and scan result
// types shared by the provider clients, the reconciliation engine and the
// scoring engine.
package models

// Sentinel values for fields no provider has resolved yet.
const (
	Unknown     = "Unknown"
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// OwnerUnknown marks an owner that could not be determined because the
	// chain-state lookup failed. Distinct from "" (renounced / no owner)
	// and from a real authority address.
	OwnerUnknown = "unknown"
)

// TokenProfile is the reconciled description of a token. It starts at
// sentinel values and is overwritten field-by-field as higher-precedence
// sources resolve. Only the reconciliation engine mutates it.
type TokenProfile struct {
	Network      Network `json:"network"`
	Address      string  `json:"address"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Decimals     int     `json:"decimals"`
	TotalSupply  string  `json:"totalSupply"`
	Verified     bool    `json:"verified"`
	OwnerAddress string  `json:"ownerAddress,omitempty"`
}

// NewTokenProfile returns a profile at its sentinel state for the network.
func NewTokenProfile(network Network, address string) *TokenProfile {
	return &TokenProfile{
		Network:     network,
		Address:     address,
		Name:        Unknown,
		Symbol:      Unknown,
		Decimals:    network.DefaultDecimals(),
		TotalSupply: "0",
	}
}

// HasOwner reports whether the profile carries a real (non-sentinel)
// owner address.
func (p *TokenProfile) HasOwner() bool {
	return p.OwnerAddress != "" && p.OwnerAddress != ZeroAddress && p.OwnerAddress != OwnerUnknown
}

// HolderEntry is one ranked token holder. Percent is the fraction of
// supply as reported by the source; rank order is caller-supplied.
type HolderEntry struct {
	Address string  `json:"address"`
	Balance string  `json:"balance"`
	Percent float64 `json:"percent"`
	Tag     string  `json:"tag,omitempty"`
}

// SecuritySignals is the normalized signal set from the security
// heuristics provider, or synthesized from chain state on the fallback
// path. Immutable after construction; only the scorer consumes it.
type SecuritySignals struct {
	Honeypot            bool
	CannotSellAll       bool
	Mintable            bool
	Blacklistable       bool
	Proxy               bool
	OwnershipRenounced  bool
	CanReclaimOwnership bool
	BuyTax              float64 // fraction, 0.05 = 5%
	SellTax             float64 // fraction
	OwnerAddress        string
	TokenName           string
	TokenSymbol         string
	TotalSupply         string
	HolderCount         int     // -1 when the provider did not report it
	LPTotalSupply       float64 // -1 when the provider did not report it
	Holders             []HolderEntry
}

// HolderAnalysis is the derived top-10 concentration verdict.
// Top10Percentage is always on a 0-100 scale.
type HolderAnalysis struct {
	Available       bool          `json:"available"`
	Top10Percentage float64       `json:"top10Percentage"`
	Risk            string        `json:"risk"` // low, medium, high, unknown
	Message         string        `json:"message"`
	Top10Holders    []HolderEntry `json:"top10Holders,omitempty"`
}

// VerificationStatus is the explorer's source-verification verdict.
// Only meaningful on EVM networks; absent on solana.
type VerificationStatus struct {
	Verified        bool   `json:"verified"`
	ContractName    string `json:"contractName,omitempty"`
	CompilerVersion string `json:"compilerVersion,omitempty"`
	License         string `json:"license,omitempty"`
}

// Risk levels derived from the final score.
const (
	LevelSafe    = "safe"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// RiskAssessment is the scoring verdict. Risks keep the order the
// conditions were evaluated in, not severity order.
type RiskAssessment struct {
	Score int      `json:"score"`
	Level string   `json:"level"`
	Risks []string `json:"risks"`
}
