package models

import "fmt"

// Network identifies a supported blockchain.
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkBSC      Network = "bsc"
	NetworkPolygon  Network = "polygon"
	NetworkSolana   Network = "solana"
)

// ParseNetwork maps a request-supplied network key to a Network.
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case NetworkEthereum, NetworkBSC, NetworkPolygon, NetworkSolana:
		return Network(s), nil
	}
	return "", fmt.Errorf("unsupported network %q", s)
}

// Valid reports whether n is one of the supported networks.
func (n Network) Valid() bool {
	switch n {
	case NetworkEthereum, NetworkBSC, NetworkPolygon, NetworkSolana:
		return true
	}
	return false
}

// IsEVM reports whether n uses EVM address and provider semantics.
func (n Network) IsEVM() bool {
	return n == NetworkEthereum || n == NetworkBSC || n == NetworkPolygon
}

// DefaultDecimals is the native token-decimal default applied until a
// provider reports the real value.
func (n Network) DefaultDecimals() int {
	if n == NetworkSolana {
		return 9
	}
	return 18
}

var explorerTokenURLs = map[Network]string{
	NetworkEthereum: "https://etherscan.io/token/%s",
	NetworkBSC:      "https://bscscan.com/token/%s",
	NetworkPolygon:  "https://polygonscan.com/token/%s",
	NetworkSolana:   "https://solscan.io/token/%s",
}

// ExplorerTokenURL builds the block-explorer deep link for a token address.
func (n Network) ExplorerTokenURL(address string) string {
	tmpl, ok := explorerTokenURLs[n]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tmpl, address)
}
