// Package address validates token addresses per network family before
// any provider call is made.
package address

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/IykeSol/Token-safety-scanner/internal/models"
)

// Solana mint addresses are base58 without 0, O, I, l; a syntactic
// filter only, it does not prove the address resolves to a mint.
var base58Re = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// Validate checks that raw is a well-formed address for the network.
// No side effects, no network I/O.
func Validate(network models.Network, raw string) error {
	if network.IsEVM() {
		return validateEVM(raw)
	}
	return validateSolana(raw)
}

func validateEVM(raw string) error {
	// IsHexAddress tolerates a missing 0x prefix; the wire format here
	// does not.
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		return fmt.Errorf("missing 0x prefix: %q", raw)
	}
	if !common.IsHexAddress(raw) {
		return fmt.Errorf("not a 20-byte hex address: %q", raw)
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	// All-lower and all-upper forms carry no checksum; mixed case must
	// match the EIP-55 encoding exactly.
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return nil
	}
	if common.HexToAddress(raw).Hex() != raw {
		return fmt.Errorf("checksum mismatch: %q", raw)
	}
	return nil
}

func validateSolana(raw string) error {
	if !base58Re.MatchString(raw) {
		return fmt.Errorf("not a base58 mint address: %q", raw)
	}
	return nil
}
