package scan

import (
	"fmt"
	"math"

	"github.com/IykeSol/Token-safety-scanner/internal/models"
)

// Concentration bands, shared with the scorer's deductions.
const (
	concentrationHigh   = 50.0
	concentrationMedium = 15.0
)

// AnalyzeHolders computes top-10 concentration from a ranked holder list.
// Pure function; the input order (descending by balance) is preserved and
// only the first 10 entries are considered.
func AnalyzeHolders(holders []models.HolderEntry) models.HolderAnalysis {
	if len(holders) == 0 {
		return models.HolderAnalysis{
			Available: false,
			Risk:      "unknown",
			Message:   "Holder data not available for this token",
		}
	}

	top := holders
	if len(top) > 10 {
		top = top[:10]
	}

	var sum float64
	for _, h := range top {
		sum += h.Percent
	}

	// Sources disagree on scale: a sum below 1 means the percents were
	// reported as fractions (0.18 = 18%). Kept as-is for parity with the
	// provider's historical output.
	if sum < 1 {
		sum *= 100
	}

	var risk, message string
	switch {
	case sum > concentrationHigh:
		risk = "high"
		message = fmt.Sprintf("High concentration: top 10 holders control %.2f%% of supply", sum)
	case sum > concentrationMedium:
		risk = "medium"
		message = fmt.Sprintf("Moderate concentration: top 10 holders control %.2f%% of supply", sum)
	default:
		risk = "low"
		message = fmt.Sprintf("Healthy distribution: top 10 holders control %.2f%% of supply", sum)
	}

	// Per-holder display values are rescaled unconditionally, independent
	// of the aggregate-sum heuristic above.
	display := make([]models.HolderEntry, len(top))
	for i, h := range top {
		h.Percent = math.Round(h.Percent*100*10000) / 10000
		display[i] = h
	}

	return models.HolderAnalysis{
		Available:       true,
		Top10Percentage: sum,
		Risk:            risk,
		Message:         message,
		Top10Holders:    display,
	}
}
