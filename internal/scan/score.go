package scan

import (
	"fmt"

	"github.com/IykeSol/Token-safety-scanner/internal/models"
)

// Tax above this fraction is penalized.
const maxAcceptableTax = 0.10

// Score turns the reconciled signals into a 0-100 risk assessment.
// Deterministic, no I/O: the same three inputs always produce the same
// output. Deductions stack independently and may drive the running total
// below zero before the final clamp. The findings list keeps evaluation
// order.
func Score(signals models.SecuritySignals, verification *models.VerificationStatus, holders models.HolderAnalysis) models.RiskAssessment {
	score := 100
	var risks []string

	if signals.Honeypot {
		score -= 40
		risks = append(risks, "CRITICAL: Honeypot detected - token cannot be sold")
	}

	if signals.Mintable {
		score -= 15
		risks = append(risks, "HIGH: Token supply can be increased by the issuer")
	}

	switch {
	case signals.OwnerAddress == models.OwnerUnknown:
		// Chain state could not be read; reduced penalty rather than none.
		score -= 5
		risks = append(risks, "LOW: Owner status could not be determined")
	case signals.OwnerAddress != "" && signals.OwnerAddress != models.ZeroAddress:
		score -= 10
		risks = append(risks, "MEDIUM: Contract ownership has not been renounced")
	}

	if signals.CanReclaimOwnership {
		score -= 15
		risks = append(risks, "HIGH: Ownership can be reclaimed by the previous owner")
	}

	if signals.Blacklistable {
		score -= 20
		risks = append(risks, "HIGH: Issuer can block holders from transferring tokens")
	}

	if signals.BuyTax > maxAcceptableTax || signals.SellTax > maxAcceptableTax {
		score -= 10
		risks = append(risks, fmt.Sprintf("MEDIUM: High trading tax (buy %.1f%%, sell %.1f%%)",
			signals.BuyTax*100, signals.SellTax*100))
	}

	if signals.Proxy {
		score -= 10
		risks = append(risks, "MEDIUM: Upgradeable proxy contract - code can change")
	}

	switch holders.Risk {
	case "high":
		score -= 25
		risks = append(risks, fmt.Sprintf("HIGH: Top 10 holders control %.2f%% of supply", holders.Top10Percentage))
	case "medium":
		score -= 15
		risks = append(risks, fmt.Sprintf("MEDIUM: Top 10 holders control %.2f%% of supply", holders.Top10Percentage))
	}

	if verification != nil {
		if verification.Verified {
			score += 5
			if score > 100 {
				score = 100
			}
		} else {
			score -= 5
			risks = append(risks, "LOW: Contract source code is not verified")
		}
	}

	if signals.HolderCount >= 0 && signals.HolderCount < 100 {
		score -= 5
		risks = append(risks, fmt.Sprintf("LOW: Very few holders (%d)", signals.HolderCount))
	}

	if signals.LPTotalSupply >= 0 && signals.LPTotalSupply < 1 {
		score -= 15
		risks = append(risks, "HIGH: Liquidity pool is nearly empty")
	}

	if score < 0 {
		score = 0
	}

	return models.RiskAssessment{
		Score: score,
		Level: levelFor(score),
		Risks: risks,
	}
}

func levelFor(score int) string {
	switch {
	case score >= 80:
		return models.LevelSafe
	case score >= 50:
		return models.LevelWarning
	default:
		return models.LevelDanger
	}
}
