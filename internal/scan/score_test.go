package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IykeSol/Token-safety-scanner/internal/models"
)

func cleanSignals() models.SecuritySignals {
	return models.SecuritySignals{HolderCount: -1, LPTotalSupply: -1}
}

func noHolderData() models.HolderAnalysis {
	return models.HolderAnalysis{Available: false, Risk: "unknown"}
}

func TestScore_CleanVerifiedToken(t *testing.T) {
	got := Score(cleanSignals(), &models.VerificationStatus{Verified: true}, noHolderData())

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, models.LevelSafe, got.Level)
	assert.Empty(t, got.Risks)
}

func TestScore_MintableWithOwnerVerified(t *testing.T) {
	signals := cleanSignals()
	signals.Mintable = true
	signals.OwnerAddress = "0xABC0000000000000000000000000000000000001"

	got := Score(signals, &models.VerificationStatus{Verified: true}, noHolderData())

	// 100 - 15 (mintable) - 10 (owner) + 5 (verified) = 80
	assert.Equal(t, 80, got.Score)
	assert.Equal(t, models.LevelSafe, got.Level)
	require.Len(t, got.Risks, 2)
	assert.Contains(t, got.Risks[0], "HIGH")
	assert.Contains(t, got.Risks[1], "MEDIUM")
}

func TestScore_HoneypotDominates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SecuritySignals)
	}{
		{"with mintable", func(s *models.SecuritySignals) { s.Mintable = true }},
		{"with blacklist", func(s *models.SecuritySignals) { s.Blacklistable = true }},
		{"with reclaimable ownership", func(s *models.SecuritySignals) { s.CanReclaimOwnership = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := cleanSignals()
			signals.Honeypot = true
			tt.mutate(&signals)

			got := Score(signals, &models.VerificationStatus{Verified: false}, noHolderData())

			assert.Equal(t, models.LevelDanger, got.Level)
			assert.Contains(t, got.Risks[0], "CRITICAL")
		})
	}
}

func TestScore_HoneypotDeductionsStackWithBonus(t *testing.T) {
	// The deductions are independent: a verified honeypot with an owner
	// lands at 100 - 40 - 10 + 5 = 55, a warning, not danger. The -40 is
	// not a hard cap on the level.
	signals := cleanSignals()
	signals.Honeypot = true
	signals.OwnerAddress = "0xABC0000000000000000000000000000000000001"

	got := Score(signals, &models.VerificationStatus{Verified: true}, noHolderData())

	assert.Equal(t, 55, got.Score)
	assert.Equal(t, models.LevelWarning, got.Level)

	// Honeypot alone on a verified contract: 100 - 40 + 5 = 65.
	alone := cleanSignals()
	alone.Honeypot = true
	got = Score(alone, &models.VerificationStatus{Verified: true}, noHolderData())
	assert.Equal(t, 65, got.Score)
}

func TestScore_ClampedAtZero(t *testing.T) {
	signals := models.SecuritySignals{
		Honeypot:            true,
		Mintable:            true,
		Blacklistable:       true,
		Proxy:               true,
		CanReclaimOwnership: true,
		BuyTax:              0.5,
		SellTax:             0.5,
		OwnerAddress:        "0xABC0000000000000000000000000000000000001",
		HolderCount:         12,
		LPTotalSupply:       0.1,
	}
	holders := models.HolderAnalysis{Available: true, Top10Percentage: 90, Risk: "high"}

	got := Score(signals, &models.VerificationStatus{Verified: false}, holders)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, models.LevelDanger, got.Level)
}

func TestScore_BonusClampedAtHundred(t *testing.T) {
	got := Score(cleanSignals(), &models.VerificationStatus{Verified: true}, noHolderData())
	assert.LessOrEqual(t, got.Score, 100)
}

func TestScore_LevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, models.LevelSafe},
		{80, models.LevelSafe},
		{79, models.LevelWarning},
		{50, models.LevelWarning},
		{49, models.LevelDanger},
		{0, models.LevelDanger},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.score), "score %d", tt.score)
	}
}

func TestScore_TaxThreshold(t *testing.T) {
	signals := cleanSignals()
	signals.BuyTax = 0.10
	got := Score(signals, nil, noHolderData())
	assert.Equal(t, 100, got.Score, "10%% tax is not over the threshold")

	signals.SellTax = 0.11
	got = Score(signals, nil, noHolderData())
	assert.Equal(t, 90, got.Score)
	assert.Contains(t, got.Risks[0], "tax")
}

func TestScore_OwnerUnknownReducedPenalty(t *testing.T) {
	known := cleanSignals()
	known.OwnerAddress = "8fjsAmqxAN6vXq4P8taeuj9Uta9aUWKkAnWvNNt1BuFM"
	unknown := cleanSignals()
	unknown.OwnerAddress = models.OwnerUnknown

	knownScore := Score(known, nil, noHolderData())
	unknownScore := Score(unknown, nil, noHolderData())

	assert.Equal(t, 90, knownScore.Score)
	assert.Equal(t, 95, unknownScore.Score)
	assert.Contains(t, unknownScore.Risks[0], "LOW")
}

func TestScore_ConcentrationPenalties(t *testing.T) {
	high := models.HolderAnalysis{Available: true, Top10Percentage: 72.5, Risk: "high"}
	medium := models.HolderAnalysis{Available: true, Top10Percentage: 30, Risk: "medium"}
	low := models.HolderAnalysis{Available: true, Top10Percentage: 5, Risk: "low"}

	assert.Equal(t, 75, Score(cleanSignals(), nil, high).Score)
	assert.Equal(t, 85, Score(cleanSignals(), nil, medium).Score)
	assert.Equal(t, 100, Score(cleanSignals(), nil, low).Score)
}

func TestScore_LowHolderCountAndEmptyLP(t *testing.T) {
	signals := cleanSignals()
	signals.HolderCount = 42
	signals.LPTotalSupply = 0.5

	got := Score(signals, nil, noHolderData())

	assert.Equal(t, 80, got.Score)
	require.Len(t, got.Risks, 2)
	assert.Contains(t, got.Risks[0], "holders")
	assert.Contains(t, got.Risks[1], "Liquidity")
}

func TestScore_FindingsKeepEvaluationOrder(t *testing.T) {
	signals := models.SecuritySignals{
		Honeypot:      true,
		Mintable:      true,
		Blacklistable: true,
		Proxy:         true,
		HolderCount:   -1,
		LPTotalSupply: -1,
	}

	got := Score(signals, &models.VerificationStatus{Verified: false}, noHolderData())

	require.Len(t, got.Risks, 5)
	prefixes := []string{"CRITICAL", "HIGH", "HIGH", "MEDIUM", "LOW"}
	for i, p := range prefixes {
		assert.True(t, strings.HasPrefix(got.Risks[i], p), "risk %d: %s", i, got.Risks[i])
	}
}

func TestScore_Deterministic(t *testing.T) {
	signals := cleanSignals()
	signals.Mintable = true
	holders := models.HolderAnalysis{Available: true, Top10Percentage: 30, Risk: "medium"}

	first := Score(signals, &models.VerificationStatus{Verified: true}, holders)
	second := Score(signals, &models.VerificationStatus{Verified: true}, holders)

	assert.Equal(t, first, second)
}
