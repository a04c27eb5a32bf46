// Package scan sequences provider calls per network, reconciles their
// results into one token profile and produces the risk verdict.
package scan

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IykeSol/Token-safety-scanner/internal/address"
	"github.com/IykeSol/Token-safety-scanner/internal/chainstate"
	"github.com/IykeSol/Token-safety-scanner/internal/explorer"
	"github.com/IykeSol/Token-safety-scanner/internal/market"
	"github.com/IykeSol/Token-safety-scanner/internal/metrics"
	"github.com/IykeSol/Token-safety-scanner/internal/models"
	"github.com/IykeSol/Token-safety-scanner/internal/providers"
)

// ExplorerClient reads token metadata and source verification from a
// block explorer.
type ExplorerClient interface {
	TokenInfo(ctx context.Context, network models.Network, address string) (*explorer.TokenMetadata, error)
	Verification(ctx context.Context, network models.Network, address string) (*models.VerificationStatus, error)
}

// SecurityClient reads the heuristics record for a token.
type SecurityClient interface {
	Signals(ctx context.Context, network models.Network, address string) (*models.SecuritySignals, error)
}

// MarketClient reads DEX pairs sorted descending by liquidity.
type MarketClient interface {
	TopPairs(ctx context.Context, address string) ([]market.Pair, error)
}

// ChainStateClient reads a Solana mint account directly.
type ChainStateClient interface {
	MintAccount(ctx context.Context, mint string) (*chainstate.MintAccount, error)
}

type Scanner struct {
	explorer   ExplorerClient
	security   SecurityClient
	market     MarketClient
	chainState ChainStateClient
	logger     *slog.Logger
}

func NewScanner(exp ExplorerClient, sec SecurityClient, mkt MarketClient, chain ChainStateClient, logger *slog.Logger) *Scanner {
	return &Scanner{
		explorer:   exp,
		security:   sec,
		market:     mkt,
		chainState: chain,
		logger:     logger,
	}
}

// Scan validates the input, reconciles provider data and scores the
// token. Failures are *models.ScanError values; provider absence and
// transport breakage are degraded internally and never propagate raw.
func (s *Scanner) Scan(ctx context.Context, network models.Network, addr string) (*models.ScanResult, error) {
	start := time.Now()

	if !network.Valid() {
		return nil, scanErr(&models.ScanError{Kind: models.ErrInvalidNetwork, Message: "unsupported network " + string(network)})
	}
	if err := address.Validate(network, addr); err != nil {
		return nil, scanErr(&models.ScanError{Kind: models.ErrInvalidAddress, Message: err.Error()})
	}

	var (
		profile      *models.TokenProfile
		verification *models.VerificationStatus
		signals      *models.SecuritySignals
		err          error
	)
	if network.IsEVM() {
		profile, verification, signals, err = s.reconcileEVM(ctx, network, addr)
	} else {
		profile, signals = s.reconcileSolana(ctx, network, addr)
	}
	if err != nil {
		return nil, err
	}

	analysis := AnalyzeHolders(signals.Holders)
	assessment := Score(*signals, verification, analysis)

	metrics.ScanDuration.WithLabelValues(string(network)).Observe(time.Since(start).Seconds())
	s.logger.Info("scan complete",
		"network", network,
		"address", addr,
		"score", assessment.Score,
		"level", assessment.Level,
	)

	return assemble(network, addr, profile, verification, signals, analysis, assessment), nil
}

// reconcileEVM merges explorer metadata, explorer verification and the
// heuristics record in precedence order. Metadata and verification are
// independent and fetched concurrently; both settle before the security
// call, whose absence is terminal for EVM networks.
func (s *Scanner) reconcileEVM(ctx context.Context, network models.Network, addr string) (*models.TokenProfile, *models.VerificationStatus, *models.SecuritySignals, error) {
	profile := models.NewTokenProfile(network, addr)

	var (
		meta  *explorer.TokenMetadata
		verif *models.VerificationStatus
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.explorer.TokenInfo(gctx, network, addr)
		s.logProviderResult("explorer metadata", network, addr, err)
		meta = m
		return nil
	})
	g.Go(func() error {
		v, err := s.explorer.Verification(gctx, network, addr)
		s.logProviderResult("explorer verification", network, addr, err)
		verif = v
		return nil
	})
	_ = g.Wait()

	if meta != nil {
		profile.Name = meta.Name
		profile.Symbol = meta.Symbol
		if meta.Decimals >= 0 {
			profile.Decimals = meta.Decimals
		}
		if meta.TotalSupply != "" {
			profile.TotalSupply = meta.TotalSupply
		}
		profile.Verified = meta.Verified
	}

	// The dedicated verification lookup is authoritative and overwrites
	// the metadata flag. On explorer failure EVM verification defaults to
	// unverified, never absent.
	if verif == nil {
		verif = &models.VerificationStatus{Verified: false}
	}
	profile.Verified = verif.Verified

	signals, err := s.security.Signals(ctx, network, addr)
	if err != nil {
		s.logProviderResult("security", network, addr, err)
		return nil, nil, nil, scanErr(&models.ScanError{
			Kind:    models.ErrSecurityDataUnavailable,
			Message: "no security data for " + addr + " on " + string(network),
			Partial: profile,
		})
	}

	// Heuristics fill only fields still at their sentinel; explorer data
	// keeps precedence for everything it resolved.
	if profile.Name == models.Unknown && signals.TokenName != "" {
		profile.Name = signals.TokenName
	}
	if profile.Symbol == models.Unknown && signals.TokenSymbol != "" {
		profile.Symbol = signals.TokenSymbol
	}
	if owner := signals.OwnerAddress; owner != "" && owner != models.ZeroAddress {
		profile.OwnerAddress = owner
	}

	return profile, verif, signals, nil
}

// reconcileSolana tries the heuristics provider first; on a miss it
// synthesizes signals from the largest DEX pair and the mint account.
// There is no terminal failure on this path.
func (s *Scanner) reconcileSolana(ctx context.Context, network models.Network, addr string) (*models.TokenProfile, *models.SecuritySignals) {
	profile := models.NewTokenProfile(network, addr)

	signals, err := s.security.Signals(ctx, network, addr)
	if err == nil {
		if signals.TokenName != "" {
			profile.Name = signals.TokenName
		}
		if signals.TokenSymbol != "" {
			profile.Symbol = signals.TokenSymbol
		}
		if signals.TotalSupply != "" {
			profile.TotalSupply = signals.TotalSupply
		}
		if owner := signals.OwnerAddress; owner != "" && owner != models.ZeroAddress {
			profile.OwnerAddress = owner
		}
		return profile, signals
	}
	s.logProviderResult("security", network, addr, err)

	synth := &models.SecuritySignals{HolderCount: -1, LPTotalSupply: -1}

	var (
		topPair *market.Pair
		mint    *chainstate.MintAccount
		mintErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pairs, err := s.market.TopPairs(gctx, addr)
		s.logProviderResult("market", network, addr, err)
		if err == nil && len(pairs) > 0 {
			topPair = &pairs[0]
		}
		return nil
	})
	g.Go(func() error {
		mint, mintErr = s.chainState.MintAccount(gctx, addr)
		s.logProviderResult("chain-state", network, addr, mintErr)
		return nil
	})
	_ = g.Wait()

	if topPair != nil {
		profile.Name = topPair.BaseToken.Name
		profile.Symbol = topPair.BaseToken.Symbol
	}

	if mintErr != nil {
		// Could not read the mint; owner is neither renounced nor known.
		synth.OwnerAddress = models.OwnerUnknown
		profile.OwnerAddress = models.OwnerUnknown
	} else {
		profile.Decimals = mint.Decimals
		if mint.Supply != "" {
			profile.TotalSupply = mint.Supply
		}
		if mint.MintAuthority == nil {
			synth.OwnershipRenounced = true
		} else {
			synth.Mintable = true
			synth.OwnerAddress = *mint.MintAuthority
			profile.OwnerAddress = *mint.MintAuthority
		}
		// Freeze capability is the blacklist-equivalent signal.
		if mint.FreezeAuthority != nil {
			synth.Blacklistable = true
		}
	}

	return profile, synth
}

func scanErr(e *models.ScanError) *models.ScanError {
	metrics.ScanErrors.WithLabelValues(string(e.Kind)).Inc()
	return e
}

func (s *Scanner) logProviderResult(provider string, network models.Network, addr string, err error) {
	switch {
	case err == nil:
	case providers.IsNotFound(err):
		s.logger.Debug("provider has no record", "provider", provider, "network", network, "address", addr)
	default:
		s.logger.Warn("provider call failed", "provider", provider, "network", network, "address", addr, "error", err)
	}
}

func assemble(network models.Network, addr string, profile *models.TokenProfile, verification *models.VerificationStatus, signals *models.SecuritySignals, analysis models.HolderAnalysis, assessment models.RiskAssessment) *models.ScanResult {
	return &models.ScanResult{
		Network: network,
		Address: addr,
		TokenInfo: models.TokenInfo{
			Name:        profile.Name,
			Symbol:      profile.Symbol,
			Decimals:    profile.Decimals,
			TotalSupply: profile.TotalSupply,
			Verified:    profile.Verified,
		},
		Security: models.SecurityInfo{
			IsHoneypot:           signals.Honeypot,
			CanSell:              !signals.Honeypot && !signals.CannotSellAll,
			BuyTax:               signals.BuyTax * 100,
			SellTax:              signals.SellTax * 100,
			OwnerAddress:         profile.OwnerAddress,
			IsOwnershipRenounced: signals.OwnershipRenounced,
			IsMintable:           signals.Mintable,
			HasBlacklist:         signals.Blacklistable,
			IsProxy:              signals.Proxy,
			TotalSupply:          profile.TotalSupply,
			HolderCount:          signals.HolderCount,
			TopHolders:           signals.Holders,
		},
		HolderConcentration: analysis,
		Verification:        verification,
		RiskAssessment:      assessment,
		ExplorerURL:         network.ExplorerTokenURL(addr),
	}
}
