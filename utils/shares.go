package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// Conversion math between tokens (underlying asset units) and shares
// (internal claim units).
//
// Both directions use integer floor division, which systematically rounds in
// favor of the pool and against the party performing the conversion. The
// canonical share price is (sourceBalance - pendingReserve) / totalShares;
// callers pass totalTokens already net of the pending reserve.

// CalculateSharesFromTokens returns the number of shares corresponding to a
// given amount of deposited tokens.
//
// Formula (integer, floor):
//
//	if totalTokens == 0 or totalShares == 0:
//	    shares = tokens            (1:1 bootstrap rate)
//	else:
//	    shares = floor( tokens * totalShares / totalTokens )
//
// The bootstrap branch covers both the empty wrapper and the state where the
// source reports a balance with no shares outstanding. Error if any input is
// negative.
func CalculateSharesFromTokens(tokens, totalTokens, totalShares math.Int) (math.Int, error) {
	if tokens.IsNegative() || totalTokens.IsNegative() || totalShares.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}

	if totalTokens.IsZero() || totalShares.IsZero() {
		return tokens, nil
	}

	return tokens.Mul(totalShares).Quo(totalTokens), nil
}

// CalculateTokensFromShares returns the amount of tokens corresponding to a
// given number of shares.
//
// Formula (integer, floor):
//
//	tokens = floor( shares * totalTokens / totalShares )
//
// Unlike the tokens-to-shares direction there is no bootstrap branch: a
// conversion against a zero share supply has no defined price and returns an
// error. Callers that can legitimately observe zero supply must short-circuit
// before calling. Error if any input is negative.
func CalculateTokensFromShares(shares, totalShares, totalTokens math.Int) (math.Int, error) {
	if shares.IsNegative() || totalShares.IsNegative() || totalTokens.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}

	if totalShares.IsZero() {
		return math.Int{}, fmt.Errorf("cannot price shares against a zero share supply")
	}

	return shares.Mul(totalTokens).Quo(totalShares), nil
}
