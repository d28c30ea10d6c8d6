package types

import "cosmossdk.io/errors"

var (
	// ErrInvalidRequest is returned for malformed or economically nonsensical inputs.
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")
	// ErrZeroShareSupply is returned when a shares-to-tokens conversion is
	// attempted while no shares exist.
	ErrZeroShareSupply = errors.Register(ModuleName, 3, "share supply is zero")
	// ErrInsufficientShares is returned when a holder tries to burn more
	// shares than they hold.
	ErrInsufficientShares = errors.Register(ModuleName, 4, "insufficient shares")
	// ErrReserveOverflow is returned when the accrued reserve no longer fits
	// its 128-bit representation.
	ErrReserveOverflow = errors.Register(ModuleName, 5, "pending reserve overflows uint128")
	// ErrUnauthorized is returned when a privileged operation is attempted by
	// an account other than the authority.
	ErrUnauthorized = errors.Register(ModuleName, 6, "unauthorized")
	// ErrDenomMismatch is returned when a coin denom does not match the
	// wrapper's configured underlying asset.
	ErrDenomMismatch = errors.Register(ModuleName, 7, "denom mismatch")
)
