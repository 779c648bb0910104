package transfer

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits of one STC (1 STC = 10^9 nanoSTC).
const Decimals = 9

// ToDecimal converts an amount in nanoSTC to STC.
func ToDecimal(amount *uint256.Int) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(amount.ToBig(), -Decimals)
}

// FormatUnits renders an amount in nanoSTC as STC with all nine decimals,
// e.g. 1500000000 becomes "1.500000000".
func FormatUnits(amount *uint256.Int) string {
	return ToDecimal(amount).StringFixed(Decimals)
}
