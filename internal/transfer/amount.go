package transfer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/holiman/uint256"
)

// AmountSize is the byte width of an on-chain u128 amount.
const AmountSize = 16

var (
	// ErrInvalidHex indicates the amount string is not valid hexadecimal.
	ErrInvalidHex = errors.New("invalid hex amount")

	// ErrAmountTooLarge indicates the encoded amount has more than AmountSize bytes.
	ErrAmountTooLarge = errors.New("amount exceeds 128 bits")
)

// DecodeHexAmount parses a hex string, with or without a 0x prefix, holding
// a little-endian u128. Inputs shorter than AmountSize bytes are zero
// padded on the high-order end.
func DecodeHexAmount(s string) (*uint256.Int, error) {
	data, err := hexBytes(s)
	if err != nil {
		return nil, err
	}

	return DecodeLittleEndian(data)
}

func hexBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	return data, nil
}

// DecodeLittleEndian interprets data as a little-endian unsigned integer of
// at most AmountSize bytes.
func DecodeLittleEndian(data []byte) (*uint256.Int, error) {
	if len(data) > AmountSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrAmountTooLarge, len(data))
	}

	be := slices.Clone(data)
	slices.Reverse(be)

	return new(uint256.Int).SetBytes(be), nil
}
