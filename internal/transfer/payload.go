// Package transfer recognizes value transfers in decoded transaction
// payloads and ledger events, and decodes the u128 amounts they carry.
//
// Decoding is total: malformed input yields OperationUnsupported or an
// explicit error, never a partially correct amount.
package transfer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// TransferScriptsModule is the framework module holding the peer to peer transfer scripts.
	TransferScriptsModule = "0x00000000000000000000000000000001::TransferScripts"

	// WithdrawEventTypeTag identifies the event emitted when an account is debited.
	WithdrawEventTypeTag = "0x00000000000000000000000000000001::Account::WithdrawEvent"
)

// Operation is the kind of transfer a payload was recognized as.
type Operation int

const (
	OperationUnsupported Operation = iota
	OperationPeerToPeer
	OperationPeerToPeerV2
	OperationWithdraw
)

func (o Operation) String() string {
	switch o {
	case OperationPeerToPeer:
		return "peer_to_peer"
	case OperationPeerToPeerV2:
		return "peer_to_peer_v2"
	case OperationWithdraw:
		return "withdraw"
	default:
		return "unsupported"
	}
}

// Invocation is a decoded script function call.
type Invocation struct {
	Module   string
	Function string
	Args     []json.RawMessage
}

// Decoded is the outcome of inspecting a payload. Amount is nil unless
// Operation is supported.
type Decoded struct {
	Operation Operation
	Amount    *uint256.Int
}

// Supported reports whether a transfer amount was extracted.
func (d Decoded) Supported() bool {
	return d.Operation != OperationUnsupported && d.Amount != nil
}

var unsupported = Decoded{Operation: OperationUnsupported}

type transferScript struct {
	operation Operation
	amountArg int
}

var transferScripts = map[string]transferScript{
	"peer_to_peer":    {operation: OperationPeerToPeer, amountArg: 2},
	"peer_to_peer_v2": {operation: OperationPeerToPeerV2, amountArg: 1},
}

// Decode extracts the amount of a recognized transfer script call.
func Decode(inv Invocation) Decoded {
	if inv.Module != TransferScriptsModule {
		return unsupported
	}

	script, ok := transferScripts[inv.Function]
	if !ok || script.amountArg >= len(inv.Args) {
		return unsupported
	}

	amount, ok := parseAmountArg(inv.Args[script.amountArg])
	if !ok {
		return unsupported
	}

	return Decoded{
		Operation: script.operation,
		Amount:    amount,
	}
}

// parseAmountArg accepts a JSON number or a decimal string and rejects
// anything that does not fit in 128 bits.
func parseAmountArg(raw json.RawMessage) (*uint256.Int, bool) {
	s := string(bytes.TrimSpace(raw))
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil, false
	}

	amount, err := uint256.FromDecimal(s)
	if err != nil || amount.BitLen() > AmountSize*8 {
		return nil, false
	}

	return amount, true
}

// DecodeWithdrawEvent extracts the amount of a WithdrawEvent. The first
// AmountSize bytes of its BCS data are the little-endian amount.
func DecodeWithdrawEvent(typeTag, dataHex string) Decoded {
	if typeTag != WithdrawEventTypeTag {
		return unsupported
	}

	data, err := hexBytes(dataHex)
	if err != nil || len(data) < AmountSize {
		return unsupported
	}

	amount, err := DecodeLittleEndian(data[:AmountSize])
	if err != nil {
		return unsupported
	}

	return Decoded{
		Operation: OperationWithdraw,
		Amount:    amount,
	}
}
