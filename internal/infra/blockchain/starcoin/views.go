package starcoin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/pkg/types"
	"github.com/gabapcia/starwatch/internal/transfer"

	"github.com/ccoveille/go-safecast"
)

var (
	// ErrMissingHead is returned when chain.info has no head header.
	ErrMissingHead = errors.New("chain info has no head")

	// ErrMissingHeader is returned for a block without a header.
	ErrMissingHeader = errors.New("block has no header")
)

type (
	blockHeaderView struct {
		BlockHash string       `json:"block_hash"`
		Number    types.Uint64 `json:"number"`
		Timestamp types.Uint64 `json:"timestamp"`
	}

	chainInfoView struct {
		Head *blockHeaderView `json:"head"`
	}

	scriptFunctionView struct {
		Module   string            `json:"module"`
		Function string            `json:"function"`
		Args     []json.RawMessage `json:"args"`
	}

	decodedPayloadView struct {
		ScriptFunction *scriptFunctionView `json:"ScriptFunction"`
	}

	rawUserTransactionView struct {
		Sender         string              `json:"sender"`
		Payload        string              `json:"payload"`
		DecodedPayload *decodedPayloadView `json:"decoded_payload"`
	}

	userTransactionView struct {
		TransactionHash string                 `json:"transaction_hash"`
		RawTxn          rawUserTransactionView `json:"raw_txn"`
	}

	// blockBodyView is the externally tagged body: exactly one of Hashes
	// and Full is set.
	blockBodyView struct {
		Hashes []string              `json:"Hashes"`
		Full   []userTransactionView `json:"Full"`
	}

	blockView struct {
		Header *blockHeaderView `json:"header"`
		Body   blockBodyView    `json:"body"`
	}

	transactionView struct {
		BlockHash       string               `json:"block_hash"`
		BlockNumber     types.Uint64         `json:"block_number"`
		TransactionHash string               `json:"transaction_hash"`
		UserTransaction *userTransactionView `json:"user_transaction"`
	}

	eventView struct {
		BlockHash       string       `json:"block_hash"`
		BlockNumber     types.Uint64 `json:"block_number"`
		TransactionHash string       `json:"transaction_hash"`
		TypeTag         string       `json:"type_tag"`
		Data            string       `json:"data"`
	}
)

func (t userTransactionView) toTransaction(height uint64) chainstream.Transaction {
	txn := chainstream.Transaction{
		Hash:        t.TransactionHash,
		BlockHeight: height,
		Sender:      t.RawTxn.Sender,
		RawPayload:  t.RawTxn.Payload,
	}

	if p := t.RawTxn.DecodedPayload; p != nil && p.ScriptFunction != nil {
		txn.Payload = &transfer.Invocation{
			Module:   p.ScriptFunction.Module,
			Function: p.ScriptFunction.Function,
			Args:     p.ScriptFunction.Args,
		}
	}

	return txn
}

func (b blockView) toBlock() (chainstream.Block, error) {
	if b.Header == nil {
		return chainstream.Block{}, ErrMissingHeader
	}

	height := uint64(b.Header.Number)

	millis, err := safecast.ToInt64(uint64(b.Header.Timestamp))
	if err != nil {
		return chainstream.Block{}, fmt.Errorf("invalid timestamp on block %d: %w", height, err)
	}

	block := chainstream.Block{
		Height:    height,
		Hash:      b.Header.BlockHash,
		Timestamp: time.UnixMilli(millis).UTC(),
		TxnHashes: b.Body.Hashes,
	}

	if len(b.Body.Full) > 0 {
		block.Transactions = make([]chainstream.Transaction, len(b.Body.Full))
		for i, t := range b.Body.Full {
			block.Transactions[i] = t.toTransaction(height)
		}
	}

	return block, nil
}

func (e eventView) toEvent() chainstream.Event {
	return chainstream.Event{
		BlockHeight: uint64(e.BlockNumber),
		BlockHash:   e.BlockHash,
		TxnHash:     e.TransactionHash,
		TypeTag:     e.TypeTag,
		Data:        e.Data,
	}
}

func decodeBlock(data json.RawMessage) (chainstream.Block, error) {
	var view blockView
	if err := json.Unmarshal(data, &view); err != nil {
		return chainstream.Block{}, err
	}

	return view.toBlock()
}

func decodeEvent(data json.RawMessage) (chainstream.Event, error) {
	var view eventView
	if err := json.Unmarshal(data, &view); err != nil {
		return chainstream.Event{}, err
	}

	return view.toEvent(), nil
}

func isNull(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
