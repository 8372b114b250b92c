package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/Luismorlan/ledger_in_go/model"
)

// canonicalObject is a JSON object whose members are always written in sorted key
// order, whatever order they were added in. Values are stored already encoded.
type canonicalObject map[string][]byte

func (o canonicalObject) encode() []byte {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(k))
		buf.WriteByte(':')
		buf.Write(o[k])
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func encodeString(s string) []byte {
	// Marshalling a plain string never fails.
	b, _ := json.Marshal(s)
	return b
}

func encodeArray(items [][]byte) []byte {
	buf := bytes.Buffer{}
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(item)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// GetTransactionBytes returns the canonical encoding of a transaction:
// {"amount":<decimal>,"recipient":<string>,"sender":<string>}
func GetTransactionBytes(tx *model.Transaction) []byte {
	return canonicalObject{
		"sender":    encodeString(tx.Sender),
		"recipient": encodeString(tx.Recipient),
		"amount":    []byte(tx.Amount.String()),
	}.encode()
}

// GetBlockBytes returns the canonical encoding of a block, the bytes its content hash
// is computed over. Keys are sorted: index, previous_hash, proof, timestamp,
// transactions. Two blocks with the same field values always encode identically.
func GetBlockBytes(block *model.Block) []byte {
	txs := make([][]byte, 0, len(block.Transactions))
	for i := 0; i < len(block.Transactions); i++ {
		txs = append(txs, GetTransactionBytes(&block.Transactions[i]))
	}
	return canonicalObject{
		"index":         []byte(strconv.FormatInt(block.Index, 10)),
		"timestamp":     []byte(strconv.FormatFloat(block.Timestamp, 'f', -1, 64)),
		"transactions":  encodeArray(txs),
		"proof":         []byte(strconv.FormatInt(block.Proof, 10)),
		"previous_hash": encodeString(block.PreviousHash),
	}.encode()
}

// ContentHash digests the canonical encoding of the block and renders it as lowercase hex.
func ContentHash(block *model.Block, hash HashFunc) string {
	return BytesToHex(hash(GetBlockBytes(block)))
}

// VerifyChain checks that blocks form a valid chain: genesis carries the sentinel
// previous hash, indices are contiguous from 1 and every other block points at the
// content hash of its predecessor.
func VerifyChain(blocks []model.Block, hash HashFunc) error {
	if len(blocks) == 0 {
		return model.ErrEmptyChain
	}

	genesis := blocks[0]
	if genesis.Index != 1 {
		return fmt.Errorf("invalid genesis index: expected 1, got %d", genesis.Index)
	}
	if genesis.PreviousHash != model.GENESIS_PREVIOUS_HASH {
		return fmt.Errorf("invalid genesis previous hash: %s", genesis.PreviousHash)
	}

	for i := 1; i < len(blocks); i++ {
		current := &blocks[i]
		previous := &blocks[i-1]
		if current.Index != previous.Index+1 {
			return fmt.Errorf("block %d invalid: expected index %d, got %d", i+1, previous.Index+1, current.Index)
		}
		expected := ContentHash(previous, hash)
		if current.PreviousHash != expected {
			return fmt.Errorf("block %d invalid: expected previous hash %s, got %s", current.Index, expected, current.PreviousHash)
		}
	}
	return nil
}
