package model

import "errors"

var (
	// The chain has no block at all. Construction always adds genesis, so this only
	// happens when something outside the ledger emptied the chain.
	ErrEmptyChain = errors.New("blockchain is empty")
	// Raw input could not be turned into a transaction, e.g. a non-numeric amount.
	ErrInvalidTransactionShape = errors.New("invalid transaction shape")
)
