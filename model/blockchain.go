package model

// Previous hash of the genesis block. It is a placeholder, not a computed hash,
// because genesis has no predecessor.
const GENESIS_PREVIOUS_HASH = "1"

// Proof stored in the genesis block when the config doesn't provide one.
const DEFAULT_GENESIS_PROOF int64 = 100

type Block struct {
	// Position of this block in the chain, starting at 1 for genesis.
	Index int64 `json:"index"`
	// Seconds since epoch at the moment the block was sealed, with sub-second precision.
	Timestamp float64 `json:"timestamp"`
	// Transactions sealed in this block, in submission order.
	Transactions []Transaction `json:"transactions"`
	// Proof supplied by whoever sealed the block. Never interpreted by the ledger.
	Proof int64 `json:"proof"`
	// Content hash of the previous block in hex format, GENESIS_PREVIOUS_HASH for genesis.
	PreviousHash string `json:"previous_hash"`
}

// Copy returns a block that shares no mutable state with b.
func (b Block) Copy() Block {
	c := b
	c.Transactions = make([]Transaction, len(b.Transactions))
	copy(c.Transactions, b.Transactions)
	return c
}

type Blockchain struct {
	// Sealed blocks, Blocks[i].Index == i+1. Only ever appended to.
	Blocks []Block
}

// Create a new blockchain that holds only the genesis block.
func NewBlockChain(genesisProof int64, timestamp float64) Blockchain {
	genesisBlock := Block{
		Index:        1,
		Timestamp:    timestamp,
		Transactions: []Transaction{},
		Proof:        genesisProof,
		PreviousHash: GENESIS_PREVIOUS_HASH,
	}
	return Blockchain{
		Blocks: []Block{genesisBlock},
	}
}

// Tail returns the most recently appended block.
func (bc *Blockchain) Tail() (Block, error) {
	if len(bc.Blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	return bc.Blocks[len(bc.Blocks)-1], nil
}

// Height is the number of sealed blocks.
func (bc *Blockchain) Height() int64 {
	return int64(len(bc.Blocks))
}
