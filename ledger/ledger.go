package ledger

import (
	"math"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/network"
	"github.com/Luismorlan/ledger_in_go/utils"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

// A ledger maintains the chain of sealed blocks and the pool of transactions waiting
// for the next block.
type Ledger struct {
	// The blockchain it needs to maintain. Never empty after construction.
	blockchain *model.Blockchain
	// Transaction pool it needs to maintain. Incoming transactions are appended to this pool.
	txPool *model.TransactionPool
	// Ledger config.
	config config.AppConfig
	// Digest used for block content hashes.
	hash utils.HashFunc
	// Where sealed blocks are announced. Delivery is best effort.
	network network.Network
	// A single mutex for changing internal state. Enqueue and seal take the write lock.
	m sync.RWMutex
	// Wall clock. Replaced in tests.
	now func() time.Time
	// A unique identifier of this ledger, only used for logs and rendering.
	uuid string
}

// Create a brand new ledger, which contains a genesis block in the chain. Sealed blocks
// are announced on n, which may be nil.
func NewLedger(c config.AppConfig, n network.Network) (*Ledger, error) {
	hash, err := utils.GetHashFunc(c.HASH_ALGORITHM)
	if err != nil {
		return nil, err
	}
	return newLedgerWithClock(c, n, hash, time.Now), nil
}

func newLedgerWithClock(c config.AppConfig, n network.Network, hash utils.HashFunc, now func() time.Time) *Ledger {
	bc := model.NewBlockChain(c.GENESIS_PROOF, toSeconds(now()))
	pool := model.NewTransactionPool()
	return &Ledger{
		blockchain: &bc,
		txPool:     &pool,
		config:     c,
		hash:       hash,
		network:    n,
		m:          sync.RWMutex{},
		now:        now,
		uuid:       uuid.NewV4().String(),
	}
}

func toSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func (l *Ledger) ID() string {
	return l.uuid
}

// EnqueueTransaction appends a transaction to the pending pool and returns the index
// of the block that will contain it if the next seal happens after this call.
func (l *Ledger) EnqueueTransaction(sender string, recipient string, amount decimal.Decimal) (int64, error) {
	l.m.Lock()
	defer l.m.Unlock()

	tail, err := l.blockchain.Tail()
	if err != nil {
		return 0, err
	}
	l.txPool.Add(model.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	return tail.Index + 1, nil
}

// SubmitTransaction is EnqueueTransaction for raw input. A malformed amount is an
// ErrInvalidTransactionShape and leaves the pool untouched.
func (l *Ledger) SubmitTransaction(sender string, recipient string, rawAmount string) (int64, error) {
	tx, err := utils.CreateTransaction(sender, recipient, rawAmount)
	if err != nil {
		return 0, err
	}
	return l.EnqueueTransaction(tx.Sender, tx.Recipient, tx.Amount)
}

// SealBlock creates a new block holding every pending transaction, appends it to the
// chain and empties the pool. The proof is stored as given. previousHash overrides the
// link to the tail when non empty, otherwise the tail's content hash is used.
func (l *Ledger) SealBlock(proof int64, previousHash string) (model.Block, error) {
	l.m.Lock()
	tail, err := l.blockchain.Tail()
	if err != nil {
		l.m.Unlock()
		return model.Block{}, err
	}

	if previousHash == "" {
		previousHash = utils.ContentHash(&tail, l.hash)
	}
	timestamp := toSeconds(l.now())
	if l.config.MONOTONIC_TIMESTAMPS {
		timestamp = math.Max(timestamp, tail.Timestamp)
	}

	block := model.Block{
		Index:        l.blockchain.Height() + 1,
		Timestamp:    timestamp,
		Transactions: l.txPool.Drain(),
		Proof:        proof,
		PreviousHash: previousHash,
	}
	l.blockchain.Blocks = append(l.blockchain.Blocks, block)
	l.m.Unlock()

	// Announce outside the lock, a slow listener must not hold up the ledger.
	if l.network != nil {
		l.network.Broadcast(block.Copy())
	}
	return block.Copy(), nil
}

// LastBlock returns the most recently sealed block.
func (l *Ledger) LastBlock() (model.Block, error) {
	l.m.RLock()
	defer l.m.RUnlock()
	tail, err := l.blockchain.Tail()
	if err != nil {
		return model.Block{}, err
	}
	return tail.Copy(), nil
}

// ContentHash returns the hex digest of the block's canonical encoding.
func (l *Ledger) ContentHash(b model.Block) string {
	return utils.ContentHash(&b, l.hash)
}

// Return a copy of every sealed block, genesis first.
func (l *Ledger) Chain() []model.Block {
	l.m.RLock()
	defer l.m.RUnlock()
	blocks := make([]model.Block, 0, len(l.blockchain.Blocks))
	for i := 0; i < len(l.blockchain.Blocks); i++ {
		blocks = append(blocks, l.blockchain.Blocks[i].Copy())
	}
	return blocks
}

// Return the number of sealed blocks.
func (l *Ledger) Length() int64 {
	l.m.RLock()
	defer l.m.RUnlock()
	return l.blockchain.Height()
}

// Return a copy of the pending pool in submission order.
func (l *Ledger) PendingTransactions() []model.Transaction {
	l.m.RLock()
	defer l.m.RUnlock()
	txs := make([]model.Transaction, l.txPool.Size())
	copy(txs, l.txPool.Txs)
	return txs
}

// Verify checks the hash links and indices of the whole chain. A block sealed with a
// previous hash override that doesn't match its predecessor fails here.
func (l *Ledger) Verify() error {
	l.m.RLock()
	defer l.m.RUnlock()
	return utils.VerifyChain(l.blockchain.Blocks, l.hash)
}
