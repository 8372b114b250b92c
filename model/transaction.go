package model

import "github.com/shopspring/decimal"

// A transfer of value from one address to another. Addresses are opaque strings,
// nothing here checks that they are well formed or that the sender can pay.
type Transaction struct {
	// Address of the party sending the value.
	Sender string `json:"sender"`
	// Address of the party receiving the value.
	Recipient string `json:"recipient"`
	// How much value to transfer. Sign is not checked.
	Amount decimal.Decimal `json:"amount"`
}

type TransactionPool struct {
	// Txs contains all pending transactions that haven't been sealed into a block yet,
	// in the order they were submitted. The order is the order they appear in the block.
	Txs []Transaction
}

// NewTransactionPool creates a new transaction pool with no transaction at all.
func NewTransactionPool() TransactionPool {
	return TransactionPool{
		Txs: []Transaction{},
	}
}

// Add appends a transaction to the end of the pool.
func (p *TransactionPool) Add(tx Transaction) {
	p.Txs = append(p.Txs, tx)
}

// Drain returns every pending transaction and leaves the pool empty. The returned
// slice is owned by the caller, later additions never show up in it.
func (p *TransactionPool) Drain() []Transaction {
	txs := p.Txs
	p.Txs = []Transaction{}
	return txs
}

// Size returns how many transactions are waiting.
func (p *TransactionPool) Size() int {
	return len(p.Txs)
}
