package utils

import (
	"testing"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestGenesis() model.Block {
	return model.Block{
		Index:        1,
		Timestamp:    1.5,
		Transactions: []model.Transaction{},
		Proof:        100,
		PreviousHash: model.GENESIS_PREVIOUS_HASH,
	}
}

func createTestBlock() model.Block {
	return model.Block{
		Index:     2,
		Timestamp: 2,
		Transactions: []model.Transaction{
			{Sender: "A", Recipient: "B", Amount: decimal.NewFromInt(10)},
			{Sender: "B", Recipient: "C", Amount: decimal.NewFromInt(5)},
		},
		Proof:        12345,
		PreviousHash: "abc",
	}
}

func TestGetBlockBytes(t *testing.T) {
	genesis := createTestGenesis()
	assert.Equal(t,
		`{"index":1,"previous_hash":"1","proof":100,"timestamp":1.5,"transactions":[]}`,
		string(GetBlockBytes(&genesis)))

	block := createTestBlock()
	assert.Equal(t,
		`{"index":2,"previous_hash":"abc","proof":12345,"timestamp":2,"transactions":[{"amount":10,"recipient":"B","sender":"A"},{"amount":5,"recipient":"C","sender":"B"}]}`,
		string(GetBlockBytes(&block)))
}

func TestGetBlockBytesNilTransactions(t *testing.T) {
	withNil := createTestGenesis()
	withNil.Transactions = nil
	withEmpty := createTestGenesis()
	assert.Equal(t, GetBlockBytes(&withEmpty), GetBlockBytes(&withNil))
}

func TestGetTransactionBytes(t *testing.T) {
	tx := model.Transaction{Sender: "a\"b", Recipient: "c", Amount: decimal.RequireFromString("-0.25")}
	assert.Equal(t, `{"amount":-0.25,"recipient":"c","sender":"a\"b"}`, string(GetTransactionBytes(&tx)))
}

func TestCanonicalObjectIgnoresInsertionOrder(t *testing.T) {
	a := canonicalObject{}
	a["proof"] = []byte("1")
	a["index"] = []byte("2")
	a["timestamp"] = []byte("3")

	b := canonicalObject{}
	b["timestamp"] = []byte("3")
	b["index"] = []byte("2")
	b["proof"] = []byte("1")

	assert.Equal(t, `{"index":2,"proof":1,"timestamp":3}`, string(a.encode()))
	assert.Equal(t, a.encode(), b.encode())
}

func TestContentHash(t *testing.T) {
	genesis := createTestGenesis()
	block := createTestBlock()
	assert.Equal(t, "17022a6e625007856dec16ea06ee77613b285f1cb49a9ac9a52d9d2e79956cda", ContentHash(&genesis, SHA256))
	assert.Equal(t, "c4e1dd2de0d104ee337328a3bfcebd87c75ca032eef318b2a1f814a76bca82e3", ContentHash(&block, SHA256))
	assert.Equal(t, "51920fe92012bc9fadfd186d185269c5f3d8c243c8de9a35fd91cf60e8225213", ContentHash(&genesis, SHA3_256))
}

func TestContentHashIsDeterministic(t *testing.T) {
	block := createTestBlock()
	same := createTestBlock()
	assert.Equal(t, ContentHash(&block, SHA256), ContentHash(&block, SHA256))
	assert.Equal(t, ContentHash(&block, SHA256), ContentHash(&same, SHA256))
	assert.Len(t, ContentHash(&block, SHA256), 64)
}

func TestContentHashIsSensitive(t *testing.T) {
	original := createTestBlock()
	expected := ContentHash(&original, SHA256)

	proof := createTestBlock()
	proof.Proof++
	assert.NotEqual(t, expected, ContentHash(&proof, SHA256))

	prevHash := createTestBlock()
	prevHash.PreviousHash = "abd"
	assert.NotEqual(t, expected, ContentHash(&prevHash, SHA256))

	amount := createTestBlock()
	amount.Transactions[1].Amount = decimal.NewFromInt(6)
	assert.NotEqual(t, expected, ContentHash(&amount, SHA256))

	order := createTestBlock()
	order.Transactions[0], order.Transactions[1] = order.Transactions[1], order.Transactions[0]
	assert.NotEqual(t, expected, ContentHash(&order, SHA256))
}

func TestVerifyChain(t *testing.T) {
	genesis := createTestGenesis()
	next := createTestBlock()
	next.PreviousHash = ContentHash(&genesis, SHA256)
	assert.Nil(t, VerifyChain([]model.Block{genesis, next}, SHA256))

	assert.ErrorIs(t, VerifyChain(nil, SHA256), model.ErrEmptyChain)

	badGenesis := createTestGenesis()
	badGenesis.PreviousHash = "0"
	assert.NotNil(t, VerifyChain([]model.Block{badGenesis}, SHA256))

	gap := next
	gap.Index = 3
	assert.NotNil(t, VerifyChain([]model.Block{genesis, gap}, SHA256))

	broken := next
	broken.PreviousHash = "abc"
	assert.NotNil(t, VerifyChain([]model.Block{genesis, broken}, SHA256))

	// Tampering with a sealed block breaks the link of its successor.
	tampered := genesis
	tampered.Proof = 101
	assert.NotNil(t, VerifyChain([]model.Block{tampered, next}, SHA256))
}
