package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func createTestClient(t *testing.T) (*Client, *ledger.Ledger, func()) {
	l, err := ledger.NewLedger(config.DefaultAppConfig(), nil)
	assert.Nil(t, err)
	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	service.RegisterLedgerServiceServer(grpcServer, ledger.NewLedgerServer(l))
	go grpcServer.Serve(lis)

	c := NewClient(5 * time.Second)
	err = c.ConnectWithOptions("bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithInsecure())
	assert.Nil(t, err)
	return c, l, func() {
		c.Close()
		grpcServer.Stop()
	}
}

func TestNotConnected(t *testing.T) {
	c := NewClient(time.Second)
	_, err := c.Transfer("A", "B", "1")
	assert.ErrorIs(t, err, ErrNotConnected)
	_, _, err = c.Mine(1, "")
	assert.ErrorIs(t, err, ErrNotConnected)
	_, _, err = c.LastBlock()
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = c.Chain()
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = c.Pending()
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.ErrorIs(t, c.Verify(), ErrNotConnected)
	assert.Nil(t, c.Close())
}

func TestTransferAndMine(t *testing.T) {
	c, l, stop := createTestClient(t)
	defer stop()

	index, err := c.Transfer("A", "B", "10")
	assert.Nil(t, err)
	assert.Equal(t, int64(2), index)
	_, err = c.Transfer("B", "C", "5")
	assert.Nil(t, err)

	pending, err := c.Pending()
	assert.Nil(t, err)
	assert.Len(t, pending, 2)

	genesis, genesisHash, err := c.LastBlock()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), genesis.Index)

	block, hash, err := c.Mine(12345, "")
	assert.Nil(t, err)
	assert.Equal(t, int64(2), block.Index)
	assert.Equal(t, genesisHash, block.PreviousHash)
	assert.Equal(t, l.ContentHash(*block), hash)
	assert.True(t, decimal.NewFromInt(10).Equal(block.Transactions[0].Amount))

	chain, err := c.Chain()
	assert.Nil(t, err)
	assert.Len(t, chain, 2)
	assert.Nil(t, c.Verify())

	index, err = c.Transfer("C", "A", "1")
	assert.Nil(t, err)
	assert.Equal(t, int64(3), index)
}

func TestTransferInvalidAmount(t *testing.T) {
	c, _, stop := createTestClient(t)
	defer stop()

	_, err := c.Transfer("A", "B", "many")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestVerifyReportsBrokenChain(t *testing.T) {
	c, _, stop := createTestClient(t)
	defer stop()

	_, _, err := c.Mine(1, "ff")
	assert.Nil(t, err)
	assert.NotNil(t, c.Verify())
}

func TestRender(t *testing.T) {
	b := &model.Block{
		Index:        2,
		Proof:        12345,
		PreviousHash: "17022a6e625007856dec16ea06ee77613b285f1cb49a9ac9a52d9d2e79956cda",
		Transactions: []model.Transaction{{Sender: "alice", Recipient: "bob", Amount: decimal.NewFromInt(10)}},
	}

	s, err := RenderBlock(b, "somehash")
	assert.Nil(t, err)
	assert.Contains(t, s, "12345")
	assert.Contains(t, s, "somehash")
	assert.Contains(t, s, "alice")

	s, err = RenderChain([]*model.Block{b})
	assert.Nil(t, err)
	assert.Contains(t, s, "17022a...956cda")

	s, err = RenderTransactions(nil)
	assert.Nil(t, err)
	assert.Contains(t, s, "Recipient")
}
