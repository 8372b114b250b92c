package ledger

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/Luismorlan/ledger_in_go/service"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// Serve a fresh ledger over an in-memory connection and return a client for it.
func startTestServer(t *testing.T) (service.LedgerServiceClient, *Ledger, func()) {
	l := createTestLedger(t)
	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	service.RegisterLedgerServiceServer(grpcServer, NewLedgerServer(l))
	go grpcServer.Serve(lis)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithInsecure(),
		grpc.WithBlock())
	assert.Nil(t, err)

	return service.NewLedgerServiceClient(conn), l, func() {
		conn.Close()
		grpcServer.Stop()
	}
}

func TestServerSubmitAndSeal(t *testing.T) {
	client, l, stop := startTestServer(t)
	defer stop()
	ctx := context.Background()

	genesis, err := client.GetLastBlock(ctx, &service.GetLastBlockRequest{})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), genesis.Block.Index)

	res, err := client.SubmitTransaction(ctx, &service.SubmitTransactionRequest{Sender: "A", Recipient: "B", Amount: "10"})
	assert.Nil(t, err)
	assert.Equal(t, int64(2), res.BlockIndex)
	_, err = client.SubmitTransaction(ctx, &service.SubmitTransactionRequest{Sender: "B", Recipient: "C", Amount: "5"})
	assert.Nil(t, err)

	pending, err := client.GetPendingTransactions(ctx, &service.GetPendingTransactionsRequest{})
	assert.Nil(t, err)
	assert.Len(t, pending.Transactions, 2)
	assert.Equal(t, "A", pending.Transactions[0].Sender)

	sealed, err := client.SealBlock(ctx, &service.SealBlockRequest{Proof: 12345})
	assert.Nil(t, err)
	assert.Equal(t, int64(2), sealed.Block.Index)
	assert.Equal(t, int64(12345), sealed.Block.Proof)
	assert.Equal(t, genesis.Hash, sealed.Block.PreviousHash)
	assert.Len(t, sealed.Block.Transactions, 2)
	assert.Equal(t, "5", sealed.Block.Transactions[1].Amount.String())
	// The block survives the trip over the wire unchanged, so hashing it again agrees.
	assert.Equal(t, sealed.Hash, l.ContentHash(*sealed.Block))

	chain, err := client.GetChain(ctx, &service.GetChainRequest{})
	assert.Nil(t, err)
	assert.Equal(t, int64(2), chain.Length)
	assert.Len(t, chain.Blocks, 2)

	verified, err := client.VerifyChain(ctx, &service.VerifyChainRequest{})
	assert.Nil(t, err)
	assert.True(t, verified.Valid)
}

func TestServerRejectsMalformedAmount(t *testing.T) {
	client, l, stop := startTestServer(t)
	defer stop()

	_, err := client.SubmitTransaction(context.Background(), &service.SubmitTransactionRequest{Sender: "A", Recipient: "B", Amount: "lots"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, l.PendingTransactions())
}

func TestServerEmptyChain(t *testing.T) {
	client, l, stop := startTestServer(t)
	defer stop()
	l.m.Lock()
	l.blockchain.Blocks = nil
	l.m.Unlock()

	_, err := client.GetLastBlock(context.Background(), &service.GetLastBlockRequest{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	verified, err := client.VerifyChain(context.Background(), &service.VerifyChainRequest{})
	assert.Nil(t, err)
	assert.False(t, verified.Valid)
}

func TestServerReportsBrokenLink(t *testing.T) {
	client, _, stop := startTestServer(t)
	defer stop()
	ctx := context.Background()

	_, err := client.SealBlock(ctx, &service.SealBlockRequest{Proof: 1, PreviousHash: "00"})
	assert.Nil(t, err)
	verified, err := client.VerifyChain(ctx, &service.VerifyChainRequest{})
	assert.Nil(t, err)
	assert.False(t, verified.Valid)
	assert.NotEmpty(t, verified.Reason)
}
