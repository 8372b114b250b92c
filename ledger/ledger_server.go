package ledger

import (
	"context"
	"errors"
	"log"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LedgerServer exposes a ledger over gRPC.
type LedgerServer struct {
	service.UnimplementedLedgerServiceServer
	ledger *Ledger
}

func NewLedgerServer(l *Ledger) *LedgerServer {
	return &LedgerServer{
		ledger: l,
	}
}

// Convert ledger errors to gRPC status errors so clients can tell bad input apart
// from a broken ledger.
func toStatus(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidTransactionShape):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrEmptyChain):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Submit transaction adds the transaction to the pending pool.
func (sev *LedgerServer) SubmitTransaction(ctx context.Context, req *service.SubmitTransactionRequest) (*service.SubmitTransactionResponse, error) {
	index, err := sev.ledger.SubmitTransaction(req.Sender, req.Recipient, req.Amount)
	if err != nil {
		log.Printf("rejected transaction %s -> %s: %v", req.Sender, req.Recipient, err)
		return nil, toStatus(err)
	}
	return &service.SubmitTransactionResponse{BlockIndex: index}, nil
}

// Seal every pending transaction into a new block with the proof from the request.
func (sev *LedgerServer) SealBlock(ctx context.Context, req *service.SealBlockRequest) (*service.SealBlockResponse, error) {
	b, err := sev.ledger.SealBlock(req.Proof, req.PreviousHash)
	if err != nil {
		return nil, toStatus(err)
	}
	return &service.SealBlockResponse{Block: &b, Hash: sev.ledger.ContentHash(b)}, nil
}

func (sev *LedgerServer) GetLastBlock(ctx context.Context, req *service.GetLastBlockRequest) (*service.GetLastBlockResponse, error) {
	b, err := sev.ledger.LastBlock()
	if err != nil {
		return nil, toStatus(err)
	}
	return &service.GetLastBlockResponse{Block: &b, Hash: sev.ledger.ContentHash(b)}, nil
}

func (sev *LedgerServer) GetChain(ctx context.Context, req *service.GetChainRequest) (*service.GetChainResponse, error) {
	chain := sev.ledger.Chain()
	res := service.GetChainResponse{Length: int64(len(chain))}
	for i := 0; i < len(chain); i++ {
		res.Blocks = append(res.Blocks, &chain[i])
	}
	return &res, nil
}

func (sev *LedgerServer) GetPendingTransactions(ctx context.Context, req *service.GetPendingTransactionsRequest) (*service.GetPendingTransactionsResponse, error) {
	txs := sev.ledger.PendingTransactions()
	res := service.GetPendingTransactionsResponse{}
	for i := 0; i < len(txs); i++ {
		res.Transactions = append(res.Transactions, &txs[i])
	}
	return &res, nil
}

func (sev *LedgerServer) VerifyChain(ctx context.Context, req *service.VerifyChainRequest) (*service.VerifyChainResponse, error) {
	if err := sev.ledger.Verify(); err != nil {
		return &service.VerifyChainResponse{Valid: false, Reason: err.Error()}, nil
	}
	return &service.VerifyChainResponse{Valid: true}, nil
}
