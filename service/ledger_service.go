package service

import (
	"context"

	"github.com/Luismorlan/ledger_in_go/model"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const SERVICE_NAME = "ledger.LedgerService"

type SubmitTransactionRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	// Decimal number as text, e.g. "10" or "0.25".
	Amount string `json:"amount"`
}

type SubmitTransactionResponse struct {
	// Index of the block the transaction is expected to land in.
	BlockIndex int64 `json:"block_index"`
}

type SealBlockRequest struct {
	Proof int64 `json:"proof"`
	// Optional, the tail's content hash is used when empty.
	PreviousHash string `json:"previous_hash,omitempty"`
}

type SealBlockResponse struct {
	Block *model.Block `json:"block"`
	Hash  string       `json:"hash"`
}

type GetLastBlockRequest struct{}

type GetLastBlockResponse struct {
	Block *model.Block `json:"block"`
	Hash  string       `json:"hash"`
}

type GetChainRequest struct{}

type GetChainResponse struct {
	Blocks []*model.Block `json:"chain"`
	Length int64          `json:"length"`
}

type GetPendingTransactionsRequest struct{}

type GetPendingTransactionsResponse struct {
	Transactions []*model.Transaction `json:"transactions"`
}

type VerifyChainRequest struct{}

type VerifyChainResponse struct {
	Valid bool `json:"valid"`
	// Why the chain is invalid, empty when valid.
	Reason string `json:"reason,omitempty"`
}

// LedgerServiceClient is the client API for the ledger service.
type LedgerServiceClient interface {
	SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption) (*SubmitTransactionResponse, error)
	SealBlock(ctx context.Context, in *SealBlockRequest, opts ...grpc.CallOption) (*SealBlockResponse, error)
	GetLastBlock(ctx context.Context, in *GetLastBlockRequest, opts ...grpc.CallOption) (*GetLastBlockResponse, error)
	GetChain(ctx context.Context, in *GetChainRequest, opts ...grpc.CallOption) (*GetChainResponse, error)
	GetPendingTransactions(ctx context.Context, in *GetPendingTransactionsRequest, opts ...grpc.CallOption) (*GetPendingTransactionsResponse, error)
	VerifyChain(ctx context.Context, in *VerifyChainRequest, opts ...grpc.CallOption) (*VerifyChainResponse, error)
}

type ledgerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLedgerServiceClient(cc grpc.ClientConnInterface) LedgerServiceClient {
	return &ledgerServiceClient{cc}
}

func (c *ledgerServiceClient) invoke(ctx context.Context, method string, in interface{}, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(JSON_CODEC_NAME)}, opts...)
	return c.cc.Invoke(ctx, "/"+SERVICE_NAME+"/"+method, in, out, opts...)
}

func (c *ledgerServiceClient) SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption) (*SubmitTransactionResponse, error) {
	out := new(SubmitTransactionResponse)
	if err := c.invoke(ctx, "SubmitTransaction", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) SealBlock(ctx context.Context, in *SealBlockRequest, opts ...grpc.CallOption) (*SealBlockResponse, error) {
	out := new(SealBlockResponse)
	if err := c.invoke(ctx, "SealBlock", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) GetLastBlock(ctx context.Context, in *GetLastBlockRequest, opts ...grpc.CallOption) (*GetLastBlockResponse, error) {
	out := new(GetLastBlockResponse)
	if err := c.invoke(ctx, "GetLastBlock", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) GetChain(ctx context.Context, in *GetChainRequest, opts ...grpc.CallOption) (*GetChainResponse, error) {
	out := new(GetChainResponse)
	if err := c.invoke(ctx, "GetChain", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) GetPendingTransactions(ctx context.Context, in *GetPendingTransactionsRequest, opts ...grpc.CallOption) (*GetPendingTransactionsResponse, error) {
	out := new(GetPendingTransactionsResponse)
	if err := c.invoke(ctx, "GetPendingTransactions", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) VerifyChain(ctx context.Context, in *VerifyChainRequest, opts ...grpc.CallOption) (*VerifyChainResponse, error) {
	out := new(VerifyChainResponse)
	if err := c.invoke(ctx, "VerifyChain", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// LedgerServiceServer is the server API for the ledger service.
type LedgerServiceServer interface {
	SubmitTransaction(context.Context, *SubmitTransactionRequest) (*SubmitTransactionResponse, error)
	SealBlock(context.Context, *SealBlockRequest) (*SealBlockResponse, error)
	GetLastBlock(context.Context, *GetLastBlockRequest) (*GetLastBlockResponse, error)
	GetChain(context.Context, *GetChainRequest) (*GetChainResponse, error)
	GetPendingTransactions(context.Context, *GetPendingTransactionsRequest) (*GetPendingTransactionsResponse, error)
	VerifyChain(context.Context, *VerifyChainRequest) (*VerifyChainResponse, error)
}

// UnimplementedLedgerServiceServer can be embedded to have forward compatible implementations.
type UnimplementedLedgerServiceServer struct{}

func (UnimplementedLedgerServiceServer) SubmitTransaction(context.Context, *SubmitTransactionRequest) (*SubmitTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitTransaction not implemented")
}
func (UnimplementedLedgerServiceServer) SealBlock(context.Context, *SealBlockRequest) (*SealBlockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SealBlock not implemented")
}
func (UnimplementedLedgerServiceServer) GetLastBlock(context.Context, *GetLastBlockRequest) (*GetLastBlockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLastBlock not implemented")
}
func (UnimplementedLedgerServiceServer) GetChain(context.Context, *GetChainRequest) (*GetChainResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChain not implemented")
}
func (UnimplementedLedgerServiceServer) GetPendingTransactions(context.Context, *GetPendingTransactionsRequest) (*GetPendingTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPendingTransactions not implemented")
}
func (UnimplementedLedgerServiceServer) VerifyChain(context.Context, *VerifyChainRequest) (*VerifyChainResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyChain not implemented")
}

func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&LedgerService_ServiceDesc, srv)
}

// unaryHandler builds the method handler for one RPC. newIn allocates the request
// type and call forwards the decoded request to the server implementation.
func unaryHandler(method string, newIn func() interface{}, call func(LedgerServiceServer, context.Context, interface{}) (interface{}, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newIn()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LedgerServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + SERVICE_NAME + "/" + method,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(LedgerServiceServer), ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// LedgerService_ServiceDesc is the grpc.ServiceDesc for the ledger service.
var LedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SERVICE_NAME,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("SubmitTransaction",
			func() interface{} { return new(SubmitTransactionRequest) },
			func(s LedgerServiceServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.SubmitTransaction(ctx, in.(*SubmitTransactionRequest))
			}),
		unaryHandler("SealBlock",
			func() interface{} { return new(SealBlockRequest) },
			func(s LedgerServiceServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.SealBlock(ctx, in.(*SealBlockRequest))
			}),
		unaryHandler("GetLastBlock",
			func() interface{} { return new(GetLastBlockRequest) },
			func(s LedgerServiceServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.GetLastBlock(ctx, in.(*GetLastBlockRequest))
			}),
		unaryHandler("GetChain",
			func() interface{} { return new(GetChainRequest) },
			func(s LedgerServiceServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.GetChain(ctx, in.(*GetChainRequest))
			}),
		unaryHandler("GetPendingTransactions",
			func() interface{} { return new(GetPendingTransactionsRequest) },
			func(s LedgerServiceServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.GetPendingTransactions(ctx, in.(*GetPendingTransactionsRequest))
			}),
		unaryHandler("VerifyChain",
			func() interface{} { return new(VerifyChainRequest) },
			func(s LedgerServiceServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.VerifyChain(ctx, in.(*VerifyChainRequest))
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger_service",
}
