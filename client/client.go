package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/service"
	"google.golang.org/grpc"
)

var ErrNotConnected = errors.New("not connected to any ledger node")

// Client submits transactions and seal requests to a ledger node.
type Client struct {
	// Connection to the node, nil until Connect succeeds.
	conn *grpc.ClientConn
	// Service client on top of conn.
	ledgerClient service.LedgerServiceClient
	// Deadline of every call.
	timeout time.Duration
	// Protects conn and ledgerClient.
	m sync.RWMutex
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		timeout: timeout,
	}
}

// Connect to the node at ipAddr:port, dropping any previous connection.
func (c *Client) Connect(ipAddr string, port string) error {
	return c.ConnectWithOptions(ipAddr+":"+port, grpc.WithInsecure())
}

func (c *Client) ConnectWithOptions(target string, opts ...grpc.DialOption) error {
	conn, err := grpc.Dial(target, opts...)
	if err != nil {
		return err
	}
	c.m.Lock()
	defer c.m.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = conn
	c.ledgerClient = service.NewLedgerServiceClient(conn)
	return nil
}

func (c *Client) Close() error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.ledgerClient = nil
	return err
}

func (c *Client) ledgerService() (service.LedgerServiceClient, error) {
	c.m.RLock()
	defer c.m.RUnlock()
	if c.ledgerClient == nil {
		return nil, ErrNotConnected
	}
	return c.ledgerClient, nil
}

// Transfer submits a transaction and returns the index of the block expected to hold it.
func (c *Client) Transfer(sender string, recipient string, amount string) (int64, error) {
	s, err := c.ledgerService()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	res, err := s.SubmitTransaction(ctx, &service.SubmitTransactionRequest{Sender: sender, Recipient: recipient, Amount: amount})
	if err != nil {
		return 0, err
	}
	return res.BlockIndex, nil
}

// Mine asks the node to seal its pending pool with the given proof.
func (c *Client) Mine(proof int64, previousHash string) (*model.Block, string, error) {
	s, err := c.ledgerService()
	if err != nil {
		return nil, "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	res, err := s.SealBlock(ctx, &service.SealBlockRequest{Proof: proof, PreviousHash: previousHash})
	if err != nil {
		return nil, "", err
	}
	return res.Block, res.Hash, nil
}

func (c *Client) LastBlock() (*model.Block, string, error) {
	s, err := c.ledgerService()
	if err != nil {
		return nil, "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	res, err := s.GetLastBlock(ctx, &service.GetLastBlockRequest{})
	if err != nil {
		return nil, "", err
	}
	return res.Block, res.Hash, nil
}

func (c *Client) Chain() ([]*model.Block, error) {
	s, err := c.ledgerService()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	res, err := s.GetChain(ctx, &service.GetChainRequest{})
	if err != nil {
		return nil, err
	}
	return res.Blocks, nil
}

func (c *Client) Pending() ([]*model.Transaction, error) {
	s, err := c.ledgerService()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	res, err := s.GetPendingTransactions(ctx, &service.GetPendingTransactionsRequest{})
	if err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

// Verify returns nil when the node reports a valid chain.
func (c *Client) Verify() error {
	s, err := c.ledgerService()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	res, err := s.VerifyChain(ctx, &service.VerifyChainRequest{})
	if err != nil {
		return err
	}
	if !res.Valid {
		return errors.New(res.Reason)
	}
	return nil
}
