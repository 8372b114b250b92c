package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Luismorlan/ledger_in_go/client"
	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/pterm/pterm"
)

var (
	ipAddr  *string
	port    *string
	timeout *time.Duration
)

func init() {
	ipAddr = flag.String("ip", "127.0.0.1", "ip address of the ledger node")
	port = flag.String("port", "10000", "gRPC port of the ledger node")
	timeout = flag.Duration("timeout", 10*time.Second, "deadline of every call to the node")
}

func printOrFail(logger *slog.Logger, s string, err error) {
	if err != nil {
		logger.Error("cannot render", "error", err)
		return
	}
	pterm.Println(s)
}

// Run one client command. Errors are reported, never fatal.
func HandleCommand(c commands.ClientCommand, cl *client.Client, logger *slog.Logger) {
	switch c.Op {
	case commands.TRANSFER:
		index, err := cl.Transfer(c.Args[0], c.Args[1], c.Args[2])
		if err != nil {
			logger.Error("transfer failed", "error", err)
			return
		}
		pterm.Info.Printfln("Transaction will be added to Block %d", index)
	case commands.SEAL:
		b, hash, err := cl.Mine(c.Proof(), c.PreviousHash())
		if err != nil {
			logger.Error("mining failed", "error", err)
			return
		}
		pterm.Success.Printfln("New Block Forged")
		s, err := client.RenderBlock(b, hash)
		printOrFail(logger, s, err)
	case commands.LAST_BLOCK:
		b, hash, err := cl.LastBlock()
		if err != nil {
			logger.Error("cannot get last block", "error", err)
			return
		}
		s, err := client.RenderBlock(b, hash)
		printOrFail(logger, s, err)
	case commands.SHOW_CHAIN:
		blocks, err := cl.Chain()
		if err != nil {
			logger.Error("cannot get chain", "error", err)
			return
		}
		s, err := client.RenderChain(blocks)
		printOrFail(logger, s, err)
	case commands.SHOW_PENDING:
		txs, err := cl.Pending()
		if err != nil {
			logger.Error("cannot get pending transactions", "error", err)
			return
		}
		s, err := client.RenderTransactions(txs)
		printOrFail(logger, s, err)
	case commands.VERIFY_CHAIN:
		if err := cl.Verify(); err != nil {
			pterm.Error.Println("chain is invalid:", err)
			return
		}
		pterm.Success.Println("chain is valid")
	case commands.CONNECT:
		if err := cl.Connect(c.Args[0], c.Args[1]); err != nil {
			logger.Error("cannot connect", "error", err)
			return
		}
		pterm.Info.Printfln("connected to %s:%s", c.Args[0], c.Args[1])
	}
}

func main() {
	flag.Parse()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	cl := client.NewClient(*timeout)
	if err := cl.Connect(*ipAddr, *port); err != nil {
		logger.Error("cannot connect", "error", err)
		os.Exit(1)
	}
	defer cl.Close()
	pterm.Info.Printfln("talking to ledger node at %s:%s", *ipAddr, *port)

	reader := bufio.NewReader(os.Stdin)
	for {
		pterm.Print("> ")
		text, err := reader.ReadString('\n')
		if strings.TrimSpace(text) != "" {
			c, cerr := commands.CreateClientCommand(text)
			if cerr != nil {
				logger.Warn("invalid command", "input", strings.TrimSpace(text))
			} else {
				HandleCommand(c, cl, logger)
			}
		}
		if err != nil {
			return
		}
	}
}
