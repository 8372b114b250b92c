package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Luismorlan/ledger_in_go/api"
	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/network"
	"github.com/Luismorlan/ledger_in_go/service"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/Luismorlan/ledger_in_go/visualize"
	"google.golang.org/grpc"
)

var (
	grpcPort   *string
	httpPort   *string
	configPath *string
)

func init() {
	grpcPort = flag.String("port", "", "port of the gRPC service, overrides the config")
	httpPort = flag.String("http_port", "", "port of the HTTP API, overrides the config")
	configPath = flag.String("config_path", "ledger/cmd/config.yaml", "path to ledger node config")
}

// Read console lines and turn them into commands until input ends.
func ParseCommand(r io.Reader, cmd chan commands.Command) {
	reader := bufio.NewReader(r)
	for {
		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if text != "" {
			c, perr := commands.CreateCommand(text)
			if perr != nil {
				log.Println(perr)
			} else {
				cmd <- c
			}
		}
		if err != nil {
			close(cmd)
			return
		}
	}
}

func printJSON(w io.Writer, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, string(data))
}

// Run one console command against the ledger. Returns false once the node should stop.
func HandleCommand(c commands.Command, l *ledger.Ledger, w io.Writer) bool {
	switch c.Op {
	case commands.TX:
		index, err := l.SubmitTransaction(c.Args[0], c.Args[1], c.Args[2])
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		fmt.Fprintf(w, "Transaction will be added to Block %d\n", index)
	case commands.MINE:
		b, err := l.SealBlock(c.Proof(), c.PreviousHash())
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		printJSON(w, b)
	case commands.LAST:
		b, err := l.LastBlock()
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		printJSON(w, map[string]interface{}{"block": b, "hash": l.ContentHash(b)})
	case commands.CHAIN:
		printJSON(w, l.Chain())
	case commands.PENDING:
		printJSON(w, l.PendingTransactions())
	case commands.VERIFY:
		if err := l.Verify(); err != nil {
			fmt.Fprintln(w, "chain is invalid:", err)
			return true
		}
		fmt.Fprintln(w, "chain is valid")
	case commands.SHOW:
		err := visualize.RenderToFile(c.Args[0], l.Chain(), 0, l.ContentHash)
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		fmt.Fprintln(w, "chain written to", c.Args[0])
	case commands.QUIT:
		return false
	default:
		fmt.Fprintln(w, "Unrecognized command:", c)
	}
	return true
}

func HandleCommands(cmd chan commands.Command, l *ledger.Ledger, w io.Writer, quit chan struct{}) {
	for c := range cmd {
		if !HandleCommand(c, l, w) {
			close(quit)
			return
		}
	}
}

// Log every sealed block until the network is closed.
func LogSealedBlocks(blocks <-chan model.Block, l *ledger.Ledger) {
	for b := range blocks {
		log.Printf("sealed block %d with %d transactions, hash %s", b.Index, len(b.Transactions), l.ContentHash(b))
	}
}

func LoadAppConfig(path string) config.AppConfig {
	cfg, err := utils.ParseAppConfig(path)
	if err != nil {
		log.Printf("cannot read config %s, using defaults: %v", path, err)
		return config.DefaultAppConfig()
	}
	return cfg
}

func main() {
	flag.Parse()

	cfg := LoadAppConfig(*configPath)
	if *grpcPort != "" {
		cfg.GRPC_PORT = *grpcPort
	}
	if *httpPort != "" {
		cfg.HTTP_PORT = *httpPort
	}

	n := network.NewLocalNetwork(cfg.SEAL_NOTIFICATION_BUFFER)
	l, err := ledger.NewLedger(cfg, n)
	if err != nil {
		log.Fatalf("failed to create ledger: %v", err)
	}
	go LogSealedBlocks(n.Listen(), l)
	log.Println(cfg)
	log.Println("ledger id:", l.ID())

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", cfg.GRPC_PORT))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	service.RegisterLedgerServiceServer(grpcServer, ledger.NewLedgerServer(l))
	go func() {
		log.Println("Starting to serve gRPC at port:", cfg.GRPC_PORT)
		if err := grpcServer.Serve(lis); err != nil {
			log.Println(err)
		}
	}()

	httpServer := api.NewServer(":" + cfg.HTTP_PORT)
	if err := httpServer.RegisterModule(api.NewLedgerAPIHandler(l)); err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Println(err)
		}
	}()

	// cmd: commands parsed from the console.
	// quit: closed once the console asks the node to stop.
	cmd := make(chan commands.Command)
	quit := make(chan struct{})
	go ParseCommand(os.Stdin, cmd)
	go HandleCommands(cmd, l, os.Stdout, quit)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-sig:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)
	grpcServer.GracefulStop()
	n.Close()
}
