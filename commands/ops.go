package commands

import (
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"
)

type Operation int

const PORT_REGEX = "^[0-9]{4,5}$"

const (
	DEFAULT Operation = iota
	// Queue a transaction: tx <sender> <recipient> <amount>
	TX
	// Seal the pending pool into a block: mine <proof> [previous_hash]
	MINE
	// Print the most recent block.
	LAST
	// Print the whole chain.
	CHAIN
	// Print the pending pool.
	PENDING
	// Check every hash link of the chain.
	VERIFY
	// Write the chain as a Graphviz dot file: show <path>
	SHOW
	// Stop the node.
	QUIT
)

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case LAST, CHAIN, PENDING, VERIFY, QUIT:
		return len(c.Args) == 0
	case TX:
		// The amount is checked by the ledger, which knows what a valid amount is.
		return len(c.Args) == 3
	case MINE:
		if len(c.Args) != 1 && len(c.Args) != 2 {
			return false
		}
		// proof must be a number.
		_, err := strconv.ParseInt(c.Args[0], 10, 64)
		return err == nil
	case SHOW:
		return len(c.Args) == 1
	default:
		return false
	}
}

// From string, create a command for the node console.
func CreateCommand(s string) (Command, error) {
	// split command by whitespace.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch ss[0] {
	case "tx":
		cmd.Op = TX
	case "mine":
		cmd.Op = MINE
	case "last":
		cmd.Op = LAST
	case "chain":
		cmd.Op = CHAIN
	case "pending":
		cmd.Op = PENDING
	case "verify":
		cmd.Op = VERIFY
	case "show":
		cmd.Op = SHOW
	case "quit", "exit":
		cmd.Op = QUIT
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.New("invalid command")
	}
	return cmd, nil
}

// Proof argument of a MINE command.
func (c Command) Proof() int64 {
	proof, _ := strconv.ParseInt(c.Args[0], 10, 64)
	return proof
}

// Previous hash override of a MINE command, empty when absent.
func (c Command) PreviousHash() string {
	if len(c.Args) < 2 {
		return ""
	}
	return c.Args[1]
}

func isValidAddress(ipAddr string, port string) bool {
	ip := net.ParseIP(ipAddr)
	portRegex, _ := regexp.Compile(PORT_REGEX)
	return ip != nil && ip.To4() != nil && portRegex.MatchString(port)
}
