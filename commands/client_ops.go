package commands

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// do nothing operation
	NOOP Operation = iota
	// Submit a transaction to the node: transfer <sender> <recipient> <amount>
	TRANSFER
	// Ask the node to seal a block: mine <proof> [previous_hash]
	SEAL
	// Print the node's most recent block.
	LAST_BLOCK
	// Print the node's chain.
	SHOW_CHAIN
	// Print the node's pending pool.
	SHOW_PENDING
	// Ask the node to verify its chain.
	VERIFY_CHAIN
	// Connect to a node with ip address and port
	CONNECT
)

type ClientCommand struct {
	Op   Operation
	Args []string
}

func (c ClientCommand) IsValid() bool {
	switch c.Op {
	case TRANSFER:
		return len(c.Args) == 3
	case SEAL:
		if len(c.Args) != 1 && len(c.Args) != 2 {
			return false
		}
		_, err := strconv.ParseInt(c.Args[0], 10, 64)
		return err == nil
	case LAST_BLOCK, SHOW_CHAIN, SHOW_PENDING, VERIFY_CHAIN:
		return len(c.Args) == 0
	case CONNECT:
		if len(c.Args) != 2 {
			return false
		}
		return isValidAddress(c.Args[0], c.Args[1])
	default:
		return false
	}
}

func CreateClientCommand(s string) (ClientCommand, error) {
	// split command by whitespace.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return ClientCommand{}, errors.New("command is empty")
	}
	cmd := ClientCommand{}
	switch ss[0] {
	case "transfer":
		cmd.Op = TRANSFER
	case "mine":
		cmd.Op = SEAL
	case "last":
		cmd.Op = LAST_BLOCK
	case "chain":
		cmd.Op = SHOW_CHAIN
	case "pending":
		cmd.Op = SHOW_PENDING
	case "verify":
		cmd.Op = VERIFY_CHAIN
	case "connect":
		cmd.Op = CONNECT
	default:
		cmd.Op = NOOP
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return ClientCommand{}, errors.New("invalid command")
	}
	return cmd, nil
}

// Proof argument of a SEAL command.
func (c ClientCommand) Proof() int64 {
	proof, _ := strconv.ParseInt(c.Args[0], 10, 64)
	return proof
}

// Previous hash override of a SEAL command, empty when absent.
func (c ClientCommand) PreviousHash() string {
	if len(c.Args) < 2 {
		return ""
	}
	return c.Args[1]
}
