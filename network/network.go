package network

import (
	"log"
	"sync"

	"github.com/Luismorlan/ledger_in_go/model"
)

// Network is the boundary between the ledger and whoever wants to hear about new
// blocks. It provides only 2 functions:
// Broadcast: hand a sealed block over, never blocking the caller.
// Listen: get a channel that receives every block broadcast from now on.
type Network interface {
	// Return true if every listener got the block.
	Broadcast(b model.Block) bool
	// Return a channel of blocks broadcast after this call.
	Listen() <-chan model.Block
}

// LocalNetwork fans blocks out to in-process listeners. A listener whose buffer is
// full misses the block instead of slowing down the sender.
type LocalNetwork struct {
	// Buffer size of every listener channel.
	buffer int
	// All listeners registered so far.
	listeners []chan model.Block
	// Protects listeners and closed.
	m sync.RWMutex
	// Once closed, nothing is delivered anymore.
	closed bool
}

// Create a local network whose listeners can queue up to buffer blocks each.
func NewLocalNetwork(buffer int) *LocalNetwork {
	if buffer < 0 {
		buffer = 0
	}
	return &LocalNetwork{
		buffer: buffer,
	}
}

func (n *LocalNetwork) Listen() <-chan model.Block {
	n.m.Lock()
	defer n.m.Unlock()
	c := make(chan model.Block, n.buffer)
	if n.closed {
		close(c)
		return c
	}
	n.listeners = append(n.listeners, c)
	return c
}

func (n *LocalNetwork) Broadcast(b model.Block) bool {
	n.m.RLock()
	defer n.m.RUnlock()
	if n.closed {
		return false
	}
	delivered := true
	for i := 0; i < len(n.listeners); i++ {
		select {
		case n.listeners[i] <- b.Copy():
		default:
			log.Printf("listener %d is full, dropping block %d", i, b.Index)
			delivered = false
		}
	}
	return delivered
}

// Close closes every listener channel. Later broadcasts are no-ops.
func (n *LocalNetwork) Close() {
	n.m.Lock()
	defer n.m.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for i := 0; i < len(n.listeners); i++ {
		close(n.listeners[i])
	}
	n.listeners = nil
}
