package visualize

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/bradleyjkemp/memviz"
)

// We re-define the visualize model here because the rendered graph should only show
// what a reader cares about: shortened hashes and the link to the previous block.
type transaction struct {
	sender    string
	recipient string
	amount    string
}

type block struct {
	index    int64
	hash     string
	prevHash string
	proof    int64
	txs      []transaction
	previous *block
}

// The hashes are just too long to render, instead we take only first 3 and last 3
// characters and replace the middle part with '...'. E.g. "abcdefghi" will be rendered as "abc...ghi"
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

func txToTx(tx *model.Transaction) transaction {
	return transaction{
		sender:    shortenString(tx.Sender),
		recipient: shortenString(tx.Recipient),
		amount:    tx.Amount.String(),
	}
}

// Build the rendered chain from the last d blocks, each pointing at its predecessor.
// hash computes the content hash shown for every block. Returns nil for an empty chain.
func constructData(blocks []model.Block, d int, hash func(model.Block) string) *block {
	start := 0
	if d > 0 && d < len(blocks) {
		start = len(blocks) - d
	}

	var tail *block
	for i := start; i < len(blocks); i++ {
		b := &blocks[i]
		n := &block{
			index:    b.Index,
			hash:     shortenString(hash(*b)),
			prevHash: shortenString(b.PreviousHash),
			proof:    b.Proof,
			previous: tail,
		}
		for j := 0; j < len(b.Transactions); j++ {
			n.txs = append(n.txs, txToTx(&b.Transactions[j]))
		}
		tail = n
	}
	return tail
}

// Render writes the last d blocks (all of them when d <= 0) as a Graphviz dot graph.
func Render(w io.Writer, blocks []model.Block, d int, hash func(model.Block) string) {
	chain := constructData(blocks, d, hash)
	memviz.Map(w, chain)
}

// Entry to this package, where:
// fileName: where the dot file is written.
// blocks: the chain as tracked by the ledger.
// d: depth to render.
func RenderToFile(fileName string, blocks []model.Block, d int, hash func(model.Block) string) error {
	buf := &bytes.Buffer{}
	Render(buf, blocks, d, hash)
	return ioutil.WriteFile(fileName, buf.Bytes(), 0644)
}
