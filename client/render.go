package client

import (
	"fmt"
	"strconv"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/pterm/pterm"
)

func shortenHash(s string) string {
	if len(s) < 16 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:6], s[len(s)-6:])
}

// RenderTransactions draws transactions as a table.
func RenderTransactions(txs []*model.Transaction) (string, error) {
	data := pterm.TableData{{"#", "Sender", "Recipient", "Amount"}}
	for i, tx := range txs {
		data = append(data, []string{strconv.Itoa(i + 1), tx.Sender, tx.Recipient, tx.Amount.String()})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// RenderBlock draws a block's header and its transactions.
func RenderBlock(b *model.Block, hash string) (string, error) {
	header := pterm.TableData{
		{"Index", strconv.FormatInt(b.Index, 10)},
		{"Hash", hash},
		{"Previous hash", b.PreviousHash},
		{"Proof", strconv.FormatInt(b.Proof, 10)},
		{"Timestamp", strconv.FormatFloat(b.Timestamp, 'f', -1, 64)},
	}
	s, err := pterm.DefaultTable.WithData(header).Srender()
	if err != nil {
		return "", err
	}
	if len(b.Transactions) == 0 {
		return s, nil
	}
	txs := make([]*model.Transaction, 0, len(b.Transactions))
	for i := range b.Transactions {
		txs = append(txs, &b.Transactions[i])
	}
	t, err := RenderTransactions(txs)
	if err != nil {
		return "", err
	}
	return s + "\n" + t, nil
}

// RenderChain draws one row per block.
func RenderChain(blocks []*model.Block) (string, error) {
	data := pterm.TableData{{"Index", "Previous hash", "Proof", "Transactions"}}
	for _, b := range blocks {
		data = append(data, []string{
			strconv.FormatInt(b.Index, 10),
			shortenHash(b.PreviousHash),
			strconv.FormatInt(b.Proof, 10),
			strconv.Itoa(len(b.Transactions)),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
