package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCommand(t *testing.T) {
	c, err := CreateCommand("tx A B 10")
	assert.Nil(t, err)
	assert.Equal(t, Command{Op: TX, Args: []string{"A", "B", "10"}}, c)

	c, err = CreateCommand("  mine 12345  ")
	assert.Nil(t, err)
	assert.Equal(t, MINE, c.Op)
	assert.Equal(t, int64(12345), c.Proof())
	assert.Equal(t, "", c.PreviousHash())

	c, err = CreateCommand("mine 1 abcd")
	assert.Nil(t, err)
	assert.Equal(t, "abcd", c.PreviousHash())

	for _, s := range []string{"last", "chain", "pending", "verify", "show /tmp/chain.dot", "quit"} {
		_, err := CreateCommand(s)
		assert.Nil(t, err, s)
	}
}

func TestCreateInvalidCommand(t *testing.T) {
	for _, s := range []string{"", "   ", "fly", "tx A B", "mine", "mine twelve", "mine 1 2 3", "last 1", "show"} {
		c, err := CreateCommand(s)
		assert.NotNil(t, err, s)
		assert.Equal(t, Command{}, c, s)
	}
}

func TestCreateClientCommand(t *testing.T) {
	c, err := CreateClientCommand("transfer A B 2.5")
	assert.Nil(t, err)
	assert.Equal(t, ClientCommand{Op: TRANSFER, Args: []string{"A", "B", "2.5"}}, c)

	c, err = CreateClientCommand("connect 127.0.0.1 10000")
	assert.Nil(t, err)
	assert.Equal(t, CONNECT, c.Op)

	for _, s := range []string{"mine 7", "last", "chain", "pending", "verify"} {
		_, err := CreateClientCommand(s)
		assert.Nil(t, err, s)
	}
}

func TestCreateInvalidClientCommand(t *testing.T) {
	for _, s := range []string{"", "jump", "transfer A B", "mine x", "connect ::1 10000", "connect 127.0.0.1 80", "connect 127.0.0.1 port"} {
		_, err := CreateClientCommand(s)
		assert.NotNil(t, err, s)
	}
}

func TestClientSealArguments(t *testing.T) {
	c, err := CreateClientCommand("mine 42 beef")
	assert.Nil(t, err)
	assert.Equal(t, int64(42), c.Proof())
	assert.Equal(t, "beef", c.PreviousHash())

	c, err = CreateClientCommand("mine 42")
	assert.Nil(t, err)
	assert.Equal(t, "", c.PreviousHash())
}
