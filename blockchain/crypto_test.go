package blockchain

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBlockIsDeterministic(t *testing.T) {
	p := Payload{Sender: "alice", Receiver: "bob", Amount: "2.5"}

	h1 := HashBlock(1, "1700000000000", p, "0")
	h2 := HashBlock(1, "1700000000000", p, "0")
	assert.Equal(t, h1, h2)

	// SHA-224 digest, hex encoded.
	assert.Len(t, h1, 56)
	_, err := hex.DecodeString(h1)
	require.NoError(t, err)
}

func TestHashBlockCoversEveryField(t *testing.T) {
	p := Payload{Sender: "alice", Receiver: "bob", Amount: "2.5"}
	base := HashBlock(1, "1700000000000", p, "abc")

	tests := []struct {
		name string
		hash string
	}{
		{name: "index", hash: HashBlock(2, "1700000000000", p, "abc")},
		{name: "timestamp", hash: HashBlock(1, "1700000000001", p, "abc")},
		{name: "sender", hash: HashBlock(1, "1700000000000", Payload{Sender: "mallory", Receiver: "bob", Amount: "2.5"}, "abc")},
		{name: "receiver", hash: HashBlock(1, "1700000000000", Payload{Sender: "alice", Receiver: "mallory", Amount: "2.5"}, "abc")},
		{name: "amount", hash: HashBlock(1, "1700000000000", Payload{Sender: "alice", Receiver: "bob", Amount: "2.6"}, "abc")},
		{name: "previous hash", hash: HashBlock(1, "1700000000000", p, "abd")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.hash)
		})
	}
}
