package store

import (
	"errors"

	"tallychain/blockchain"
)

// ErrBlockNotFound is returned when no block exists at the requested index.
var ErrBlockNotFound = errors.New("no block at that index")

// ChainStore is the session-owned handle to a mutable chain. Implementations
// must serialize Append relative to any other concurrent append, so two
// appends can never observe the same previous hash and fork the chain.
type ChainStore interface {

	// Append validates nothing itself: it hands the payload and timestamp to
	// the chain engine and publishes the new block on success.
	Append(payload blockchain.Payload, timestamp string) (blockchain.Block, error)

	// Getters
	Chain() blockchain.Chain
	Head() (blockchain.Block, error)
	BlockByIndex(index int) (blockchain.Block, error)
	Height() int

	// Integrity
	Validate() bool
	Verify() error
}
