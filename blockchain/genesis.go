package blockchain

const (
	// GenesisPreviousHash is the sentinel previous hash of the genesis
	// block, the only block with no real predecessor.
	GenesisPreviousHash = "0"

	// GenesisTimestamp is the fixed timestamp constant of the genesis
	// block, keeping it identical across sessions.
	GenesisTimestamp = "0"
)

// NewGenesisBlock returns the distinguished block at index 0. Every call
// yields the identical block: all fields are constants and the hash is
// derived from them.
func NewGenesisBlock() Block {
	b := Block{
		Index:        0,
		Timestamp:    GenesisTimestamp,
		Payload:      Payload{},
		PreviousHash: GenesisPreviousHash,
	}
	b.Hash = HashBlock(b.Index, b.Timestamp, b.Payload, b.PreviousHash)
	return b
}

// NewChain returns a fresh chain anchored at the genesis block.
func NewChain() Chain {
	return Chain{NewGenesisBlock()}
}
