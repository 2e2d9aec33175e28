package blockchain

// Append builds the next block from payload and timestamp and returns the
// chain extended with it. The new block's index is the current length, its
// previous hash is the hash of the current last block, and its own hash is
// computed over its stored fields.
//
// The input chain must hold at least the genesis block; appending to an
// empty chain fails with ErrEmptyChain rather than substituting a default
// predecessor. Payload validation belongs at the caller's boundary, so a
// payload that fails it here is a contract violation and is rejected with
// ErrInvalidPayload instead of being coerced.
//
// Append never mutates existing blocks. The returned chain is a fresh
// sequence value sharing no appendable storage with the input, so a caller
// holding the old value keeps an unchanged chain.
func Append(chain Chain, payload Payload, timestamp string) (Chain, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	prev := chain[len(chain)-1]
	block := Block{
		Index:        len(chain),
		Timestamp:    timestamp,
		Payload:      payload,
		PreviousHash: prev.Hash,
	}
	block.Hash = HashBlock(block.Index, block.Timestamp, block.Payload, block.PreviousHash)

	next := make(Chain, len(chain), len(chain)+1)
	copy(next, chain)
	return append(next, block), nil
}
