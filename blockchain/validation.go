package blockchain

import "fmt"

// Verify walks the chain from index 1 to the end and reports the first
// broken invariant. The genesis block is trusted axiomatically and not
// re-derived against a predecessor; a chain holding only the genesis block
// passes with zero iterations.
//
// Each step performs two independent checks: link continuity (the block's
// previous hash equals the previous block's hash) and hash recomputation
// from the block's own stored fields, which detects tampering with index,
// timestamp, payload or previous hash after creation. The walk stops at the
// first failure.
func Verify(chain Chain) error {
	if len(chain) == 0 {
		return ErrEmptyChain
	}
	for i := 1; i < len(chain); i++ {
		current, previous := chain[i], chain[i-1]

		if current.PreviousHash != previous.Hash {
			return fmt.Errorf("block %d: %w", i, ErrBrokenLink)
		}
		if current.Hash != HashBlock(current.Index, current.Timestamp, current.Payload, current.PreviousHash) {
			return fmt.Errorf("block %d: %w", i, ErrHashMismatch)
		}
		// A consistently re-hashed block can still sit at the wrong position.
		if current.Index != i {
			return fmt.Errorf("block %d: %w", i, ErrIndexMismatch)
		}
	}
	return nil
}

// Validate reports whether the chain is intact end to end. Integrity failure
// is an expected, checked outcome: callers that need the reason use Verify.
func Validate(chain Chain) bool {
	return Verify(chain) == nil
}
