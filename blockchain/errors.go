package blockchain

import "errors"

var (
	// ErrInvalidPayload reports a payload violating the append precondition:
	// empty sender or receiver, or an amount that is not a positive finite
	// decimal in canonical form.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrEmptyChain reports an operation on a chain with no blocks. Every
	// real chain holds at least the genesis block; the engine fails closed
	// instead of fabricating a predecessor.
	ErrEmptyChain = errors.New("chain has no blocks")

	// ErrBrokenLink reports a block whose previous hash does not match the
	// hash of the block before it.
	ErrBrokenLink = errors.New("previous hash does not match previous block")

	// ErrHashMismatch reports a block whose stored hash does not match
	// recomputation from its own fields.
	ErrHashMismatch = errors.New("block hash does not match computed hash")

	// ErrIndexMismatch reports a block whose index does not equal its
	// position in the chain.
	ErrIndexMismatch = errors.New("block index does not match chain position")
)
