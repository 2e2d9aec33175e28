package blockchain

// Payload is the user-supplied content of a block: who sent what to whom.
// Amount is kept as its canonical decimal string (see NormalizeAmount) so
// that equal values always hash identically.
type Payload struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

// Block is one immutable record in the chain, hash-linked to its
// predecessor. Timestamp is milliseconds since epoch, base-10 encoded.
// Blocks are never mutated after creation.
type Block struct {
	Index        int     `json:"index"`
	Timestamp    string  `json:"timestamp"`
	Payload      Payload `json:"payload"`
	PreviousHash string  `json:"previous_hash"`
	Hash         string  `json:"hash"`
}

// Chain is the append-only ordered sequence of blocks. Slice position equals
// block index; position 0 is always the genesis block. A chain value is
// exclusively owned by its session: Append returns a new value and never
// mutates its input.
type Chain []Block
