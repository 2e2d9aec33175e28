package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashBlock computes the content hash binding a block to its predecessor.
// The hash input is the plain concatenation of the index, the timestamp,
// the canonical payload encoding and the previous hash, in that fixed
// order. The digest is SHA-224, lowercase hex.
//
// Field order and digest format are a compatibility surface: independent
// implementations must agree on both to produce interoperable hashes.
func HashBlock(index int, timestamp string, payload Payload, previousHash string) string {
	input := strconv.Itoa(index) + timestamp + SerializePayload(payload) + previousHash
	sum := sha256.Sum224([]byte(input))
	return hex.EncodeToString(sum[:])
}
