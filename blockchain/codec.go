package blockchain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SerializePayload returns the canonical string encoding of p used as hash
// input. Fields are emitted as a JSON object in declaration order, so the
// encoding is deterministic and structurally delimited: distinct field
// values cannot collide by concatenation.
func SerializePayload(p Payload) string {
	b, _ := json.Marshal(p) // a struct of three strings cannot fail to marshal
	return string(b)
}

// NormalizeAmount parses s as a decimal amount and returns its canonical
// string form: shortest representation that round-trips the value, so
// "01.50", "1.5" and "1.50" all normalize to "1.5" and "0025" to "25".
// The amount must be a finite number greater than zero.
func NormalizeAmount(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: amount is empty", ErrInvalidPayload)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return "", fmt.Errorf("%w: amount %q is not a number", ErrInvalidPayload, s)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings without error.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: amount %q is not finite", ErrInvalidPayload, s)
	}
	if f <= 0 {
		return "", fmt.Errorf("%w: amount must be positive, got %q", ErrInvalidPayload, s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// NewPayload validates the raw form fields and returns a payload eligible
// for Append, with the amount in canonical form. Normalization happens here,
// at the boundary, so an invalid or non-canonical numeric string never
// reaches a stored block.
func NewPayload(sender, receiver, amount string) (Payload, error) {
	if strings.TrimSpace(sender) == "" {
		return Payload{}, fmt.Errorf("%w: sender is empty", ErrInvalidPayload)
	}
	if strings.TrimSpace(receiver) == "" {
		return Payload{}, fmt.Errorf("%w: receiver is empty", ErrInvalidPayload)
	}
	canonical, err := NormalizeAmount(amount)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Sender: sender, Receiver: receiver, Amount: canonical}, nil
}

// Validate re-checks the append precondition on an already-built payload.
// A payload that was not produced by NewPayload may carry a non-canonical
// amount; that is a contract violation, not something to coerce.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.Sender) == "" {
		return fmt.Errorf("%w: sender is empty", ErrInvalidPayload)
	}
	if strings.TrimSpace(p.Receiver) == "" {
		return fmt.Errorf("%w: receiver is empty", ErrInvalidPayload)
	}
	canonical, err := NormalizeAmount(p.Amount)
	if err != nil {
		return err
	}
	if canonical != p.Amount {
		return fmt.Errorf("%w: amount %q is not in canonical form (want %q)", ErrInvalidPayload, p.Amount, canonical)
	}
	return nil
}
