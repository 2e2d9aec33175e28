package store

import (
	"sync"

	evbus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"

	"tallychain/blockchain"
)

// TopicBlockAppended is published on the store's event bus after every
// successful append. Handlers receive the new blockchain.Block.
const TopicBlockAppended = "chain:block:appended"

// MemoryChainStore owns one in-memory chain for the lifetime of a session.
// It is constructed already holding the genesis block, so the empty-chain
// state is unreachable through a store. Appends run under the write lock;
// reads hand out defensive snapshots that stay frozen while the live chain
// grows.
type MemoryChainStore struct {
	mu        sync.RWMutex
	chain     blockchain.Chain
	sessionID string
	bus       evbus.Bus
}

func NewMemoryChainStore() *MemoryChainStore {
	return &MemoryChainStore{
		chain:     blockchain.NewChain(),
		sessionID: uuid.NewString(),
		bus:       evbus.New(),
	}
}

// SessionID identifies the owning session of this chain.
func (m *MemoryChainStore) SessionID() string {
	return m.sessionID
}

// Bus exposes the store's event bus so observers can subscribe to
// TopicBlockAppended.
func (m *MemoryChainStore) Bus() evbus.Bus {
	return m.bus
}

func (m *MemoryChainStore) Append(payload blockchain.Payload, timestamp string) (blockchain.Block, error) {
	m.mu.Lock()
	next, err := blockchain.Append(m.chain, payload, timestamp)
	if err != nil {
		m.mu.Unlock()
		return blockchain.Block{}, err
	}
	m.chain = next
	block := next[len(next)-1]
	m.mu.Unlock()

	m.bus.Publish(TopicBlockAppended, block)
	return block, nil
}

func (m *MemoryChainStore) Chain() blockchain.Chain {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make(blockchain.Chain, len(m.chain))
	copy(snapshot, m.chain)
	return snapshot
}

func (m *MemoryChainStore) Head() (blockchain.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.chain) == 0 {
		return blockchain.Block{}, blockchain.ErrEmptyChain
	}
	return m.chain[len(m.chain)-1], nil
}

func (m *MemoryChainStore) BlockByIndex(index int) (blockchain.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if index < 0 || index >= len(m.chain) {
		return blockchain.Block{}, ErrBlockNotFound
	}
	return m.chain[index], nil
}

func (m *MemoryChainStore) Height() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chain)
}

func (m *MemoryChainStore) Validate() bool {
	return blockchain.Validate(m.Chain())
}

func (m *MemoryChainStore) Verify() error {
	return blockchain.Verify(m.Chain())
}
