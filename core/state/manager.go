package state

import (
	"errors"
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"socialnet/storage"
)

// Manager mediates all engine access to the key-value backend. Writes are
// buffered in an overlay until Commit so a failed transition leaves no
// trace; reads observe the overlay first, giving the transition a
// consistent view of its own pending writes.
type Manager struct {
	db      storage.Database
	overlay map[string][]byte
}

// NewManager creates a state manager operating on the provided database.
func NewManager(db storage.Database) *Manager {
	return &Manager{
		db:      db,
		overlay: make(map[string][]byte),
	}
}

func kvKey(key []byte) []byte {
	return ethcrypto.Keccak256(key)
}

// KVPut serialises value with RLP and stages it under the hashed key.
func (m *Manager) KVPut(key []byte, value interface{}) error {
	if m == nil {
		return errors.New("state: manager not initialised")
	}
	if len(key) == 0 {
		return errors.New("state: empty key")
	}
	encoded, err := rlp.EncodeToBytes(value)
	if err != nil {
		return fmt.Errorf("state: encode %q: %w", key, err)
	}
	m.overlay[string(kvKey(key))] = encoded
	return nil
}

// KVGet loads the value stored under key into out. It returns false with a
// nil error when the key has never been written.
func (m *Manager) KVGet(key []byte, out interface{}) (bool, error) {
	if m == nil {
		return false, errors.New("state: manager not initialised")
	}
	hashed := kvKey(key)
	data, ok := m.overlay[string(hashed)]
	if !ok {
		stored, err := m.db.Get(hashed)
		if errors.Is(err, storage.ErrKeyNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		data = stored
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := rlp.DecodeBytes(data, out); err != nil {
		return false, fmt.Errorf("state: decode %q: %w", key, err)
	}
	return true, nil
}

// Commit flushes every staged write to the backend. The overlay is cleared
// afterwards so the manager can serve the next transition.
func (m *Manager) Commit() error {
	if m == nil {
		return errors.New("state: manager not initialised")
	}
	for key, value := range m.overlay {
		if err := m.db.Put([]byte(key), value); err != nil {
			return fmt.Errorf("state: commit: %w", err)
		}
	}
	m.overlay = make(map[string][]byte)
	return nil
}

// Discard drops every staged write, rolling the manager back to the last
// committed state.
func (m *Manager) Discard() {
	if m == nil {
		return
	}
	m.overlay = make(map[string][]byte)
}

// Pending reports the number of staged writes. Intended for tests and
// node-side instrumentation.
func (m *Manager) Pending() int {
	if m == nil {
		return 0
	}
	return len(m.overlay)
}

// SequenceNext allocates the next identifier from the named sequence. The
// first allocation returns 1. The incremented counter is staged with the
// rest of the transition's writes, so an aborted transition never burns an
// identifier.
func (m *Manager) SequenceNext(name string) (uint64, error) {
	current, err := m.SequenceCurrent(name)
	if err != nil {
		return 0, err
	}
	next := current + 1
	if err := m.KVPut(sequenceKey(name), next); err != nil {
		return 0, err
	}
	return next, nil
}

// SequenceCurrent reads the last allocated identifier from the named
// sequence without advancing it. Zero means nothing has been allocated.
func (m *Manager) SequenceCurrent(name string) (uint64, error) {
	var current uint64
	if _, err := m.KVGet(sequenceKey(name), &current); err != nil {
		return 0, err
	}
	return current, nil
}

// BalanceGet returns the minor-unit balance held by the supplied address.
// Unknown addresses hold zero.
func (m *Manager) BalanceGet(addr [20]byte) (*big.Int, error) {
	balance := new(big.Int)
	if _, err := m.KVGet(balanceKey(addr), balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// BalancePut stages the minor-unit balance for the supplied address.
func (m *Manager) BalancePut(addr [20]byte, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.New("state: balance must be non-negative")
	}
	return m.KVPut(balanceKey(addr), amount)
}
