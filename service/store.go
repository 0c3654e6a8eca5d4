package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sgc-amambai/contracts/model"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrStoreFull        = errors.New("contract limit reached")
)

// ContractStore is one isolated, in-memory contract collection.
// Writers are serialized; readers take consistent snapshots.
type ContractStore struct {
	contracts    []model.Contract // registration order
	index        map[int]int      // id -> position in contracts
	nextID       int
	mu           sync.RWMutex
	maxContracts int // Maximum contracts to keep, 0 = unlimited
}

// NewContractStore creates an empty collection
func NewContractStore(maxContracts int) *ContractStore {
	if maxContracts < 0 {
		maxContracts = 0
	}
	return &ContractStore{
		index:        make(map[int]int),
		nextID:       1,
		maxContracts: maxContracts,
	}
}

// Register validates c, assigns it the next id and adds it to the collection.
// Ids are never reused; a rejected contract does not consume one.
func (s *ContractStore) Register(c model.Contract) (model.Contract, error) {
	c.Normalize()
	c.ID = 0
	if err := c.Validate(); err != nil {
		return model.Contract{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxContracts > 0 && len(s.contracts) >= s.maxContracts {
		return model.Contract{}, fmt.Errorf("%w: %d", ErrStoreFull, s.maxContracts)
	}

	c.ID = s.nextID
	s.nextID++
	s.index[c.ID] = len(s.contracts)
	s.contracts = append(s.contracts, c)
	return c, nil
}

// Update replaces the contract with the given id, keeping the id
func (s *ContractStore) Update(id int, c model.Contract) (model.Contract, error) {
	c.Normalize()
	c.ID = id
	if err := c.Validate(); err != nil {
		return model.Contract{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return model.Contract{}, fmt.Errorf("%w: %d", ErrContractNotFound, id)
	}
	s.contracts[pos] = c
	return c, nil
}

func (s *ContractStore) Get(id int) (model.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return model.Contract{}, false
	}
	return s.contracts[pos], true
}

// Snapshot returns a copy of the collection in registration order
func (s *ContractStore) Snapshot() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

// Count returns the number of contracts in the store
func (s *ContractStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}
