package memstore

import (
	"fmt"
	"sync"

	"github.com/inflink/inflink-escrow-service/internal/domain"
)

// InMemoryContractRepository keeps contracts in a map guarded by a
// single mutex. Insertion order is preserved for listing.
type InMemoryContractRepository struct {
	mu        sync.RWMutex
	contracts map[string]*domain.Contract
	order     []string
}

func NewInMemoryContractRepository() *InMemoryContractRepository {
	return &InMemoryContractRepository{
		contracts: make(map[string]*domain.Contract),
	}
}

func (r *InMemoryContractRepository) CreateContract(contract *domain.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contracts[contract.ID]; exists {
		return fmt.Errorf("%w: contract %s already exists", domain.ErrConflict, contract.ID)
	}
	snapshot := *contract
	r.contracts[contract.ID] = &snapshot
	r.order = append(r.order, contract.ID)
	return nil
}

func (r *InMemoryContractRepository) UpdateContractStatus(contractID string, status domain.ContractStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contract, ok := r.contracts[contractID]
	if !ok {
		return fmt.Errorf("%w: contract %s", domain.ErrNotFound, contractID)
	}
	contract.Status = status
	return nil
}

func (r *InMemoryContractRepository) GetContractByID(contractID string) (*domain.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contract, ok := r.contracts[contractID]
	if !ok {
		return nil, fmt.Errorf("%w: contract %s", domain.ErrNotFound, contractID)
	}
	snapshot := *contract
	return &snapshot, nil
}

func (r *InMemoryContractRepository) GetContractsByParty(partyID string) ([]*domain.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var contracts []*domain.Contract
	for _, id := range r.order {
		contract := r.contracts[id]
		if contract.BrandID == partyID || contract.InfluencerID == partyID {
			snapshot := *contract
			contracts = append(contracts, &snapshot)
		}
	}
	return contracts, nil
}
