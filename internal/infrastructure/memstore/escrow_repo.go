package memstore

import (
	"fmt"
	"sync"

	"github.com/inflink/inflink-escrow-service/internal/domain"
)

// InMemoryEscrowRepository mirrors the postgres repository's contract:
// atomic create of transaction plus milestones, snapshot reads.
type InMemoryEscrowRepository struct {
	mu      sync.RWMutex
	escrows map[string]*domain.EscrowTransaction
	order   []string
}

func NewInMemoryEscrowRepository() *InMemoryEscrowRepository {
	return &InMemoryEscrowRepository{
		escrows: make(map[string]*domain.EscrowTransaction),
	}
}

func (r *InMemoryEscrowRepository) CreateEscrow(tx *domain.EscrowTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.escrows[tx.ID]; exists {
		return fmt.Errorf("%w: escrow %s already exists", domain.ErrConflict, tx.ID)
	}
	r.escrows[tx.ID] = copyEscrow(tx)
	r.order = append(r.order, tx.ID)
	return nil
}

func (r *InMemoryEscrowRepository) UpdateEscrow(tx *domain.EscrowTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.escrows[tx.ID]
	if !ok {
		return fmt.Errorf("%w: escrow %s", domain.ErrNotFound, tx.ID)
	}
	stored.Status = tx.Status
	stored.DisputeReason = tx.DisputeReason
	stored.ReleaseDate = tx.ReleaseDate
	stored.UpdatedAt = tx.UpdatedAt
	return nil
}

func (r *InMemoryEscrowRepository) UpdateMilestone(milestone *domain.Milestone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	escrow, ok := r.escrows[milestone.EscrowID]
	if !ok {
		return fmt.Errorf("%w: escrow %s", domain.ErrNotFound, milestone.EscrowID)
	}
	stored := escrow.FindMilestone(milestone.ID)
	if stored == nil {
		return fmt.Errorf("%w: milestone %s", domain.ErrNotFound, milestone.ID)
	}
	stored.Status = milestone.Status
	stored.Evidence = milestone.Evidence
	return nil
}

func (r *InMemoryEscrowRepository) GetEscrowByID(escrowID string) (*domain.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	escrow, ok := r.escrows[escrowID]
	if !ok {
		return nil, fmt.Errorf("%w: escrow %s", domain.ErrNotFound, escrowID)
	}
	return copyEscrow(escrow), nil
}

func (r *InMemoryEscrowRepository) GetActiveEscrowByContractID(contractID string) (*domain.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		escrow := r.escrows[id]
		if escrow.ContractID == contractID && !escrow.Status.IsTerminal() {
			return copyEscrow(escrow), nil
		}
	}
	return nil, fmt.Errorf("%w: no active escrow for contract %s", domain.ErrNotFound, contractID)
}

func (r *InMemoryEscrowRepository) GetEscrowsByParty(partyID string) ([]*domain.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var escrows []*domain.EscrowTransaction
	for _, id := range r.order {
		escrow := r.escrows[id]
		if escrow.BrandID == partyID || escrow.InfluencerID == partyID {
			escrows = append(escrows, copyEscrow(escrow))
		}
	}
	return escrows, nil
}

func copyEscrow(tx *domain.EscrowTransaction) *domain.EscrowTransaction {
	snapshot := *tx
	snapshot.Milestones = make([]*domain.Milestone, len(tx.Milestones))
	for i, m := range tx.Milestones {
		milestone := *m
		snapshot.Milestones[i] = &milestone
	}
	if tx.ReleaseDate != nil {
		releaseDate := *tx.ReleaseDate
		snapshot.ReleaseDate = &releaseDate
	}
	return &snapshot
}
