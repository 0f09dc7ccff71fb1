package memory

import (
	"context"
	"sync"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase/interfaces"
)

// ServiceOrderRepository is an in-memory OS store with the same version and
// stage guards as the DynamoDB repository. Used for local runs
// (STORE_BACKEND=memory) and tests.
type ServiceOrderRepository struct {
	mu     sync.RWMutex
	now    func() time.Time
	orders map[string]entities.ServiceOrder
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository(seed ...entities.ServiceOrder) *ServiceOrderRepository {
	r := &ServiceOrderRepository{
		now:    func() time.Time { return time.Now().UTC() },
		orders: make(map[string]entities.ServiceOrder, len(seed)),
	}
	for _, o := range seed {
		r.orders[o.ID] = cloneOrder(o)
	}
	return r
}

func (r *ServiceOrderRepository) ListByStatus(_ context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var results []entities.ServiceOrder
	for _, o := range r.orders {
		if o.Status != status {
			continue
		}
		results = append(results, cloneOrder(o))
	}
	return results, nil
}

// GetByID returns an empty ServiceOrder when id is unknown.
func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.ServiceOrder{}, nil
	}
	return cloneOrder(o), nil
}

func (r *ServiceOrderRepository) Update(_ context.Context, id string, fields entities.ServiceOrderUpdate, expectedVersion int64) (entities.ServiceOrder, error) {
	if fields.IsEmpty() {
		return entities.ServiceOrder{}, interfaces.ErrEmptyUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[id]
	if !ok {
		return entities.ServiceOrder{}, interfaces.ErrServiceOrderNotFound
	}
	if existing.Version != expectedVersion {
		return entities.ServiceOrder{}, interfaces.ErrVersionConflict
	}
	updated := fields.Apply(existing)
	updated.Version++
	updated.UpdatedAt = r.now()
	r.orders[id] = cloneOrder(updated)
	return updated, nil
}

func (r *ServiceOrderRepository) AdvanceStage(_ context.Context, id string, from, to entities.OSStatus) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[id]
	if !ok {
		return entities.ServiceOrder{}, interfaces.ErrServiceOrderNotFound
	}
	if existing.Status != from {
		return entities.ServiceOrder{}, interfaces.ErrStageNotEligible
	}
	existing.Status = to
	existing.Version++
	existing.UpdatedAt = r.now()
	r.orders[id] = existing
	return cloneOrder(existing), nil
}

// Put inserts or replaces an OS as-is. Intended for seeding.
func (r *ServiceOrderRepository) Put(o entities.ServiceOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = cloneOrder(o)
}

func cloneOrder(o entities.ServiceOrder) entities.ServiceOrder {
	o.DataCompromissada = cloneTime(o.DataCompromissada)
	o.DataInicioPrevista = cloneTime(o.DataInicioPrevista)
	o.DataFimPrevista = cloneTime(o.DataFimPrevista)
	return o
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
