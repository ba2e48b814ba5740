package flowstore

import (
	"sync"

	"shopfront/internal/domain/checkout"

	"github.com/google/uuid"
)

// Memory keeps checkout wizard state per owner. The wizard is ephemeral by
// design: restarting the process resets every in-flight checkout to the
// beginning, which is safe because nothing is persisted before payment.
type Memory struct {
	mu    sync.Mutex
	flows map[uuid.UUID]*checkout.Flow
}

func NewMemory() *Memory {
	return &Memory{flows: make(map[uuid.UUID]*checkout.Flow)}
}

func (m *Memory) Get(ownerID uuid.UUID) *checkout.Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flows[ownerID]
}

func (m *Memory) Save(ownerID uuid.UUID, f *checkout.Flow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flows[ownerID] = f
}

func (m *Memory) Delete(ownerID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, ownerID)
}
