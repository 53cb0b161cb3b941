package repository

import (
	"context"
	"sync"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"
)

// MemoryStepStore is a process-local IStepStore.
type MemoryStepStore struct {
	mu    sync.RWMutex
	steps map[string][]entities.ProvisioningStep
}

var _ interfaces.IStepStore = (*MemoryStepStore)(nil)

func NewMemoryStepStore() *MemoryStepStore {
	return &MemoryStepStore{steps: map[string][]entities.ProvisioningStep{}}
}

func (s *MemoryStepStore) Get(_ context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.steps[ref.Channel()]
	if !ok {
		return nil, nil
	}
	out := make([]entities.ProvisioningStep, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *MemoryStepStore) Put(_ context.Context, ref entities.EntityRef, steps []entities.ProvisioningStep) error {
	out := make([]entities.ProvisioningStep, len(steps))
	copy(out, steps)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[ref.Channel()] = out
	return nil
}
