// Package memory provides an in-memory store.Store for testing and dev.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/pto-engine/pto"
	"github.com/warp/pto-engine/store"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	vacations map[string]pto.VacationRequest
	snapshots []snapshotRecord
}

type snapshotRecord struct {
	exportDate pto.Date
	raw        []byte
}

func NewMemory() *Memory {
	return &Memory{
		vacations: make(map[string]pto.VacationRequest),
	}
}

func (m *Memory) SaveVacation(_ context.Context, v pto.VacationRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vacations[v.ID] = v
	return nil
}

func (m *Memory) GetVacation(_ context.Context, id string) (pto.VacationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vacations[id]
	if !ok {
		return pto.VacationRequest{}, store.ErrNotFound
	}
	return v, nil
}

func (m *Memory) ListVacations(_ context.Context) ([]pto.VacationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]pto.VacationRequest, 0, len(m.vacations))
	for _, v := range m.vacations {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *Memory) DeleteVacation(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vacations[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.vacations, id)
	return nil
}

func (m *Memory) SaveSnapshot(_ context.Context, exportDate pto.Date, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.snapshots = append(m.snapshots, snapshotRecord{exportDate: exportDate, raw: cp})
	return nil
}

func (m *Memory) LatestSnapshot(_ context.Context) ([]byte, pto.Date, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.snapshots) == 0 {
		return nil, pto.Date{}, store.ErrNotFound
	}
	last := m.snapshots[len(m.snapshots)-1]
	cp := make([]byte, len(last.raw))
	copy(cp, last.raw)
	return cp, last.exportDate, nil
}

func (m *Memory) Close() error { return nil }
