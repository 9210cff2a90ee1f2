package request_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
)

// memStore is an in-memory RequestRepository whose ApplyTransition is a
// compare-and-swap under one lock, the same contract as the SQL conditional update.
type memStore struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]model.RequestEntity
}

func newMemStore() *memStore {
	return &memStore{rows: map[uint64]model.RequestEntity{}}
}

func (m *memStore) Create(_ context.Context, req *model.RequestEntity) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	row := *req
	row.ID = m.nextID
	row.CreatedAt = time.Now()
	m.rows[row.ID] = row
	return row.ID, nil
}

func (m *memStore) GetByID(_ context.Context, id uint64) (*model.RequestEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memStore) List(_ context.Context, filter *model.RequestFilter) ([]*model.RequestEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.RequestEntity{}
	for id := m.nextID; id >= 1; id-- {
		row, ok := m.rows[id]
		if !ok {
			continue
		}
		if filter.ClientID != 0 && row.ClientID != filter.ClientID {
			continue
		}
		if filter.VisibleToMechanicID != 0 && row.Status != constant.RequestStatusPending &&
			(row.MechanicID == nil || *row.MechanicID != filter.VisibleToMechanicID) {
			continue
		}
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		r := row
		out = append(out, &r)
	}
	return out, nil
}

func (m *memStore) ApplyTransition(_ context.Context, t *model.RequestTransition) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[t.RequestID]
	if !ok || !slices.Contains(t.From, row.Status) {
		return false, nil
	}
	if t.ClientID != nil && row.ClientID != *t.ClientID {
		return false, nil
	}
	if t.MechanicID != nil && (row.MechanicID == nil || *row.MechanicID != *t.MechanicID) {
		return false, nil
	}

	row.Status = t.To
	if t.AssignMechanicID != nil {
		id := *t.AssignMechanicID
		row.MechanicID = &id
	}
	if t.EstimatedCost != nil {
		row.EstimatedCost = t.EstimatedCost
	}
	if t.MechanicNote != nil {
		row.MechanicNote = t.MechanicNote
	}
	if t.FinalCost != nil {
		row.FinalCost = t.FinalCost
	} else if t.FinalCostFromEstimate {
		row.FinalCost = row.EstimatedCost
	}
	if t.CancelledBy != nil {
		row.CancelledBy = t.CancelledBy
	}
	if t.CancelReason != nil {
		row.CancelReason = t.CancelReason
	}
	now := time.Now()
	row.UpdatedAt = &now
	m.rows[row.ID] = row
	return true, nil
}

func (m *memStore) Stats(context.Context) (*model.PlatformStats, error) {
	return &model.PlatformStats{}, nil
}

// publishLog records published events.
type publishLog struct {
	mu     sync.Mutex
	events []model.RequestStatusEvent
}

func (p *publishLog) PublishRequestStatus(_ context.Context, event model.RequestStatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *publishLog) statuses() []constant.RequestStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]constant.RequestStatus, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Status)
	}
	return out
}
