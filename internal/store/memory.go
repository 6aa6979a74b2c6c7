package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"routenav/internal/model"
)

// Memory is a simple in-memory store used when no database is configured.
type Memory struct {
	mu         sync.Mutex
	deliveries map[string]model.Delivery
	order      []string // ids in creation order
}

func NewMemory() *Memory {
	return &Memory{deliveries: map[string]model.Delivery{}}
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func (m *Memory) CreateDelivery(ctx context.Context, in model.DeliveryIn) (model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := model.Delivery{
		ID:          uuid.New().String(),
		Start:       in.Start,
		Stops:       append([]string(nil), in.Stops...),
		Status:      model.DeliveryPending,
		PackageSize: in.PackageSize,
		Weather:     in.Weather,
		CreatedAt:   now(),
	}
	if d.PackageSize == "" {
		d.PackageSize = "medium"
	}
	if d.Weather == "" {
		d.Weather = "clear"
	}
	m.deliveries[d.ID] = d
	m.order = append(m.order, d.ID)
	return d, nil
}

func (m *Memory) ListDeliveries(ctx context.Context, status string) ([]model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Delivery{}
	for _, id := range m.order {
		d := m.deliveries[id]
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory) GetDelivery(ctx context.Context, id string) (model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deliveries[id]
	if !ok {
		return model.Delivery{}, ErrNotFound
	}
	return d, nil
}

func (m *Memory) UpdateDelivery(ctx context.Context, id string, patch model.DeliveryPatch) (model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deliveries[id]
	if !ok {
		return model.Delivery{}, ErrNotFound
	}
	if patch.Status != "" {
		d.Status = patch.Status
	}
	if patch.Stops != nil {
		d.Stops = append([]string(nil), patch.Stops...)
	}
	if patch.PackageSize != "" {
		d.PackageSize = patch.PackageSize
	}
	if patch.Weather != "" {
		d.Weather = patch.Weather
	}
	d.UpdatedAt = now()
	m.deliveries[id] = d
	return d, nil
}

func (m *Memory) DeleteDelivery(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deliveries[id]; !ok {
		return ErrNotFound
	}
	delete(m.deliveries, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) SubmitDelivery(ctx context.Context, id string, req model.SubmitRequest) (model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deliveries[id]
	if !ok {
		return model.Delivery{}, ErrNotFound
	}
	d.Status = model.DeliveryCompleted
	d.Recipient = req.RecipientName
	d.Notes = req.DeliveryNotes
	d.Signature = req.Signature
	d.Photo = req.Photo
	d.DeliveredAt = req.DeliveredAt
	if d.DeliveredAt == "" {
		d.DeliveredAt = now()
	}
	d.UpdatedAt = now()
	m.deliveries[id] = d
	return d, nil
}

func (m *Memory) Analytics(ctx context.Context) (model.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := model.Analytics{}
	for _, d := range m.deliveries {
		a.TotalDeliveries++
		switch d.Status {
		case model.DeliveryCompleted:
			a.Completed++
		case model.DeliveryInProgress:
			a.InProgress++
		default:
			a.Pending++
		}
	}
	if a.TotalDeliveries > 0 {
		a.CompletionRate = float64(a.Completed) / float64(a.TotalDeliveries) * 100
	}
	return a, nil
}
