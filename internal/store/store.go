package store

import (
	"context"
	"errors"

	"routenav/internal/model"
)

// Store is the persistence interface used by the API server. The in-memory
// implementation is the only one wired today; the interface leaves room for
// a database-backed one.
type Store interface {
	CreateDelivery(ctx context.Context, in model.DeliveryIn) (model.Delivery, error)
	ListDeliveries(ctx context.Context, status string) ([]model.Delivery, error)
	GetDelivery(ctx context.Context, id string) (model.Delivery, error)
	UpdateDelivery(ctx context.Context, id string, patch model.DeliveryPatch) (model.Delivery, error)
	DeleteDelivery(ctx context.Context, id string) error
	SubmitDelivery(ctx context.Context, id string, req model.SubmitRequest) (model.Delivery, error)
	Analytics(ctx context.Context) (model.Analytics, error)
}

var ErrNotFound = errors.New("not found")
