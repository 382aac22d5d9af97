package delivery

import "context"

type Repository interface {
	Save(ctx context.Context, d *Delivery) error
	FindLatest(ctx context.Context, recipientID string) (*Delivery, error)
	Ping(ctx context.Context) error
}
