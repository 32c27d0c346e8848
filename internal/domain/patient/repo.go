package patient

import (
	"context"
	"errors"
)

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex
// string. An absent record is not an error: lookups return (nil, nil).
var ErrInvalidID = errors.New("invalid patient id")

type Repository interface {
	Insert(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Search(ctx context.Context, query string) ([]*Patient, error)

	// DeleteAll clears the collection. Used only by the seeder.
	DeleteAll(ctx context.Context) error
}
