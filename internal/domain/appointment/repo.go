package appointment

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex
// string. An absent record is not an error: lookups return (nil, nil).
var ErrInvalidID = errors.New("invalid appointment id")

type Repository interface {
	Insert(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)

	// List returns all appointments ordered by scheduled time ascending;
	// ListByPatient orders descending. The orders differ deliberately:
	// the dashboard list reads soonest-first while a patient's history
	// reads latest-first.
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)

	// UpdateStatus atomically sets the status and update timestamp and
	// returns the updated record, or (nil, nil) when the id matches
	// nothing.
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (*Appointment, error)

	// DeleteAll clears the collection. Used only by the seeder.
	DeleteAll(ctx context.Context) error
}
