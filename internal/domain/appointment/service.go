package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/wardview/wardview/internal/domain/patient"
	"github.com/wardview/wardview/pkg/age"
)

// ErrPatientNotFound is returned by CreateAppointment when the referenced
// patient does not exist. Nothing is inserted in that case.
var ErrPatientNotFound = errors.New("patient not found")

// PatientDirectory resolves patient records for snapshot embedding.
// *patient.Service satisfies it.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id string) (*patient.Patient, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

// CreateAppointment verifies the referenced patient exists, embeds a
// snapshot of the patient with a freshly computed age, prices the visit
// from the clinic and appointment type, and persists the record with
// status Processing. The snapshot and amount are fixed here and never
// recomputed, even if the patient record changes later.
//
// The existence check and the insert are separate document operations;
// a concurrent patient edit between them can produce a stale snapshot,
// which is accepted.
func (s *Service) CreateAppointment(ctx context.Context, input CreateInput) (*Appointment, error) {
	p, err := s.patients.GetPatient(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}

	now := time.Now().UTC()
	appt := &Appointment{
		PatientID:       input.PatientID,
		Clinic:          input.Clinic,
		Title:           input.Title,
		ScheduledTime:   input.ScheduledTime,
		AppointmentType: input.AppointmentType,
		Status:          StatusProcessing,
		Amount:          Amount(input.Clinic, input.AppointmentType),
		DoesNotRepeat:   input.DoesNotRepeat,
		Patient: PatientSnapshot{
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			HospitalID: p.HospitalID,
			Gender:     string(p.Gender),
			Age:        age.At(p.DateOfBirth, now),
			IsNew:      p.IsNew,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// GetAppointment returns the appointment with the given id, or (nil, nil)
// when no such record exists.
func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAppointments returns all appointments ordered by scheduled time,
// soonest first.
func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

// ListAppointmentsByPatient returns a patient's appointments, most recent
// scheduled time first.
func (s *Service) ListAppointmentsByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// UpdateStatus sets the appointment status unconditionally and bumps the
// update timestamp. It returns the updated record, or (nil, nil) when the
// id matches nothing. Transition ordering is not validated.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Appointment, error) {
	return s.repo.UpdateStatus(ctx, id, status, time.Now().UTC())
}

// DeleteAllAppointments clears the collection. Used only by the seeder.
func (s *Service) DeleteAllAppointments(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
