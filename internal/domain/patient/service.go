package patient

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreatePatient persists a new patient record with a generated hospital id
// and creation/update timestamps, and returns the stored record.
func (s *Service) CreatePatient(ctx context.Context, input CreateInput) (*Patient, error) {
	now := time.Now().UTC()
	p := &Patient{
		HospitalID:  NewHospitalID(),
		FirstName:   input.FirstName,
		MiddleName:  input.MiddleName,
		LastName:    input.LastName,
		Title:       input.Title,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		PhoneNumber: input.PhoneNumber,
		IsNew:       input.IsNew,
		Picture:     input.Picture,
		Fingerprint: input.Fingerprint,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPatient returns the patient with the given id, or (nil, nil) when no
// such record exists.
func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPatients returns all patients, most recently created first.
func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// SearchPatients returns patients whose first name, last name or hospital
// id contains the query, case-insensitively. An empty query matches all.
func (s *Service) SearchPatients(ctx context.Context, query string) ([]*Patient, error) {
	return s.repo.Search(ctx, query)
}

// DeleteAllPatients clears the collection. Used only by the seeder.
func (s *Service) DeleteAllPatients(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
