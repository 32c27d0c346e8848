package patient

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[string]*Patient
	order    []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[string]*Patient)}
}

func (m *mockRepo) Insert(_ context.Context, p *Patient) error {
	p.ID = primitive.NewObjectID()
	m.patients[p.ID.Hex()] = p
	m.order = append(m.order, p.ID.Hex())
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	return m.patients[id], nil
}

func (m *mockRepo) List(_ context.Context) ([]*Patient, error) {
	result := []*Patient{}
	for i := len(m.order) - 1; i >= 0; i-- {
		result = append(result, m.patients[m.order[i]])
	}
	return result, nil
}

func (m *mockRepo) Search(_ context.Context, query string) ([]*Patient, error) {
	q := strings.ToLower(query)
	result := []*Patient{}
	for _, id := range m.order {
		p := m.patients[id]
		if strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.HospitalID), q) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) DeleteAll(_ context.Context) error {
	m.patients = make(map[string]*Patient)
	m.order = nil
	return nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestCreatePatient(t *testing.T) {
	svc := newTestService()

	p, err := svc.CreatePatient(context.Background(), CreateInput{
		FirstName:   "Ada",
		LastName:    "Obi",
		Title:       "Mrs",
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:      GenderFemale,
		PhoneNumber: "+2348012345678",
		IsNew:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID.IsZero() {
		t.Error("expected ID to be set")
	}
	if !strings.HasPrefix(p.HospitalID, "HOSP") {
		t.Errorf("expected hospital id with HOSP prefix, got %s", p.HospitalID)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Error("expected createdAt and updatedAt to match on create")
	}
}

func TestCreatePatient_DistinctHospitalIDs(t *testing.T) {
	svc := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p, err := svc.CreatePatient(context.Background(), CreateInput{
			FirstName: "A", LastName: "B", Gender: GenderMale,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[p.HospitalID] {
			t.Fatalf("duplicate hospital id %s", p.HospitalID)
		}
		seen[p.HospitalID] = true
	}
}

func TestGetPatient(t *testing.T) {
	svc := newTestService()

	created, _ := svc.CreatePatient(context.Background(), CreateInput{
		FirstName: "Ada", LastName: "Obi", Gender: GenderFemale,
	})

	fetched, err := svc.GetPatient(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched == nil || fetched.FirstName != "Ada" {
		t.Errorf("expected Ada, got %+v", fetched)
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	svc := newTestService()

	p, err := svc.GetPatient(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for unknown id, got %+v", p)
	}
}

func TestGetPatient_InvalidID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetPatient(context.Background(), "not-a-hex-id")
	if err != ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestListPatients_NewestFirst(t *testing.T) {
	svc := newTestService()

	svc.CreatePatient(context.Background(), CreateInput{FirstName: "First", LastName: "X", Gender: GenderMale})
	svc.CreatePatient(context.Background(), CreateInput{FirstName: "Second", LastName: "Y", Gender: GenderMale})

	patients, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(patients))
	}
	if patients[0].FirstName != "Second" {
		t.Errorf("expected newest first, got %s", patients[0].FirstName)
	}
}

func TestSearchPatients_CaseInsensitive(t *testing.T) {
	svc := newTestService()

	svc.CreatePatient(context.Background(), CreateInput{FirstName: "Adaeze", LastName: "Obi", Gender: GenderFemale})
	svc.CreatePatient(context.Background(), CreateInput{FirstName: "John", LastName: "Adamu", Gender: GenderMale})
	svc.CreatePatient(context.Background(), CreateInput{FirstName: "Mary", LastName: "Bello", Gender: GenderFemale})

	results, err := svc.SearchPatients(context.Background(), "ADA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 matches for ADA, got %d", len(results))
	}
}

func TestSearchPatients_EmptyQueryMatchesAll(t *testing.T) {
	svc := newTestService()

	svc.CreatePatient(context.Background(), CreateInput{FirstName: "A", LastName: "B", Gender: GenderMale})
	svc.CreatePatient(context.Background(), CreateInput{FirstName: "C", LastName: "D", Gender: GenderFemale})

	results, err := svc.SearchPatients(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected all patients for empty query, got %d", len(results))
	}
}

func TestDeleteAllPatients(t *testing.T) {
	svc := newTestService()

	svc.CreatePatient(context.Background(), CreateInput{FirstName: "A", LastName: "B", Gender: GenderMale})
	if err := svc.DeleteAllPatients(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patients, _ := svc.ListPatients(context.Background())
	if len(patients) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(patients))
	}
}
