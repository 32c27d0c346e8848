// Package seed provides synthetic hospital data generation for demo and
// development environments. It produces reproducible patients and
// appointments through the same services the HTTP API uses, so seeded
// records carry real hospital numbers, snapshots, and billing amounts.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/wardview/wardview/internal/domain/appointment"
	"github.com/wardview/wardview/internal/domain/patient"
)

// Config controls the volume and shape of generated synthetic data.
type Config struct {
	PatientCount           int
	AppointmentsPerPatient int
	Seed                   int64
}

// DefaultConfig returns a Config with sensible demo defaults.
func DefaultConfig() Config {
	return Config{
		PatientCount:           25,
		AppointmentsPerPatient: 3,
	}
}

// Result summarizes the output of a seed run.
type Result struct {
	Patients     int
	Appointments int
	Duration     time.Duration
}

var (
	firstNamesMale = []string{
		"James", "Robert", "John", "Michael", "David", "William", "Richard",
		"Joseph", "Thomas", "Christopher", "Daniel", "Matthew", "Anthony",
		"Mark", "Steven", "Andrew", "Joshua", "Kevin", "Brian", "Timothy",
		"Jason", "Ryan", "Jacob", "Eric", "Jonathan", "Stephen", "Justin",
		"Scott", "Brandon", "Benjamin", "Samuel", "Gregory", "Alexander",
		"Patrick", "Jack", "Dennis", "Tyler", "Chidi", "Emeka", "Tunde",
	}
	firstNamesFemale = []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Susan",
		"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Margaret", "Sandra",
		"Ashley", "Kimberly", "Emily", "Donna", "Michelle", "Amanda",
		"Melissa", "Stephanie", "Rebecca", "Laura", "Kathleen", "Amy",
		"Angela", "Anna", "Brenda", "Emma", "Nicole", "Samantha",
		"Katherine", "Christine", "Rachel", "Janet", "Catherine", "Maria",
		"Heather", "Ngozi", "Amara",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Wilson", "Anderson", "Thomas", "Taylor",
		"Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris",
		"Clark", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
		"Wright", "Scott", "Hill", "Green", "Adams", "Nelson", "Baker",
		"Hall", "Campbell", "Mitchell", "Carter", "Roberts", "Okafor",
		"Adeyemi", "Eze", "Balogun",
	}
	titles = []string{"Mr", "Mrs", "Miss", "Dr", "Master"}

	appointmentTitles = []string{
		"Routine checkup", "Lab results review", "Specialist referral",
		"Post-op review", "Vaccination", "Blood pressure check",
		"Annual physical", "Consultation", "Dressing change",
		"Medication review",
	}
	statuses = []appointment.Status{
		appointment.StatusNotArrived,
		appointment.StatusAwaitingVitals,
		appointment.StatusAwaitingDoctor,
		appointment.StatusAdmitted,
		appointment.StatusTransferredAE,
		appointment.StatusSeenDoctor,
	}
	appointmentTypes = []appointment.Type{
		appointment.TypeNew,
		appointment.TypeFollowUp,
		appointment.TypeEmergency,
		appointment.TypeWalkIn,
		appointment.TypeReferral,
		appointment.TypeConsult,
		appointment.TypeMedicalExam,
	}
)

// Seeder generates synthetic patients and appointments.
type Seeder struct {
	config       Config
	patients     *patient.Service
	appointments *appointment.Service
	rng          *rand.Rand
}

// NewSeeder returns a Seeder backed by the given services. If config.Seed is
// 0 a time-based seed is chosen.
func NewSeeder(config Config, patients *patient.Service, appointments *appointment.Service) *Seeder {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		config:       config,
		patients:     patients,
		appointments: appointments,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (s *Seeder) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func (s *Seeder) randomPhone() string {
	return fmt.Sprintf("+1%03d%03d%04d",
		200+s.rng.Intn(800),
		200+s.rng.Intn(800),
		s.rng.Intn(10000),
	)
}

func (s *Seeder) randomBirthDate() time.Time {
	year := 1940 + s.rng.Intn(80)
	month := 1 + s.rng.Intn(12)
	day := 1 + s.rng.Intn(28) // safe for all months
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func (s *Seeder) randomScheduledTime() time.Time {
	// Upcoming appointments only, within the next 30 days.
	offset := time.Duration(1+s.rng.Intn(30*24)) * time.Hour
	return time.Now().UTC().Add(offset).Truncate(time.Minute)
}

func (s *Seeder) generatePatientInput() patient.CreateInput {
	var firstName string
	var gender patient.Gender
	if s.rng.Intn(2) == 0 {
		firstName = s.pick(firstNamesMale)
		gender = patient.GenderMale
	} else {
		firstName = s.pick(firstNamesFemale)
		gender = patient.GenderFemale
	}
	return patient.CreateInput{
		FirstName:   firstName,
		LastName:    s.pick(lastNames),
		Title:       s.pick(titles),
		DateOfBirth: s.randomBirthDate(),
		Gender:      gender,
		PhoneNumber: s.randomPhone(),
		IsNew:       s.rng.Intn(3) == 0,
	}
}

func (s *Seeder) generateAppointmentInput(patientID string) appointment.CreateInput {
	return appointment.CreateInput{
		PatientID:       patientID,
		Clinic:          s.pick(appointment.Clinics),
		Title:           s.pick(appointmentTitles),
		ScheduledTime:   s.randomScheduledTime(),
		AppointmentType: appointmentTypes[s.rng.Intn(len(appointmentTypes))],
		DoesNotRepeat:   true,
	}
}

// Run clears both collections and inserts fresh synthetic data. Appointments
// go through the appointment service so each one carries a patient snapshot
// and a computed amount.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := s.appointments.DeleteAllAppointments(ctx); err != nil {
		return nil, fmt.Errorf("clear appointments: %w", err)
	}
	if err := s.patients.DeleteAllPatients(ctx); err != nil {
		return nil, fmt.Errorf("clear patients: %w", err)
	}

	result := &Result{}
	for i := 0; i < s.config.PatientCount; i++ {
		p, err := s.patients.CreatePatient(ctx, s.generatePatientInput())
		if err != nil {
			return nil, fmt.Errorf("seed patient %d: %w", i, err)
		}
		result.Patients++

		count := 1 + s.rng.Intn(s.config.AppointmentsPerPatient)
		for j := 0; j < count; j++ {
			appt, err := s.appointments.CreateAppointment(ctx, s.generateAppointmentInput(p.ID.Hex()))
			if err != nil {
				return nil, fmt.Errorf("seed appointment for %s: %w", p.HospitalID, err)
			}
			result.Appointments++

			// Leave roughly half in Processing, move the rest along the
			// pipeline so seeded data shows every status.
			if s.rng.Intn(2) == 0 {
				status := statuses[s.rng.Intn(len(statuses))]
				if _, err := s.appointments.UpdateStatus(ctx, appt.ID.Hex(), status); err != nil {
					return nil, fmt.Errorf("seed status for %s: %w", p.HospitalID, err)
				}
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}
