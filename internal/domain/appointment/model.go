package appointment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status tracks an appointment through the visit pipeline. The store does
// not enforce transition ordering; any value may be set by an update.
type Status string

const (
	StatusProcessing     Status = "Processing"
	StatusNotArrived     Status = "Not arrived"
	StatusAwaitingVitals Status = "Awaiting vitals"
	StatusAwaitingDoctor Status = "Awaiting doctor"
	StatusAdmitted       Status = "Admitted to ward"
	StatusTransferredAE  Status = "Transferred to A&E"
	StatusSeenDoctor     Status = "Seen doctor"
)

// Type is the coded appointment category, distinct from the free-text
// title shown to users.
type Type string

const (
	TypeNew         Type = "New"
	TypeFollowUp    Type = "Follow-up"
	TypeEmergency   Type = "Emergency"
	TypeWalkIn      Type = "Walk-in"
	TypeReferral    Type = "Referral"
	TypeConsult     Type = "Consult"
	TypeMedicalExam Type = "Medical Exam"
)

// PatientSnapshot is the subset of patient fields copied into an
// appointment at creation time. It is a point-in-time record and is never
// refreshed when the source patient changes.
type PatientSnapshot struct {
	FirstName  string `bson:"firstName" json:"firstName"`
	LastName   string `bson:"lastName" json:"lastName"`
	HospitalID string `bson:"hospitalId" json:"hospitalId"`
	Gender     string `bson:"gender" json:"gender"`
	Age        string `bson:"age" json:"age"`
	IsNew      bool   `bson:"isNew" json:"isNew"`
}

// Appointment maps to the appointments collection.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PatientID       string             `bson:"patientId" json:"patientId"`
	Clinic          string             `bson:"clinic" json:"clinic"`
	Title           string             `bson:"title" json:"title"`
	ScheduledTime   time.Time          `bson:"scheduledTime" json:"scheduledTime"`
	AppointmentType Type               `bson:"appointmentType" json:"appointmentType"`
	Status          Status             `bson:"status" json:"status"`
	Amount          int                `bson:"amount" json:"amount"`
	DoesNotRepeat   bool               `bson:"doesNotRepeat" json:"doesNotRepeat"`
	Patient         PatientSnapshot    `bson:"patient" json:"patient"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateInput holds the caller-supplied fields for a new appointment.
type CreateInput struct {
	PatientID       string
	Clinic          string
	Title           string
	ScheduledTime   time.Time
	AppointmentType Type
	DoesNotRepeat   bool
}

// Clinics is the conventional clinic list offered by the dashboard. The
// clinic field itself is free-form; unknown names fall back to the default
// base price.
var Clinics = []string{
	"Accident and Emergency",
	"Neurology",
	"Cardiology",
	"Gastroenterology",
	"Renal",
}
