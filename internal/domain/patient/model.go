package patient

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender is the patient gender enum.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Patient maps to the patients collection.
type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	HospitalID  string             `bson:"hospitalId" json:"hospitalId"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	MiddleName  string             `bson:"middleName,omitempty" json:"middleName,omitempty"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Title       string             `bson:"title" json:"title"`
	DateOfBirth time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender      Gender             `bson:"gender" json:"gender"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	IsNew       bool               `bson:"isNew" json:"isNew"`
	Picture     string             `bson:"picture,omitempty" json:"picture,omitempty"`
	Fingerprint string             `bson:"fingerprint,omitempty" json:"fingerprint,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateInput holds the caller-supplied fields for a new patient record.
type CreateInput struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Title       string
	DateOfBirth time.Time
	Gender      Gender
	PhoneNumber string
	IsNew       bool
	Picture     string
	Fingerprint string
}

// NewHospitalID generates a human-facing patient identifier: "HOSP"
// followed by the current time in milliseconds and a random suffix.
// Uniqueness is not enforced; the collision probability is accepted
// as negligible.
func NewHospitalID() string {
	return fmt.Sprintf("HOSP%d%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
