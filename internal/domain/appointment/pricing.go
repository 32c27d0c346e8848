package appointment

import (
	"math"
	"strings"
)

// Base consultation prices by clinic, in naira. Lookup is by lowercased
// clinic name; clinics not in the table bill at defaultBasePrice.
var basePrices = map[string]int{
	"neurology":              90000,
	"cardiology":             150000,
	"gastroenterology":       120000,
	"renal":                  110000,
	"accident and emergency": 100000,
	"general":                50000,
}

const defaultBasePrice = 100000

// Price multipliers by appointment type. Lookup is exact-case; unknown
// types bill at the base price.
var typeMultipliers = map[Type]float64{
	TypeNew:         1.0,
	TypeFollowUp:    0.8,
	TypeEmergency:   1.5,
	TypeWalkIn:      1.0,
	TypeReferral:    1.0,
	TypeConsult:     1.2,
	TypeMedicalExam: 1.0,
}

// Amount computes the appointment price for a clinic and appointment type,
// rounded to the nearest whole amount.
func Amount(clinic string, appointmentType Type) int {
	base, ok := basePrices[strings.ToLower(clinic)]
	if !ok {
		base = defaultBasePrice
	}
	multiplier, ok := typeMultipliers[appointmentType]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(float64(base) * multiplier))
}
