package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentWaived   PaymentStatus = "waived"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentWaived, PaymentRefunded:
		return true
	}
	return false
}

type Registration struct {
	ID                 uuid.UUID
	TournamentID       uuid.UUID
	PlayerID           uuid.UUID
	RegistrationStatus RegistrationStatus
	PaymentStatus      PaymentStatus
	// SeedNumber is zero until the bracket is seeded.
	SeedNumber       int
	RegistrationDate time.Time
}

// Seedable reports whether the registration takes a slot in the bracket.
func (r Registration) Seedable() bool {
	if r.RegistrationStatus != RegistrationConfirmed {
		return false
	}
	return r.PaymentStatus == PaymentPaid || r.PaymentStatus == PaymentWaived
}
