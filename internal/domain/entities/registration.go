package entities

import "time"

// RegistrationStatus is the event registration lifecycle. The payment subsystem
// only ever writes confirmed (on successful payment); the rest belong to the
// registration flow.

type RegistrationStatus string

const (
	RegistrationStatusPending     RegistrationStatus = "pending"
	RegistrationStatusConfirmed   RegistrationStatus = "confirmed"
	RegistrationStatusCancelled   RegistrationStatus = "cancelled"
	RegistrationStatusWaitingList RegistrationStatus = "waiting_list"
)

// EventRegistration is one person signed up for one event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI event_id-index (PK: event_id)

type EventRegistration struct {
	ID              string             `json:"id"`
	EventID         string             `json:"event_id"`
	FullName        string             `json:"full_name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Company         string             `json:"company,omitempty"`
	JobTitle        string             `json:"job_title,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	ExperienceLevel string             `json:"experience_level,omitempty"`
	Goals           string             `json:"goals,omitempty"`
	HeardAbout      string             `json:"heard_about,omitempty"`
	Status          RegistrationStatus `json:"status"`
	RegisteredAt    time.Time          `json:"registered_at"`
}

// ProgramRegistration is one person signed up for one training program.
// Programs track payment with a plain paid flag instead of a status enum.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI program_id-index (PK: program_id)

type ProgramRegistration struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"program_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Paid         bool      `json:"paid"`
	RegisteredAt time.Time `json:"registered_at"`
}
