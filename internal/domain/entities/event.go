package entities

import "time"

// EventStatus mirrors the site's event publication states.

type EventStatus string

const (
	EventStatusOpen      EventStatus = "open"
	EventStatusClosed    EventStatus = "closed"
	EventStatusInvite    EventStatus = "invite"
	EventStatusEarlyBird EventStatus = "early_bird"
	EventStatusCompleted EventStatus = "completed"
)

// Event is a bookable event (workshop, intensive, etc).
//
// Storage model (DynamoDB):
//   - PK: id
//
// InvestmentAmount/Currency are the pricing source copied into a payment at
// registration time; IsFree events skip payment entirely.

type Event struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Category          string      `json:"category,omitempty"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date,omitempty"`
	Location          string      `json:"location"`
	ParticipantsLimit int         `json:"participants_limit"`
	Duration          string      `json:"duration,omitempty"`
	Description       string      `json:"description"`
	InvestmentAmount  float64     `json:"investment_amount"`
	Currency          string      `json:"currency"`
	IsFree            bool        `json:"is_free"`
	Status            EventStatus `json:"status"`
	RegistrationOpen  bool        `json:"registration_open"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
