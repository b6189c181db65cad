package response

import (
	"time"

	"mbg_backend/internal/domain/entities"
)

type EventResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Category          string    `json:"category,omitempty"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date,omitempty"`
	Location          string    `json:"location"`
	ParticipantsLimit int       `json:"participants_limit"`
	Duration          string    `json:"duration,omitempty"`
	Description       string    `json:"description"`
	InvestmentAmount  float64   `json:"investment_amount"`
	Currency          string    `json:"currency"`
	IsFree            bool      `json:"is_free"`
	Status            string    `json:"status"`
	RegistrationOpen  bool      `json:"registration_open"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromEvent(e entities.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Category:          e.Category,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		Location:          e.Location,
		ParticipantsLimit: e.ParticipantsLimit,
		Duration:          e.Duration,
		Description:       e.Description,
		InvestmentAmount:  e.InvestmentAmount,
		Currency:          e.Currency,
		IsFree:            e.IsFree,
		Status:            string(e.Status),
		RegistrationOpen:  e.RegistrationOpen,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromEvents(events []entities.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromEvent(e))
	}
	return out
}
