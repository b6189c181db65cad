package response

import (
	"time"

	"mbg_backend/internal/domain/entities"
)

type EventRegistrationResponse struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

func FromEventRegistration(r entities.EventRegistration) EventRegistrationResponse {
	return EventRegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt,
	}
}

func FromEventRegistrations(regs []entities.EventRegistration) []EventRegistrationResponse {
	out := make([]EventRegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, FromEventRegistration(r))
	}
	return out
}

type ProgramRegistrationResponse struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"program_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Paid         bool      `json:"paid"`
	RegisteredAt time.Time `json:"registered_at"`
}

func FromProgramRegistration(r entities.ProgramRegistration) ProgramRegistrationResponse {
	return ProgramRegistrationResponse{
		ID:           r.ID,
		ProgramID:    r.ProgramID,
		FullName:     r.FullName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Paid:         r.Paid,
		RegisteredAt: r.RegisteredAt,
	}
}
