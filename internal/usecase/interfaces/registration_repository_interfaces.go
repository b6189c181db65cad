package interfaces

import (
	"context"
	"mbg_backend/internal/domain/entities"
)

// IEventRegistrationRepository abstracts DynamoDB persistence for EventRegistration.
// The payment subsystem only reads identity fields and writes the status back on
// successful payment.

type IEventRegistrationRepository interface {
	Create(ctx context.Context, r entities.EventRegistration) (entities.EventRegistration, error)
	GetByID(ctx context.Context, id string) (entities.EventRegistration, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.EventRegistration, error)
	UpdateStatus(ctx context.Context, id string, status entities.RegistrationStatus) (entities.EventRegistration, error)
}

// IProgramRegistrationRepository abstracts DynamoDB persistence for ProgramRegistration.

type IProgramRegistrationRepository interface {
	Create(ctx context.Context, r entities.ProgramRegistration) (entities.ProgramRegistration, error)
	GetByID(ctx context.Context, id string) (entities.ProgramRegistration, error)
	ListByProgramID(ctx context.Context, programID string) ([]entities.ProgramRegistration, error)
	SetPaid(ctx context.Context, id string, paid bool) (entities.ProgramRegistration, error)
}
