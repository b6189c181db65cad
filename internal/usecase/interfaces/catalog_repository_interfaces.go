package interfaces

import (
	"context"
	"mbg_backend/internal/domain/entities"
)

// IEventRepository abstracts DynamoDB persistence for Event. Writes happen through
// the content pipeline, not this service; the API only reads.

type IEventRepository interface {
	GetByID(ctx context.Context, id string) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
}

// IProgramRepository abstracts DynamoDB persistence for Program.

type IProgramRepository interface {
	GetByID(ctx context.Context, id string) (entities.Program, error)
	List(ctx context.Context) ([]entities.Program, error)
}

// IContactMessageRepository abstracts DynamoDB persistence for ContactMessage.

type IContactMessageRepository interface {
	Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
}
