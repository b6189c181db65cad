package usecase

import (
	"context"
	"errors"
	"strings"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidEventID = errors.New("invalid event id")
)

// IEventUseCase exposes the read-only event catalog. Events are authored
// through the content pipeline; this service only lists and resolves them.

type IEventUseCase interface {
	List(ctx context.Context) ([]entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
}

type EventUseCase struct {
	repo interfaces.IEventRepository
}

var _ IEventUseCase = (*EventUseCase)(nil)

func NewEventUseCase(repo interfaces.IEventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

func (u *EventUseCase) List(ctx context.Context) ([]entities.Event, error) {
	return u.repo.List(ctx)
}

func (u *EventUseCase) GetByID(ctx context.Context, id string) (entities.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Event{}, ErrInvalidEventID
	}
	ev, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if ev.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	return ev, nil
}
