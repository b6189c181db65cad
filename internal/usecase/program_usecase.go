package usecase

import (
	"context"
	"errors"
	"strings"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
)

var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrInvalidProgramID = errors.New("invalid program id")
)

// IProgramUseCase exposes the read-only program catalog.

type IProgramUseCase interface {
	List(ctx context.Context) ([]entities.Program, error)
	GetByID(ctx context.Context, id string) (entities.Program, error)
}

type ProgramUseCase struct {
	repo interfaces.IProgramRepository
}

var _ IProgramUseCase = (*ProgramUseCase)(nil)

func NewProgramUseCase(repo interfaces.IProgramRepository) *ProgramUseCase {
	return &ProgramUseCase{repo: repo}
}

func (u *ProgramUseCase) List(ctx context.Context) ([]entities.Program, error) {
	return u.repo.List(ctx)
}

func (u *ProgramUseCase) GetByID(ctx context.Context, id string) (entities.Program, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Program{}, ErrInvalidProgramID
	}
	prog, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Program{}, err
	}
	if prog.ID == "" {
		return entities.Program{}, ErrProgramNotFound
	}
	return prog, nil
}
