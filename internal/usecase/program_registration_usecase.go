package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
)

// IProgramRegistrationUseCase handles program enrollments. Programs always
// charge, but the payment record is created lazily by the initiate trigger,
// so registration itself only stores the sign-up.

type IProgramRegistrationUseCase interface {
	Register(ctx context.Context, r entities.ProgramRegistration) (entities.ProgramRegistration, error)
	GetByID(ctx context.Context, id string) (entities.ProgramRegistration, error)
	ListByProgramID(ctx context.Context, programID string) ([]entities.ProgramRegistration, error)
}

type ProgramRegistrationUseCase struct {
	programs    interfaces.IProgramRepository
	regs        interfaces.IProgramRegistrationRepository
	mailer      interfaces.IEmailSender
	adminEmails []string
}

var _ IProgramRegistrationUseCase = (*ProgramRegistrationUseCase)(nil)

func NewProgramRegistrationUseCase(
	programs interfaces.IProgramRepository,
	regs interfaces.IProgramRegistrationRepository,
	mailer interfaces.IEmailSender,
	adminEmails []string,
) *ProgramRegistrationUseCase {
	return &ProgramRegistrationUseCase{
		programs:    programs,
		regs:        regs,
		mailer:      mailer,
		adminEmails: adminEmails,
	}
}

func (u *ProgramRegistrationUseCase) Register(ctx context.Context, r entities.ProgramRegistration) (entities.ProgramRegistration, error) {
	r.ProgramID = strings.TrimSpace(r.ProgramID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	if r.ProgramID == "" {
		return entities.ProgramRegistration{}, ErrInvalidProgramID
	}
	if r.FullName == "" || r.Email == "" {
		return entities.ProgramRegistration{}, ErrInvalidRegistration
	}

	prog, err := u.programs.GetByID(ctx, r.ProgramID)
	if err != nil {
		return entities.ProgramRegistration{}, err
	}
	if prog.ID == "" {
		return entities.ProgramRegistration{}, ErrProgramNotFound
	}
	if !prog.Active {
		return entities.ProgramRegistration{}, ErrRegistrationClosed
	}

	r.ID = uuid.NewString()
	r.Paid = false
	r.RegisteredAt = time.Now().UTC()

	created, err := u.regs.Create(ctx, r)
	if err != nil {
		return entities.ProgramRegistration{}, err
	}

	notifyAsync(u.mailer, "[registration][program]", []string{created.Email},
		"Enrollment received - "+prog.Title,
		"Hi "+created.FullName+",\n\nThanks for enrolling in "+prog.Title+". Complete your payment to confirm your enrollment.")
	notifyAsync(u.mailer, "[registration][program]", u.adminEmails,
		"New program enrollment: "+prog.Title,
		created.FullName+" <"+created.Email+"> enrolled in "+prog.Title+".")
	return created, nil
}

func (u *ProgramRegistrationUseCase) GetByID(ctx context.Context, id string) (entities.ProgramRegistration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProgramRegistration{}, ErrInvalidRegistrationID
	}
	reg, err := u.regs.GetByID(ctx, id)
	if err != nil {
		return entities.ProgramRegistration{}, err
	}
	if reg.ID == "" {
		return entities.ProgramRegistration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

func (u *ProgramRegistrationUseCase) ListByProgramID(ctx context.Context, programID string) ([]entities.ProgramRegistration, error) {
	programID = strings.TrimSpace(programID)
	if programID == "" {
		return nil, ErrInvalidProgramID
	}
	return u.regs.ListByProgramID(ctx, programID)
}
