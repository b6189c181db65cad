package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
)

var ErrInvalidContactMessage = errors.New("invalid contact message")

// IContactUseCase stores contact-form submissions and forwards them to the
// admin inbox.

type IContactUseCase interface {
	Submit(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
}

type ContactUseCase struct {
	repo        interfaces.IContactMessageRepository
	mailer      interfaces.IEmailSender
	adminEmails []string
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactMessageRepository, mailer interfaces.IEmailSender, adminEmails []string) *ContactUseCase {
	return &ContactUseCase{repo: repo, mailer: mailer, adminEmails: adminEmails}
}

func (u *ContactUseCase) Submit(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return entities.ContactMessage{}, ErrInvalidContactMessage
	}

	switch m.Subject {
	case entities.ContactSubjectProgram, entities.ContactSubjectRecruitment,
		entities.ContactSubjectPartnership, entities.ContactSubjectGeneral:
	default:
		m.Subject = entities.ContactSubjectGeneral
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.ContactMessage{}, err
	}

	notifyAsync(u.mailer, "[contact]", u.adminEmails,
		"New contact message ("+created.Subject+") from "+created.Name,
		"From: "+created.Name+" <"+created.Email+">\nPhone: "+created.Phone+"\nSubject: "+created.Subject+"\n\n"+created.Message)
	return created, nil
}
