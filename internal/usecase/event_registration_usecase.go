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

var (
	ErrRegistrationClosed  = errors.New("registration is closed")
	ErrInvalidRegistration = errors.New("invalid registration")
)

// IEventRegistrationUseCase handles event sign-ups. Free events confirm
// immediately; paid events start at pending with a pending payment record
// carrying the event's pricing, ready for the initiate trigger.

type IEventRegistrationUseCase interface {
	Register(ctx context.Context, r entities.EventRegistration) (entities.EventRegistration, error)
	GetByID(ctx context.Context, id string) (entities.EventRegistration, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.EventRegistration, error)
}

type EventRegistrationUseCase struct {
	events      interfaces.IEventRepository
	regs        interfaces.IEventRegistrationRepository
	payments    interfaces.IPaymentRepository
	mailer      interfaces.IEmailSender
	adminEmails []string
}

var _ IEventRegistrationUseCase = (*EventRegistrationUseCase)(nil)

func NewEventRegistrationUseCase(
	events interfaces.IEventRepository,
	regs interfaces.IEventRegistrationRepository,
	payments interfaces.IPaymentRepository,
	mailer interfaces.IEmailSender,
	adminEmails []string,
) *EventRegistrationUseCase {
	return &EventRegistrationUseCase{
		events:      events,
		regs:        regs,
		payments:    payments,
		mailer:      mailer,
		adminEmails: adminEmails,
	}
}

func (u *EventRegistrationUseCase) Register(ctx context.Context, r entities.EventRegistration) (entities.EventRegistration, error) {
	r.EventID = strings.TrimSpace(r.EventID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	if r.EventID == "" {
		return entities.EventRegistration{}, ErrInvalidEventID
	}
	if r.FullName == "" || r.Email == "" {
		return entities.EventRegistration{}, ErrInvalidRegistration
	}

	ev, err := u.events.GetByID(ctx, r.EventID)
	if err != nil {
		return entities.EventRegistration{}, err
	}
	if ev.ID == "" {
		return entities.EventRegistration{}, ErrEventNotFound
	}
	if !ev.RegistrationOpen {
		return entities.EventRegistration{}, ErrRegistrationClosed
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.RegisteredAt = now
	r.Status = entities.RegistrationStatusPending
	paid := !ev.IsFree && ev.InvestmentAmount > 0
	if !paid {
		r.Status = entities.RegistrationStatusConfirmed
	}

	created, err := u.regs.Create(ctx, r)
	if err != nil {
		return entities.EventRegistration{}, err
	}

	// Paid events carry the event's pricing into a pending payment record so
	// the initiate trigger only has to submit it.
	if paid {
		if _, err := u.payments.Create(ctx, entities.Payment{
			ID:             uuid.NewString(),
			RegistrationID: created.ID,
			Amount:         ev.InvestmentAmount,
			Currency:       currencyOrDefault(ev.Currency),
			PaymentMethod:  entities.PaymentMethodPesapal,
			Status:         entities.PaymentStatusPending,
			CustomerEmail:  created.Email,
			CustomerPhone:  created.Phone,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return entities.EventRegistration{}, err
		}
	}

	u.notifyRegistered(created, ev, paid)
	return created, nil
}

func (u *EventRegistrationUseCase) GetByID(ctx context.Context, id string) (entities.EventRegistration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EventRegistration{}, ErrInvalidRegistrationID
	}
	reg, err := u.regs.GetByID(ctx, id)
	if err != nil {
		return entities.EventRegistration{}, err
	}
	if reg.ID == "" {
		return entities.EventRegistration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

func (u *EventRegistrationUseCase) ListByEventID(ctx context.Context, eventID string) ([]entities.EventRegistration, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, ErrInvalidEventID
	}
	return u.regs.ListByEventID(ctx, eventID)
}

func (u *EventRegistrationUseCase) notifyRegistered(r entities.EventRegistration, ev entities.Event, paid bool) {
	ack := "Hi " + r.FullName + ",\n\nThanks for registering for " + ev.Title + ". Your spot is confirmed.\n\nSee you there!"
	if paid {
		ack = "Hi " + r.FullName + ",\n\nThanks for registering for " + ev.Title + ". Complete your payment to confirm your spot."
	}
	notifyAsync(u.mailer, "[registration][event]", []string{r.Email}, "Registration received - "+ev.Title, ack)
	notifyAsync(u.mailer, "[registration][event]", u.adminEmails,
		"New event registration: "+ev.Title,
		r.FullName+" <"+r.Email+"> registered for "+ev.Title+".")
}
