package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
)

var (
	ErrInvalidRegistrationID   = errors.New("invalid registration id")
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrInvalidTrackingID       = errors.New("invalid order tracking id")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrRegistrationNotFound    = errors.New("registration not found")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed")
	ErrEventIsFree             = errors.New("event does not require payment")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
)

// PaymentStatusView is the poll-trigger result. GatewayReachable distinguishes
// a live answer from a stored snapshot served because the gateway was down or
// the payment was never submitted.
type PaymentStatusView struct {
	Payment            entities.Payment
	GatewayReachable   bool
	GatewayDescription string
}

// CallbackResult is what the browser-redirect trigger hands back to the HTTP
// layer: which domain's result page to redirect to, the reconciled payment,
// and a human-readable message for the result page.
type CallbackResult struct {
	Domain  entities.PaymentDomain
	Payment entities.Payment
	Message string
}

// IPNResult acknowledges an instant payment notification.
type IPNResult struct {
	Domain  entities.PaymentDomain
	Payment entities.Payment
}

type IPaymentUseCase interface {
	InitiateEventPayment(ctx context.Context, registrationID string) (entities.Payment, error)
	InitiateProgramPayment(ctx context.Context, registrationID string) (entities.Payment, error)
	GetEventPaymentStatus(ctx context.Context, paymentID string) (PaymentStatusView, error)
	GetProgramPaymentStatus(ctx context.Context, paymentID string) (PaymentStatusView, error)
	HandleCallback(ctx context.Context, orderTrackingID string) (CallbackResult, error)
	HandleIPN(ctx context.Context, orderTrackingID string) (IPNResult, error)
}

// PaymentUseCaseDeps bundles the engine's collaborators. Mailer may be nil;
// the cascade then skips notification emails.
type PaymentUseCaseDeps struct {
	EventPayments   interfaces.IPaymentRepository
	ProgramPayments interfaces.IPaymentRepository
	EventRegs       interfaces.IEventRegistrationRepository
	ProgramRegs     interfaces.IProgramRegistrationRepository
	Events          interfaces.IEventRepository
	Programs        interfaces.IProgramRepository
	Gateway         interfaces.IPaymentGateway
	Mailer          interfaces.IEmailSender
	CallbackURL     string
}

// PaymentUseCase is the reconciliation engine. Three triggers feed it (the
// frontend poll, the browser callback redirect and the async IPN) and all
// three converge on applyGatewayStatus, so the status mapping, the terminal
// guard and the completion cascade behave identically no matter which trigger
// fires first or how often each is replayed.
type PaymentUseCase struct {
	eventPayments   interfaces.IPaymentRepository
	programPayments interfaces.IPaymentRepository
	eventRegs       interfaces.IEventRegistrationRepository
	programRegs     interfaces.IProgramRegistrationRepository
	events          interfaces.IEventRepository
	programs        interfaces.IProgramRepository
	gateway         interfaces.IPaymentGateway
	mailer          interfaces.IEmailSender
	callbackURL     string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(deps PaymentUseCaseDeps) *PaymentUseCase {
	return &PaymentUseCase{
		eventPayments:   deps.EventPayments,
		programPayments: deps.ProgramPayments,
		eventRegs:       deps.EventRegs,
		programRegs:     deps.ProgramRegs,
		events:          deps.Events,
		programs:        deps.Programs,
		gateway:         deps.Gateway,
		mailer:          deps.Mailer,
		callbackURL:     deps.CallbackURL,
	}
}

// InitiateEventPayment finds or creates the payment record for an event
// registration and submits it to Pesapal. Re-initiating a failed or stale
// payment reuses the record with a fresh merchant reference; a completed
// payment is never re-submitted.
func (u *PaymentUseCase) InitiateEventPayment(ctx context.Context, registrationID string) (entities.Payment, error) {
	registrationID = strings.TrimSpace(registrationID)
	if registrationID == "" {
		return entities.Payment{}, ErrInvalidRegistrationID
	}

	reg, err := u.eventRegs.GetByID(ctx, registrationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if reg.ID == "" {
		return entities.Payment{}, ErrRegistrationNotFound
	}

	ev, err := u.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return entities.Payment{}, err
	}
	if ev.ID == "" {
		return entities.Payment{}, ErrEventNotFound
	}
	if ev.IsFree || ev.InvestmentAmount <= 0 {
		return entities.Payment{}, ErrEventIsFree
	}

	p, err := u.eventPayments.GetByRegistrationID(ctx, registrationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		now := time.Now().UTC()
		p, err = u.eventPayments.Create(ctx, entities.Payment{
			ID:             uuid.NewString(),
			RegistrationID: reg.ID,
			Amount:         ev.InvestmentAmount,
			Currency:       currencyOrDefault(ev.Currency),
			PaymentMethod:  entities.PaymentMethodPesapal,
			Status:         entities.PaymentStatusPending,
			CustomerEmail:  reg.Email,
			CustomerPhone:  reg.Phone,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return entities.Payment{}, err
		}
	}
	if p.Status == entities.PaymentStatusCompleted {
		return p, ErrPaymentAlreadyCompleted
	}

	merchantReference := uuid.NewString()
	order := prepareEventOrder(p, reg, ev, merchantReference, u.callbackURL)
	return u.submit(ctx, u.eventPayments, p, merchantReference, order)
}

// InitiateProgramPayment is the program-domain twin of InitiateEventPayment.
func (u *PaymentUseCase) InitiateProgramPayment(ctx context.Context, registrationID string) (entities.Payment, error) {
	registrationID = strings.TrimSpace(registrationID)
	if registrationID == "" {
		return entities.Payment{}, ErrInvalidRegistrationID
	}

	reg, err := u.programRegs.GetByID(ctx, registrationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if reg.ID == "" {
		return entities.Payment{}, ErrRegistrationNotFound
	}
	if reg.Paid {
		return entities.Payment{}, ErrPaymentAlreadyCompleted
	}

	prog, err := u.programs.GetByID(ctx, reg.ProgramID)
	if err != nil {
		return entities.Payment{}, err
	}
	if prog.ID == "" {
		return entities.Payment{}, ErrProgramNotFound
	}

	p, err := u.programPayments.GetByRegistrationID(ctx, registrationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		now := time.Now().UTC()
		p, err = u.programPayments.Create(ctx, entities.Payment{
			ID:             uuid.NewString(),
			RegistrationID: reg.ID,
			Amount:         parsePrice(prog.Price),
			Currency:       currencyOrDefault(prog.Currency),
			PaymentMethod:  entities.PaymentMethodPesapal,
			Status:         entities.PaymentStatusPending,
			CustomerEmail:  reg.Email,
			CustomerPhone:  reg.PhoneNumber,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return entities.Payment{}, err
		}
	}
	if p.Status == entities.PaymentStatusCompleted {
		return p, ErrPaymentAlreadyCompleted
	}

	merchantReference := uuid.NewString()
	order := prepareProgramOrder(p, reg, prog, merchantReference, u.callbackURL)
	return u.submit(ctx, u.programPayments, p, merchantReference, order)
}

// submit sends the order and records the outcome. A gateway failure is written
// back as a failed submission so the record never claims an order that was
// never accepted; the caller sees ErrGatewayUnavailable.
func (u *PaymentUseCase) submit(ctx context.Context, payments interfaces.IPaymentRepository, p entities.Payment, merchantReference string, order interfaces.GatewayOrder) (entities.Payment, error) {
	resp, err := u.gateway.SubmitOrder(ctx, order)
	if err != nil || resp == nil {
		log.Printf("[payment][usecase] order submission failed for payment %s: %v", p.ID, err)
		if _, serr := payments.SaveFailure(ctx, p.ID, merchantReference); serr != nil {
			log.Printf("[payment][usecase] recording failed submission for payment %s: %v", p.ID, serr)
		}
		return entities.Payment{}, ErrGatewayUnavailable
	}
	return payments.SaveSubmission(ctx, p.ID, merchantReference, resp.OrderTrackingID, resp.RedirectURL)
}

// GetEventPaymentStatus serves the frontend poll for an event payment: query
// the gateway, reconcile, return the (possibly updated) record. When the
// gateway cannot answer, the stored snapshot is returned with
// GatewayReachable=false instead of an error.
func (u *PaymentUseCase) GetEventPaymentStatus(ctx context.Context, paymentID string) (PaymentStatusView, error) {
	return u.pollStatus(ctx, entities.PaymentDomainEvent, paymentID)
}

// GetProgramPaymentStatus is the program-domain poll.
func (u *PaymentUseCase) GetProgramPaymentStatus(ctx context.Context, paymentID string) (PaymentStatusView, error) {
	return u.pollStatus(ctx, entities.PaymentDomainProgram, paymentID)
}

func (u *PaymentUseCase) pollStatus(ctx context.Context, domain entities.PaymentDomain, paymentID string) (PaymentStatusView, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return PaymentStatusView{}, ErrInvalidPaymentID
	}

	p, err := u.paymentsFor(domain).GetByID(ctx, paymentID)
	if err != nil {
		return PaymentStatusView{}, err
	}
	if p.ID == "" {
		return PaymentStatusView{}, ErrPaymentNotFound
	}
	if p.OrderTrackingID == "" {
		return PaymentStatusView{Payment: p}, nil
	}

	ts, err := u.gateway.GetTransactionStatus(ctx, p.OrderTrackingID)
	if err != nil || ts == nil {
		log.Printf("[payment][usecase] status poll for payment %s fell back to stored status: %v", p.ID, err)
		return PaymentStatusView{Payment: p}, nil
	}

	updated := u.applyGatewayStatus(ctx, domain, p, ts)
	return PaymentStatusView{
		Payment:            updated,
		GatewayReachable:   true,
		GatewayDescription: ts.PaymentStatusDescription,
	}, nil
}

// HandleCallback reconciles the browser-redirect trigger. The redirect carries
// no trustworthy outcome, so the gateway is re-queried; if it cannot answer,
// the stored payment is returned with a "still confirming" message rather than
// an error, because the payer is mid-redirect and must land somewhere.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, orderTrackingID string) (CallbackResult, error) {
	orderTrackingID = strings.TrimSpace(orderTrackingID)
	if orderTrackingID == "" {
		return CallbackResult{}, ErrInvalidTrackingID
	}

	p, domain, err := u.resolveByTrackingID(ctx, orderTrackingID)
	if err != nil {
		return CallbackResult{}, err
	}

	ts, err := u.gateway.GetTransactionStatus(ctx, orderTrackingID)
	if err != nil || ts == nil {
		log.Printf("[payment][usecase] callback for tracking id %s could not reach gateway: %v", orderTrackingID, err)
		return CallbackResult{
			Domain:  domain,
			Payment: p,
			Message: "We could not confirm your payment yet. It will be updated shortly.",
		}, nil
	}

	updated := u.applyGatewayStatus(ctx, domain, p, ts)
	return CallbackResult{
		Domain:  domain,
		Payment: updated,
		Message: callbackMessage(updated.Status),
	}, nil
}

// HandleIPN reconciles the async server-to-server trigger. The notification
// itself is untrusted: the status is taken from ConfirmTransaction, never from
// the IPN body. A gateway failure here is a hard error so Pesapal retries the
// notification.
func (u *PaymentUseCase) HandleIPN(ctx context.Context, orderTrackingID string) (IPNResult, error) {
	orderTrackingID = strings.TrimSpace(orderTrackingID)
	if orderTrackingID == "" {
		return IPNResult{}, ErrInvalidTrackingID
	}

	p, domain, err := u.resolveByTrackingID(ctx, orderTrackingID)
	if err != nil {
		return IPNResult{}, err
	}

	ts, err := u.gateway.ConfirmTransaction(ctx, orderTrackingID)
	if err != nil || ts == nil {
		log.Printf("[payment][usecase] ipn confirmation for tracking id %s failed: %v", orderTrackingID, err)
		return IPNResult{}, ErrGatewayUnavailable
	}

	updated := u.applyGatewayStatus(ctx, domain, p, ts)
	return IPNResult{Domain: domain, Payment: updated}, nil
}

// resolveByTrackingID finds which domain owns a tracking id. The two stores
// share one Pesapal correlation namespace, so absence in the event store is
// not an error, it just means the program store owns the id.
func (u *PaymentUseCase) resolveByTrackingID(ctx context.Context, orderTrackingID string) (entities.Payment, entities.PaymentDomain, error) {
	p, err := u.eventPayments.GetByTrackingID(ctx, orderTrackingID)
	if err != nil {
		return entities.Payment{}, "", err
	}
	if p.ID != "" {
		return p, entities.PaymentDomainEvent, nil
	}

	p, err = u.programPayments.GetByTrackingID(ctx, orderTrackingID)
	if err != nil {
		return entities.Payment{}, "", err
	}
	if p.ID != "" {
		return p, entities.PaymentDomainProgram, nil
	}
	return entities.Payment{}, "", ErrPaymentNotFound
}

// applyGatewayStatus is the single convergence point for all three triggers.
// Unknown gateway codes are logged and ignored. The repository's
// compare-then-set guard decides whether the write lands; the completion
// cascade fires only when this call actually moved the payment into
// completed, which makes replayed triggers no-ops.
func (u *PaymentUseCase) applyGatewayStatus(ctx context.Context, domain entities.PaymentDomain, p entities.Payment, ts *interfaces.GatewayTransactionStatus) entities.Payment {
	status, ok := mapGatewayStatus(ts.StatusCode)
	if !ok {
		log.Printf("[payment][usecase] unknown gateway status code %d for payment %s, leaving status %s", ts.StatusCode, p.ID, p.Status)
		return p
	}

	updated, transitioned, err := u.paymentsFor(domain).TransitionStatus(ctx, p.ID, status, ts.ConfirmationCode, ts.PaymentMethod)
	if err != nil {
		log.Printf("[payment][usecase] status transition to %s for payment %s: %v", status, p.ID, err)
		return p
	}
	if transitioned && status == entities.PaymentStatusCompleted {
		u.cascadeCompleted(ctx, domain, updated)
	}
	return updated
}

// cascadeCompleted runs the side effects of a payment's first transition into
// completed: confirm the registration and notify the payer. Failures are
// logged, never propagated; the payment is already completed and a broken
// email must not look like a broken payment.
func (u *PaymentUseCase) cascadeCompleted(ctx context.Context, domain entities.PaymentDomain, p entities.Payment) {
	switch domain {
	case entities.PaymentDomainEvent:
		reg, err := u.eventRegs.UpdateStatus(ctx, p.RegistrationID, entities.RegistrationStatusConfirmed)
		if err != nil {
			log.Printf("[payment][usecase] confirming event registration %s: %v", p.RegistrationID, err)
			return
		}
		title := "your event"
		if ev, err := u.events.GetByID(ctx, reg.EventID); err == nil && ev.Title != "" {
			title = ev.Title
		}
		u.sendAsync(
			reg.Email,
			"Payment received - "+title,
			"Hi "+reg.FullName+",\n\nWe have received your payment for "+title+". Your registration is confirmed.\n\nSee you there!",
		)
	case entities.PaymentDomainProgram:
		reg, err := u.programRegs.SetPaid(ctx, p.RegistrationID, true)
		if err != nil {
			log.Printf("[payment][usecase] marking program registration %s paid: %v", p.RegistrationID, err)
			return
		}
		title := "your program"
		if prog, err := u.programs.GetByID(ctx, reg.ProgramID); err == nil && prog.Title != "" {
			title = prog.Title
		}
		u.sendAsync(
			reg.Email,
			"Payment received - "+title,
			"Hi "+reg.FullName+",\n\nWe have received your payment for "+title+". Your enrollment is confirmed.\n\nWelcome aboard!",
		)
	}
}

// sendAsync fires a payer notification without blocking the trigger that
// caused it.
func (u *PaymentUseCase) sendAsync(to, subject, body string) {
	if to == "" {
		return
	}
	notifyAsync(u.mailer, "[payment][usecase]", []string{to}, subject, body)
}

func (u *PaymentUseCase) paymentsFor(domain entities.PaymentDomain) interfaces.IPaymentRepository {
	if domain == entities.PaymentDomainProgram {
		return u.programPayments
	}
	return u.eventPayments
}

func callbackMessage(s entities.PaymentStatus) string {
	switch s {
	case entities.PaymentStatusCompleted:
		return "Payment received. Thank you!"
	case entities.PaymentStatusFailed:
		return "Payment was not successful. Please try again."
	case entities.PaymentStatusCancelled:
		return "Payment was cancelled."
	case entities.PaymentStatusRefunded:
		return "This payment has been refunded."
	}
	return "Your payment is being processed. This page will update shortly."
}
