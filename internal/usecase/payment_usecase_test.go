package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
	mock_interfaces "mbg_backend/internal/usecase/interfaces/mocks"
)

type paymentMocks struct {
	eventPayments   *mock_interfaces.MockIPaymentRepository
	programPayments *mock_interfaces.MockIPaymentRepository
	eventRegs       *mock_interfaces.MockIEventRegistrationRepository
	programRegs     *mock_interfaces.MockIProgramRegistrationRepository
	events          *mock_interfaces.MockIEventRepository
	programs        *mock_interfaces.MockIProgramRepository
	gateway         *mock_interfaces.MockIPaymentGateway
	mailer          *mock_interfaces.MockIEmailSender
}

func newPaymentUseCaseForTest(ctrl *gomock.Controller) (*PaymentUseCase, paymentMocks) {
	m := paymentMocks{
		eventPayments:   mock_interfaces.NewMockIPaymentRepository(ctrl),
		programPayments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		eventRegs:       mock_interfaces.NewMockIEventRegistrationRepository(ctrl),
		programRegs:     mock_interfaces.NewMockIProgramRegistrationRepository(ctrl),
		events:          mock_interfaces.NewMockIEventRepository(ctrl),
		programs:        mock_interfaces.NewMockIProgramRepository(ctrl),
		gateway:         mock_interfaces.NewMockIPaymentGateway(ctrl),
		mailer:          mock_interfaces.NewMockIEmailSender(ctrl),
	}
	uc := NewPaymentUseCase(PaymentUseCaseDeps{
		EventPayments:   m.eventPayments,
		ProgramPayments: m.programPayments,
		EventRegs:       m.eventRegs,
		ProgramRegs:     m.programRegs,
		Events:          m.events,
		Programs:        m.programs,
		Gateway:         m.gateway,
		Mailer:          m.mailer,
		CallbackURL:     "https://api.test/v1/payments/pesapal/callback",
	})
	return uc, m
}

// expectSend arms the mailer and returns a channel closed once the async send
// has run, so tests can wait for the cascade's email goroutine.
func expectSend(m paymentMocks) chan struct{} {
	done := make(chan struct{})
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func([]string, string, string) error {
			close(done)
			return nil
		})
	return done
}

func waitSend(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification email was never sent")
	}
}

func TestPaymentUseCase_InitiateEventPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid registration id", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(gomock.NewController(t))
		_, err := uc.InitiateEventPayment(ctx, "   ")
		if !errors.Is(err, ErrInvalidRegistrationID) {
			t.Fatalf("expected ErrInvalidRegistrationID, got %v", err)
		}
	})

	t.Run("registration not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		m.eventRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.EventRegistration{}, nil)

		_, err := uc.InitiateEventPayment(ctx, "reg-1")
		if !errors.Is(err, ErrRegistrationNotFound) {
			t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
		}
	})

	t.Run("free event", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		m.eventRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.EventRegistration{ID: "reg-1", EventID: "ev-1"}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1", IsFree: true}, nil)

		_, err := uc.InitiateEventPayment(ctx, "reg-1")
		if !errors.Is(err, ErrEventIsFree) {
			t.Fatalf("expected ErrEventIsFree, got %v", err)
		}
	})

	t.Run("creates payment and submits order", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		reg := entities.EventRegistration{ID: "reg-1", EventID: "ev-1", FullName: "Jane Doe", Email: "jane@test.com", Phone: "0712345678"}
		ev := entities.Event{ID: "ev-1", Title: "Workshop", InvestmentAmount: 5000, Currency: "KES"}

		m.eventRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(ev, nil)
		m.eventPayments.EXPECT().GetByRegistrationID(gomock.Any(), "reg-1").Return(entities.Payment{}, nil)
		m.eventPayments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Amount != 5000 || p.Status != entities.PaymentStatusPending || p.RegistrationID != "reg-1" {
					t.Errorf("unexpected created payment: %+v", p)
				}
				return p, nil
			})

		var submittedRef string
		m.gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order interfaces.GatewayOrder) (*interfaces.GatewayOrderResponse, error) {
				submittedRef = order.ID
				if order.Amount != 5000 || order.Description != "Workshop" {
					t.Errorf("unexpected order: %+v", order)
				}
				return &interfaces.GatewayOrderResponse{OrderTrackingID: "trk-1", RedirectURL: "https://pay.pesapal.com/x"}, nil
			})
		m.eventPayments.EXPECT().SaveSubmission(gomock.Any(), gomock.Any(), gomock.Any(), "trk-1", "https://pay.pesapal.com/x").DoAndReturn(
			func(_ context.Context, id, merchantReference, trackingID, paymentURL string) (entities.Payment, error) {
				if merchantReference != submittedRef {
					t.Errorf("saved merchant reference %q does not match submitted %q", merchantReference, submittedRef)
				}
				return entities.Payment{ID: id, Status: entities.PaymentStatusInitiated, OrderTrackingID: trackingID, PaymentURL: paymentURL}, nil
			})

		p, err := uc.InitiateEventPayment(ctx, "reg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusInitiated || p.PaymentURL == "" {
			t.Fatalf("unexpected result: %+v", p)
		}
	})

	t.Run("gateway failure records failed submission", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		reg := entities.EventRegistration{ID: "reg-1", EventID: "ev-1", FullName: "Jane Doe", Email: "jane@test.com"}
		ev := entities.Event{ID: "ev-1", Title: "Workshop", InvestmentAmount: 5000}
		existing := entities.Payment{ID: "pay-1", RegistrationID: "reg-1", Amount: 5000, Status: entities.PaymentStatusPending}

		m.eventRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(ev, nil)
		m.eventPayments.EXPECT().GetByRegistrationID(gomock.Any(), "reg-1").Return(existing, nil)
		m.gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("connect timeout"))
		m.eventPayments.EXPECT().SaveFailure(gomock.Any(), "pay-1", gomock.Any()).Return(existing, nil)

		_, err := uc.InitiateEventPayment(ctx, "reg-1")
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("completed payment is never resubmitted", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		reg := entities.EventRegistration{ID: "reg-1", EventID: "ev-1"}
		ev := entities.Event{ID: "ev-1", InvestmentAmount: 5000}

		m.eventRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(ev, nil)
		m.eventPayments.EXPECT().GetByRegistrationID(gomock.Any(), "reg-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted}, nil)

		_, err := uc.InitiateEventPayment(ctx, "reg-1")
		if !errors.Is(err, ErrPaymentAlreadyCompleted) {
			t.Fatalf("expected ErrPaymentAlreadyCompleted, got %v", err)
		}
	})

	t.Run("retry uses a fresh merchant reference", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		reg := entities.EventRegistration{ID: "reg-1", EventID: "ev-1"}
		ev := entities.Event{ID: "ev-1", InvestmentAmount: 5000}
		failed := entities.Payment{ID: "pay-1", RegistrationID: "reg-1", Amount: 5000, Status: entities.PaymentStatusFailed, MerchantReference: "old-ref"}

		m.eventRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil).Times(2)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(ev, nil).Times(2)
		m.eventPayments.EXPECT().GetByRegistrationID(gomock.Any(), "reg-1").Return(failed, nil).Times(2)

		var refs []string
		m.gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order interfaces.GatewayOrder) (*interfaces.GatewayOrderResponse, error) {
				refs = append(refs, order.ID)
				return &interfaces.GatewayOrderResponse{OrderTrackingID: "trk", RedirectURL: "https://pay"}, nil
			}).Times(2)
		m.eventPayments.EXPECT().SaveSubmission(gomock.Any(), "pay-1", gomock.Any(), "trk", "https://pay").Return(failed, nil).Times(2)

		if _, err := uc.InitiateEventPayment(ctx, "reg-1"); err != nil {
			t.Fatalf("first attempt: %v", err)
		}
		if _, err := uc.InitiateEventPayment(ctx, "reg-1"); err != nil {
			t.Fatalf("second attempt: %v", err)
		}
		if len(refs) != 2 || refs[0] == refs[1] || refs[0] == "old-ref" {
			t.Fatalf("expected two distinct fresh merchant references, got %v", refs)
		}
	})
}

func TestPaymentUseCase_InitiateProgramPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("already paid registration", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		m.programRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.ProgramRegistration{ID: "reg-1", Paid: true}, nil)

		_, err := uc.InitiateProgramPayment(ctx, "reg-1")
		if !errors.Is(err, ErrPaymentAlreadyCompleted) {
			t.Fatalf("expected ErrPaymentAlreadyCompleted, got %v", err)
		}
	})

	t.Run("lazily creates payment with parsed price", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		reg := entities.ProgramRegistration{ID: "reg-1", ProgramID: "prog-1", FullName: "John Smith", Email: "john@test.com"}
		prog := entities.Program{ID: "prog-1", Title: "Coaching", Price: "KES 25,000", Currency: "KES", Active: true}

		m.programRegs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(reg, nil)
		m.programs.EXPECT().GetByID(gomock.Any(), "prog-1").Return(prog, nil)
		m.programPayments.EXPECT().GetByRegistrationID(gomock.Any(), "reg-1").Return(entities.Payment{}, nil)
		m.programPayments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Amount != 25000 {
					t.Errorf("expected parsed amount 25000, got %v", p.Amount)
				}
				return p, nil
			})
		m.gateway.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(
			&interfaces.GatewayOrderResponse{OrderTrackingID: "trk-9", RedirectURL: "https://pay"}, nil)
		m.programPayments.EXPECT().SaveSubmission(gomock.Any(), gomock.Any(), gomock.Any(), "trk-9", "https://pay").Return(entities.Payment{ID: "pay-9"}, nil)

		if _, err := uc.InitiateProgramPayment(ctx, "reg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_PollStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("payment not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("never submitted payment skips the gateway", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending}
		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)

		view, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.GatewayReachable || view.Payment.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("gateway down falls back to stored snapshot", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}
		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(nil, errors.New("timeout"))

		view, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.GatewayReachable {
			t.Fatal("expected GatewayReachable=false")
		}
		if view.Payment.Status != entities.PaymentStatusInitiated {
			t.Fatalf("expected stored status, got %s", view.Payment.Status)
		}
	})

	t.Run("completed answer transitions and cascades once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newPaymentUseCaseForTest(ctrl)
		stored := entities.Payment{ID: "pay-1", RegistrationID: "reg-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}
		completed := stored
		completed.Status = entities.PaymentStatusCompleted

		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(
			&interfaces.GatewayTransactionStatus{StatusCode: 1, PaymentMethod: "MPESA", ConfirmationCode: "txn-1", PaymentStatusDescription: "Completed"}, nil)
		m.eventPayments.EXPECT().TransitionStatus(gomock.Any(), "pay-1", entities.PaymentStatusCompleted, "txn-1", "MPESA").Return(completed, true, nil)
		m.eventRegs.EXPECT().UpdateStatus(gomock.Any(), "reg-1", entities.RegistrationStatusConfirmed).Return(
			entities.EventRegistration{ID: "reg-1", EventID: "ev-1", FullName: "Jane Doe", Email: "jane@test.com"}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1", Title: "Workshop"}, nil)
		done := expectSend(m)

		view, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.GatewayReachable || view.Payment.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected view: %+v", view)
		}
		waitSend(t, done)
	})

	t.Run("replayed completion does not cascade again", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		now := time.Now().UTC()
		stored := entities.Payment{ID: "pay-1", RegistrationID: "reg-1", Status: entities.PaymentStatusCompleted, OrderTrackingID: "trk-1", CompletedAt: &now}

		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(
			&interfaces.GatewayTransactionStatus{StatusCode: 1, ConfirmationCode: "txn-1"}, nil)
		// CAS guard refuses the write: transitioned=false, so no registration
		// update and no email may happen.
		m.eventPayments.EXPECT().TransitionStatus(gomock.Any(), "pay-1", entities.PaymentStatusCompleted, "txn-1", gomock.Any()).Return(stored, false, nil)

		view, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Payment.CompletedAt == nil || !view.Payment.CompletedAt.Equal(now) {
			t.Fatalf("completed_at must be untouched, got %v", view.Payment.CompletedAt)
		}
	})

	t.Run("failed answer transitions without cascade", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", RegistrationID: "reg-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}
		failed := stored
		failed.Status = entities.PaymentStatusFailed

		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(
			&interfaces.GatewayTransactionStatus{StatusCode: 2}, nil)
		m.eventPayments.EXPECT().TransitionStatus(gomock.Any(), "pay-1", entities.PaymentStatusFailed, "", "").Return(failed, true, nil)

		view, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Payment.Status != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %s", view.Payment.Status)
		}
	})

	t.Run("unknown status code mutates nothing", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}

		m.eventPayments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(
			&interfaces.GatewayTransactionStatus{StatusCode: 7, PaymentStatusDescription: "Reversed"}, nil)

		view, err := uc.GetEventPaymentStatus(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Payment.Status != entities.PaymentStatusInitiated {
			t.Fatalf("expected untouched status, got %s", view.Payment.Status)
		}
	})
}

func TestPaymentUseCase_HandleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("event store is checked before program store", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}

		gomock.InOrder(
			m.eventPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-1").Return(stored, nil),
			m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(
				&interfaces.GatewayTransactionStatus{StatusCode: 0}, nil),
			m.eventPayments.EXPECT().TransitionStatus(gomock.Any(), "pay-1", entities.PaymentStatusPending, "", "").Return(stored, true, nil),
		)

		result, err := uc.HandleCallback(ctx, "trk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Domain != entities.PaymentDomainEvent {
			t.Fatalf("expected event domain, got %s", result.Domain)
		}
	})

	t.Run("falls through to the program store", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-2", RegistrationID: "reg-2", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-2"}
		completed := stored
		completed.Status = entities.PaymentStatusCompleted

		m.eventPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-2").Return(entities.Payment{}, nil)
		m.programPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-2").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-2").Return(
			&interfaces.GatewayTransactionStatus{StatusCode: 1, ConfirmationCode: "txn-2"}, nil)
		m.programPayments.EXPECT().TransitionStatus(gomock.Any(), "pay-2", entities.PaymentStatusCompleted, "txn-2", "").Return(completed, true, nil)
		m.programRegs.EXPECT().SetPaid(gomock.Any(), "reg-2", true).Return(
			entities.ProgramRegistration{ID: "reg-2", ProgramID: "prog-1", FullName: "John", Email: "john@test.com"}, nil)
		m.programs.EXPECT().GetByID(gomock.Any(), "prog-1").Return(entities.Program{ID: "prog-1", Title: "Coaching"}, nil)
		done := expectSend(m)

		result, err := uc.HandleCallback(ctx, "trk-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Domain != entities.PaymentDomainProgram || result.Payment.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected result: %+v", result)
		}
		waitSend(t, done)
	})

	t.Run("unknown tracking id", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		m.eventPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-x").Return(entities.Payment{}, nil)
		m.programPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-x").Return(entities.Payment{}, nil)

		_, err := uc.HandleCallback(ctx, "trk-x")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("gateway down still lands the payer somewhere", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}

		m.eventPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-1").Return(stored, nil)
		m.gateway.EXPECT().GetTransactionStatus(gomock.Any(), "trk-1").Return(nil, errors.New("down"))

		result, err := uc.HandleCallback(ctx, "trk-1")
		if err != nil {
			t.Fatalf("expected soft fallback, got %v", err)
		}
		if result.Message == "" || result.Payment.Status != entities.PaymentStatusInitiated {
			t.Fatalf("unexpected result: %+v", result)
		}
	})
}

func TestPaymentUseCase_HandleIPN(t *testing.T) {
	ctx := context.Background()

	t.Run("status comes from ConfirmTransaction, not the notification", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", RegistrationID: "reg-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}
		completed := stored
		completed.Status = entities.PaymentStatusCompleted

		m.eventPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-1").Return(stored, nil)
		m.gateway.EXPECT().ConfirmTransaction(gomock.Any(), "trk-1").Return(
			&interfaces.GatewayTransactionStatus{StatusCode: 1, ConfirmationCode: "txn-1"}, nil)
		m.eventPayments.EXPECT().TransitionStatus(gomock.Any(), "pay-1", entities.PaymentStatusCompleted, "txn-1", "").Return(completed, true, nil)
		m.eventRegs.EXPECT().UpdateStatus(gomock.Any(), "reg-1", entities.RegistrationStatusConfirmed).Return(
			entities.EventRegistration{ID: "reg-1", EventID: "ev-1", Email: "jane@test.com"}, nil)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1", Title: "Workshop"}, nil)
		done := expectSend(m)

		result, err := uc.HandleIPN(ctx, "trk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Payment.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected result: %+v", result)
		}
		waitSend(t, done)
	})

	t.Run("confirmation failure asks for redelivery", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(gomock.NewController(t))
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusInitiated, OrderTrackingID: "trk-1"}

		m.eventPayments.EXPECT().GetByTrackingID(gomock.Any(), "trk-1").Return(stored, nil)
		m.gateway.EXPECT().ConfirmTransaction(gomock.Any(), "trk-1").Return(nil, errors.New("down"))

		_, err := uc.HandleIPN(ctx, "trk-1")
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}
