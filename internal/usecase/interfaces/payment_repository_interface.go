package interfaces

import (
	"context"
	"mbg_backend/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for payments. The event and
// program payment tables are separate (they are keyed independently and share one
// Pesapal correlation namespace, see the reconciliation use case), but both expose
// the same behavior, so they implement the same port.
//
// Soft not-found convention (repository-wide): lookups return a zero-value entity
// and a nil error when no row exists.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByRegistrationID(ctx context.Context, registrationID string) (entities.Payment, error)
	GetByTrackingID(ctx context.Context, orderTrackingID string) (entities.Payment, error)

	// SaveSubmission records a successful SubmitOrderRequest: tracking id, redirect
	// URL, the merchant reference used for this attempt, status initiated and
	// initiated_at. Called only after a 2xx gateway response so the record never
	// straddles "submitted but unknown".
	SaveSubmission(ctx context.Context, id, merchantReference, orderTrackingID, paymentURL string) (entities.Payment, error)

	// SaveFailure records a failed submission attempt: status failed, tracking id
	// and redirect URL cleared, merchant reference preserved for audit.
	SaveFailure(ctx context.Context, id, merchantReference string) (entities.Payment, error)

	// TransitionStatus applies a gateway-reported status with a compare-then-set
	// guard: the write is refused when the stored status is already terminal
	// (completed/cancelled/refunded). completed_at is set exactly once, on the
	// first transition into completed. A refused write returns the current row
	// with transitioned=false and a nil error.
	TransitionStatus(ctx context.Context, id string, to entities.PaymentStatus, transactionID, paymentMethod string) (p entities.Payment, transitioned bool, err error)
}
