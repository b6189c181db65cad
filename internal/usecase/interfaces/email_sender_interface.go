package interfaces

// IEmailSender abstracts outbound email. Sends are best-effort from the payment
// state machine's perspective; a send failure is logged by the caller and never
// fails a status transition.
type IEmailSender interface {
	Send(to []string, subject, body string) error
}
