package usecase

import (
	"log"

	"mbg_backend/internal/usecase/interfaces"
)

// notifyAsync sends a notification email off the request path. Every flow that
// emails (payment cascade, registrations, contact) is best-effort: a nil
// mailer, empty recipient list or send error is logged and swallowed.
func notifyAsync(mailer interfaces.IEmailSender, tag string, to []string, subject, body string) {
	if mailer == nil || len(to) == 0 {
		return
	}
	go func() {
		if err := mailer.Send(to, subject, body); err != nil {
			log.Printf("%s sending %q to %v: %v", tag, subject, to, err)
		}
	}()
}
