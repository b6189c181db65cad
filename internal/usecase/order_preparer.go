package usecase

import (
	"strconv"
	"strings"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase/interfaces"
)

const (
	billingCountryCode   = "KE"
	countryDialPrefix    = "254"
	placeholderPhone     = "254700000000"
	placeholderFirstName = "Customer"
	placeholderLastName  = "User"
	descriptionMaxLen    = 99
)

// prepareEventOrder builds the Pesapal order payload for one event payment.
// Pure function of its inputs; the merchant reference is generated by the
// caller, fresh per submission attempt.
func prepareEventOrder(p entities.Payment, reg entities.EventRegistration, ev entities.Event, merchantReference, callbackURL string) interfaces.GatewayOrder {
	description := ev.Title
	if description == "" {
		description = "Payment for " + merchantReference
	}

	first, last := splitName(reg.FullName)
	return interfaces.GatewayOrder{
		ID:          merchantReference,
		Currency:    currencyOrDefault(p.Currency),
		Amount:      p.Amount,
		Description: truncateDescription(description),
		CallbackURL: callbackURL,
		BillingAddress: interfaces.GatewayBillingAddress{
			EmailAddress: firstNonEmpty(p.CustomerEmail, reg.Email),
			PhoneNumber:  normalizePhone(firstNonEmpty(p.CustomerPhone, reg.Phone)),
			CountryCode:  billingCountryCode,
			FirstName:    first,
			LastName:     last,
		},
	}
}

// prepareProgramOrder is the program-domain variant: the description carries
// the program title and the amount falls back to the program's display price
// when the payment record has none.
func prepareProgramOrder(p entities.Payment, reg entities.ProgramRegistration, prog entities.Program, merchantReference, callbackURL string) interfaces.GatewayOrder {
	amount := p.Amount
	if amount == 0 {
		amount = parsePrice(prog.Price)
	}

	first, last := splitName(reg.FullName)
	return interfaces.GatewayOrder{
		ID:          merchantReference,
		Currency:    currencyOrDefault(p.Currency),
		Amount:      amount,
		Description: truncateDescription("Program: " + prog.Title),
		CallbackURL: callbackURL,
		BillingAddress: interfaces.GatewayBillingAddress{
			EmailAddress: firstNonEmpty(p.CustomerEmail, reg.Email),
			PhoneNumber:  normalizePhone(firstNonEmpty(p.CustomerPhone, reg.PhoneNumber)),
			CountryCode:  billingCountryCode,
			FirstName:    first,
			LastName:     last,
		},
	}
}

// splitName splits a full name on the first space. A single token becomes the
// first name with a placeholder last name; an empty name falls back entirely
// to placeholders.
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return placeholderFirstName, placeholderLastName
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], placeholderLastName
	}
	return parts[0], parts[1]
}

// normalizePhone rewrites a Kenyan phone number into international form.
// Malformed input silently becomes the placeholder number: the gateway
// requires a syntactically valid phone and a bad one must not block payment.
func normalizePhone(raw string) string {
	s := strings.NewReplacer("+", "", " ", "", "-", "").Replace(raw)
	switch {
	case strings.HasPrefix(s, "0") && len(s) == 10:
		return countryDialPrefix + s[1:]
	case strings.HasPrefix(s, "7") && len(s) == 9:
		return countryDialPrefix + s
	case !strings.HasPrefix(s, countryDialPrefix):
		return placeholderPhone
	}
	return s
}

// parsePrice extracts a numeric amount from a display price such as
// "KES 25,000". Unparseable input yields zero rather than an error.
func parsePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// truncateDescription enforces the gateway's 99-character description limit.
func truncateDescription(s string) string {
	r := []rune(s)
	if len(r) <= descriptionMaxLen {
		return s
	}
	return string(r[:descriptionMaxLen])
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "KES"
	}
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// mapGatewayStatus maps Pesapal's numeric transaction status to the local
// payment status. Unknown codes return ok=false and must leave the stored
// status untouched.
func mapGatewayStatus(code int) (entities.PaymentStatus, bool) {
	switch code {
	case 0:
		return entities.PaymentStatusPending, true
	case 1:
		return entities.PaymentStatusCompleted, true
	case 2:
		return entities.PaymentStatusFailed, true
	}
	return "", false
}
