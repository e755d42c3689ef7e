package checkout

import (
	"regexp"
	"strings"
)

// ValidationErrors maps field names to Slovak error messages. An empty map
// means the form is valid.
type ValidationErrors map[string]string

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]+$`)
)

// Validate checks every applicable field and returns all errors together, so
// the UI can highlight each invalid field at once. Address fields are only
// present (and therefore only validated) on the delivery variant.
func Validate(req Request) ValidationErrors {
	errs := ValidationErrors{}

	contact := req.ContactInfo()

	if strings.TrimSpace(contact.FullName) == "" {
		errs["fullName"] = "Celé meno je povinné"
	}

	if strings.TrimSpace(contact.Email) == "" {
		errs["email"] = "Email je povinný"
	} else if !ValidEmail(contact.Email) {
		errs["email"] = "Neplatný formát emailu"
	}

	if strings.TrimSpace(contact.Phone) == "" {
		errs["phone"] = "Telefónne číslo je povinné"
	} else if !ValidPhone(contact.Phone) {
		errs["phone"] = "Neplatný formát telefónneho čísla"
	}

	if delivery, ok := req.(DeliveryRequest); ok {
		if strings.TrimSpace(delivery.City) == "" {
			errs["city"] = "Mesto je povinné"
		}
		if strings.TrimSpace(delivery.Street) == "" {
			errs["street"] = "Ulica je povinná"
		}
	}

	if !req.Consent() {
		errs["gdprConsent"] = "Súhlas so spracovaním osobných údajov je povinný"
	}

	return errs
}

// ValidEmail accepts the standard local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPhone accepts an optional leading +, digits, spaces, parentheses and
// hyphens, with at least 9 digits overall.
func ValidPhone(phone string) bool {
	trimmed := strings.TrimSpace(phone)
	if !phoneRegex.MatchString(trimmed) {
		return false
	}

	digits := 0
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 9
}
