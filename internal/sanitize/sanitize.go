// Package sanitize normalizes user-entered strings before they leave the
// system through the notification path.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptTagRegex    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	jsProtocolRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)
	phoneCharsRegex   = regexp.MustCompile(`[^0-9+\s()-]`)
)

// HTML escapes markup-significant characters.
func HTML(input string) string {
	if input == "" {
		return ""
	}

	replacer := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"/", "&#x2F;",
	)
	return replacer.Replace(input)
}

// Text strips script tags and inline handlers, trims whitespace and caps the
// length. The cap counts runes, never splitting a multi-byte character.
func Text(input string, maxLength int) string {
	if input == "" {
		return ""
	}

	sanitized := scriptTagRegex.ReplaceAllString(input, "")
	sanitized = jsProtocolRegex.ReplaceAllString(sanitized, "")
	sanitized = eventHandlerRegex.ReplaceAllString(sanitized, "")
	sanitized = strings.TrimSpace(sanitized)

	if runes := []rune(sanitized); len(runes) > maxLength {
		sanitized = string(runes[:maxLength])
	}

	return sanitized
}

// Email lowercases and trims; an address that does not look like
// local@domain.tld comes back empty.
func Email(email string) string {
	if email == "" {
		return ""
	}

	sanitized := strings.ToLower(strings.TrimSpace(email))

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(sanitized) {
		return ""
	}

	return sanitized
}

// Phone keeps only digits, spaces, plus, parentheses and hyphens.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	return phoneCharsRegex.ReplaceAllString(strings.TrimSpace(phone), "")
}

// Address sanitizes a street address.
func Address(address string) string {
	return Text(address, 200)
}

// Name sanitizes a person or product name.
func Name(name string) string {
	return HTML(Text(name, 100))
}

// Notes sanitizes free-form order notes.
func Notes(notes string) string {
	return HTML(Text(notes, 500))
}
