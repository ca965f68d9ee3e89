package topdesk

import "strings"

// CanonicalTicketNumber converts a raw ticket identifier into TOPdesk's
// canonical incident number form "I#### ###" (e.g. "2510017" becomes
// "I2510 017").
//
// Parsing is deliberately permissive: everything except digits is stripped
// first, so bare integers, already-canonical strings and lightly mangled
// input all canonicalize the same way. Inputs that do not resolve to a real
// incident number surface as a not-found result from the live lookup rather
// than a local validation error.
func CanonicalTicketNumber(raw string) string {
	digits := TicketDigits(raw)
	if len(digits) <= 4 {
		return "I" + digits
	}
	return "I" + digits[:4] + " " + digits[4:]
}

// TicketDigits strips everything except ASCII digits from raw.
func TicketDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
