package topdesk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalTicketNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"seven digits", "2510017", "I2510 017"},
		{"already canonical", "I2510 017", "I2510 017"},
		{"prefix without space", "I2510017", "I2510 017"},
		{"dashes stripped", "25-10-017", "I2510 017"},
		{"surrounding whitespace", " 2510017 ", "I2510 017"},
		{"six digits kept permissively", "123456", "I1234 56"},
		{"four digits", "1234", "I1234"},
		{"empty input", "", "I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalTicketNumber(tt.raw))
		})
	}
}

func TestCanonicalTicketNumberSplitsFourThree(t *testing.T) {
	// Every 7-digit number maps to "I" + first four digits + " " + last three.
	for _, n := range []int{1000000, 2510017, 2510999, 5550123, 9999999} {
		raw := fmt.Sprintf("%d", n)
		expected := "I" + raw[:4] + " " + raw[4:]
		assert.Equal(t, expected, CanonicalTicketNumber(raw), "input %s", raw)
	}
}

func TestCanonicalTicketNumberIdempotent(t *testing.T) {
	for _, raw := range []string{"2510017", "I2510 017", "0000001", "9876543"} {
		once := CanonicalTicketNumber(raw)
		again := CanonicalTicketNumber(TicketDigits(once))
		assert.Equal(t, once, again, "input %s", raw)
	}
}

func TestTicketDigits(t *testing.T) {
	assert.Equal(t, "2510017", TicketDigits("I2510 017"))
	assert.Equal(t, "2510017", TicketDigits("2510017"))
	assert.Equal(t, "", TicketDigits("not a number"))
}
