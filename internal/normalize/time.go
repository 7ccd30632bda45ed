package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"eventbook/internal/domain"
)

// timePattern accepts a 1-2 digit hour, an optional 2-digit minute, and an
// optional meridian: "9", "14:30", "2:30pm".
var timePattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// Time parses free-form time text and returns the canonical 24-hour HH:MM
// form. With "am" the hour wraps mod 12 (12am -> 00); with "pm" it wraps mod
// 12 plus 12 (12pm -> 12); without a meridian the hour is taken as 24-hour.
// A missing minute defaults to 0. Input that does not match the pattern fails
// with domain.ErrInvalidFormat; an out-of-range hour or minute after meridian
// conversion fails with domain.ErrInvalidValue. Canonical output is a fixed
// point: Time(Time(x)) == Time(x).
func Time(input string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(input))
	m := timePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: time %q", domain.ErrInvalidFormat, input)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "am":
		hour = hour % 12
	case "pm":
		hour = hour%12 + 12
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: time %q", domain.ErrInvalidValue, input)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
