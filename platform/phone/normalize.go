// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "AU"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input, region string) string {
	return format(input, region, phonenumbers.E164)
}

// Display formats a phone number for printed documents in the national
// format of region, e.g. "(02) 1234 5678". Unparseable input is returned trimmed.
func Display(input, region string) string {
	return format(input, region, phonenumbers.NATIONAL)
}

func format(input, region string, style phonenumbers.PhoneNumberFormat) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	if region == "" {
		region = defaultRegion
	}

	number, err := phonenumbers.Parse(trimmed, strings.ToUpper(region))
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, style)
}
