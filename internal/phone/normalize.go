// Package phone normalizes raw phone-number input into the
// international +<countrycode><digits> form the provider expects.
package phone

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// Normalize strips formatting from a raw phone number and returns it in
// international form. Exactly 10 digits are assumed to be a domestic
// number and get the +1 country code; anything else is reassembled from
// its digits behind a single leading +, so an existing + is not
// duplicated and embedded formatting is dropped. The heuristic is
// ambiguous for numbers that already carry a country code without a +
// prefix; those come out with a bare + in front of whatever digits they
// had.
func Normalize(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	if len(digits) == 10 {
		return "+1" + digits
	}

	return "+" + digits
}
