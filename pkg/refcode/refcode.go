package refcode

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// Referral codes are numeric strings with a Luhn check digit, so the click
// path can reject malformed codes without touching the database.
const codeLength = 10

// Generate issues a new referral code.
func Generate() string {
	code := goluhn.Generate(codeLength)
	return code
}

// IsValid checks the Luhn check digit of a referral code.
func IsValid(code string) bool {
	err := goluhn.Validate(code)
	return err == nil
}
