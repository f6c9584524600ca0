package bot

import (
	"regexp"
	"strings"
)

var (
	nonDigits = regexp.MustCompile(`\D`)
	cpfDigits = regexp.MustCompile(`^\d{11}$`)
	tagDigits = regexp.MustCompile(`^\d{10}$`)
	// Accepts both the legacy plate format (AAA0000) and the Mercosul
	// one (AAA0A00).
	platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)
)

// sanitizeCPF strips everything but digits, so "123.456.789-01" and
// "12345678901" are treated the same.
func sanitizeCPF(body string) string {
	return nonDigits.ReplaceAllString(body, "")
}

// validCPF reports whether the sanitized input has exactly 11 digits.
func validCPF(cpf string) bool {
	return cpfDigits.MatchString(cpf)
}

// validTagNumber reports whether the input is exactly 10 digits.
func validTagNumber(number string) bool {
	return tagDigits.MatchString(number)
}

// normalizePlate upper-cases the trimmed input and reports whether it
// matches a Brazilian plate.
func normalizePlate(body string) (string, bool) {
	plate := strings.ToUpper(strings.TrimSpace(body))
	return plate, platePattern.MatchString(plate)
}
