// Package validation holds the write-time rules: required payment fields and
// password strength.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PasswordSymbols accepted special characters for strong passwords.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

// MinPasswordLength minimum password length, in characters.
const MinPasswordLength = 8

// IsStrongPassword reports whether candidate has at least 8 characters with an
// ASCII upper-case letter, lower-case letter, digit and one of PasswordSymbols.
func IsStrongPassword(candidate string) bool {
	if utf8.RuneCountInString(candidate) < MinPasswordLength {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range candidate {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// RequiredFields returns one message per name that is absent from fields or
// exactly empty. Values are not trimmed. Messages follow the order of names.
func RequiredFields(fields map[string]string, names []string) []string {
	var msgs []string
	for _, name := range names {
		if fields[name] == "" {
			msgs = append(msgs, RequiredMessage(name))
		}
	}
	return msgs
}

// RequiredMessage human readable "field is required" message.
func RequiredMessage(name string) string {
	return fmt.Sprintf("The %s field is required.", FieldTitle(name))
}

// FieldTitle turns a field key into a title: "total_amount" -> "Total Amount".
func FieldTitle(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}
