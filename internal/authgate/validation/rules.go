package validation

import "regexp"

// Границы длины полей.
const (
	MinNameLength = 2
	MaxNameLength = 255

	MaxEmailLength = 255

	MinPasswordLength = 6
	MaxPasswordLength = 255
)

// Правила полей. Имена принимают буквы расширенной латиницы; дефис и
// апостроф - единственные допустимые спецсимволы, и только внутри.
var (
	nameFieldRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ][a-zA-ZÀ-ÿ'-]*[a-zA-ZÀ-ÿ]$`)
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	hasLowercaseRegex = regexp.MustCompile(`[a-z]`)
	hasUppercaseRegex = regexp.MustCompile(`[A-Z]`)
	hasDigitRegex     = regexp.MustCompile(`[0-9]`)
)

// IsValidNameField проверяет имя по шаблону полей имени.
func IsValidNameField(value string) bool {
	return nameFieldRegex.MatchString(value)
}

// IsValidEmail проверяет синтаксис адреса электронной почты.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsStrongPassword проверяет политику сложности пароля:
// минимум одна строчная буква, одна заглавная и одна цифра.
func IsStrongPassword(value string) bool {
	return hasLowercaseRegex.MatchString(value) &&
		hasUppercaseRegex.MatchString(value) &&
		hasDigitRegex.MatchString(value)
}
