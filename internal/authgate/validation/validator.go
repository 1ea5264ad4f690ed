package validation

import "unicode/utf8"

// RegistrationInput содержит поля формы регистрации (уже обрезанные).
type RegistrationInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput содержит поля формы входа (уже обрезанные).
type LoginInput struct {
	Email    string
	Password string
}

// ValidateRegistration проверяет поля регистрации и возвращает
// упорядоченный список сообщений; пустой список означает валидный ввод.
// Проверки не прерываются на первой ошибке: ответ перечисляет всё,
// что не так, за один круг. Совпадение пароля и подтверждения
// проверяется отдельно, после полевых проверок (см. AuthUseCase).
func ValidateRegistration(input RegistrationInput) []string {
	messages := make([]string, 0)

	messages = appendNameChecks(messages, input.FirstName, FieldFirstName, LabelFirstName)
	messages = appendNameChecks(messages, input.LastName, FieldLastName, LabelLastName)
	messages = appendEmailChecks(messages, input.Email)
	messages = appendPasswordChecks(messages, input.Password)

	if input.ConfirmPassword == "" {
		messages = append(messages, MsgRequired(FieldConfirmPassword))
	}

	return messages
}

// ValidateLogin проверяет только присутствие полей входа; политика
// сложности пароля при входе не перепроверяется.
func ValidateLogin(input LoginInput) []string {
	messages := make([]string, 0)

	if input.Email == "" {
		messages = append(messages, MsgRequired(FieldEmail))
	} else if !IsValidEmail(input.Email) {
		messages = append(messages, MsgInvalidEmail)
	}

	if input.Password == "" {
		messages = append(messages, MsgRequired(FieldPassword))
	}

	return messages
}

func appendNameChecks(messages []string, value, field, label string) []string {
	if value == "" {
		return append(messages, MsgRequired(field))
	}

	if !IsValidNameField(value) {
		messages = append(messages, MsgInvalidNameField(label))
	}

	length := utf8.RuneCountInString(value)
	if length < MinNameLength {
		messages = append(messages, MsgMinLength(label, MinNameLength))
	}
	if length > MaxNameLength {
		messages = append(messages, MsgMaxLength(label, MaxNameLength))
	}

	return messages
}

func appendEmailChecks(messages []string, value string) []string {
	if value == "" {
		return append(messages, MsgRequired(LabelEmail))
	}

	if utf8.RuneCountInString(value) > MaxEmailLength {
		messages = append(messages, MsgMaxLength(LabelEmail, MaxEmailLength))
	}
	if !IsValidEmail(value) {
		messages = append(messages, MsgInvalidEmail)
	}

	return messages
}

func appendPasswordChecks(messages []string, value string) []string {
	if value == "" {
		return append(messages, MsgRequired(FieldPassword))
	}

	length := len(value)
	if length < MinPasswordLength {
		messages = append(messages, MsgMinLength(LabelPassword, MinPasswordLength))
	}
	if length > MaxPasswordLength {
		messages = append(messages, MsgMaxLength(LabelPassword, MaxPasswordLength))
	}
	if !IsStrongPassword(value) {
		messages = append(messages, MsgWeakPassword)
	}

	return messages
}
