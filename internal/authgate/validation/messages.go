// Package validation содержит правила и сообщения проверки учетных данных.
// Сообщения - пользовательский текст продукта (французский); они
// возвращаются клиенту как есть.
package validation

import "fmt"

// Фиксированные сообщения каталога.
const (
	MsgInvalidEmail = "Veuillez entrer un email valide"
	MsgWeakPassword = "Le mot de passe doit contenir au moins 1 minuscule, 1 majuscule et 1 chiffre"

	MsgUserExists           = "Cet utilisateur existe déjà. Veuillez entrer une nouvelle adresse mail"
	MsgConfirmPasswordWrong = "Les 2 mots de passe ne correspondent pas. Veuillez réessayer"
	MsgIncorrectCredentials = "Identifiants incorrects. Veuillez réessayer"

	MsgAuthRequired   = "Veuillez vous authentifier"
	MsgReauthRequired = "Veuillez vous reconnecter"
)

// Названия полей, как они показываются пользователю.
const (
	FieldFirstName       = "Prénom"
	FieldLastName        = "Nom de famille"
	FieldEmail           = "Email"
	FieldPassword        = "Mot de passe"
	FieldConfirmPassword = "Confirmer le mot de passe"

	LabelFirstName = "Le prénom"
	LabelLastName  = "Le nom de famille"
	LabelEmail     = "L'email"
	LabelPassword  = "Le mot de passe"
)

// MsgRequired возвращает сообщение об обязательном поле.
func MsgRequired(field string) string {
	return fmt.Sprintf("Le champ %s est requis", field)
}

// MsgMinLength возвращает сообщение о минимальной длине поля.
func MsgMinLength(label string, min int) string {
	return fmt.Sprintf("%s doit contenir au moins %d caractères", label, min)
}

// MsgMaxLength возвращает сообщение о максимальной длине поля.
func MsgMaxLength(label string, max int) string {
	return fmt.Sprintf("%s ne peut pas dépasser %d caractères", label, max)
}

// MsgInvalidNameField возвращает сообщение о недопустимых символах в имени.
func MsgInvalidNameField(label string) string {
	return fmt.Sprintf("%s est invalide. Il doit contenir des lettres. Les traits d'union et apostrophes sont les seuls caractères spéciaux acceptés.", label)
}
