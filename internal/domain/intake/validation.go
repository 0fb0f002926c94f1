package intake

import (
	"regexp"
	"unicode/utf8"
)

// emailPattern es un chequeo estructural mínimo, no RFC y sin anclas:
// basta con que aparezca algo@algo.algo en el texto. "Espacio" incluye \v y los
// espacios Unicode (U+00A0, U+2028, U+FEFF...), no solo los ASCII de \s.
var emailPattern = regexp.MustCompile(`[^\s\v\p{Z}\x{FEFF}]+@[^\s\v\p{Z}\x{FEFF}]+\.[^\s\v\p{Z}\x{FEFF}]+`)

// EmailValid indica si el email tiene la forma mínima x@y.z.
func EmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// PasswordsMatch exige password no vacío e idéntico a la confirmación.
func PasswordsMatch(password, confirm string) bool {
	return password != "" && password == confirm
}

type check struct {
	field Field
	ok    func(FieldSet) bool
}

// checks son los términos de la conjunción que define "submittable".
var checks = []check{
	{FieldName, func(f FieldSet) bool { return f.Name != "" }},
	{FieldEmail, func(f FieldSet) bool { return EmailValid(f.Email) }},
	{FieldPhone, func(f FieldSet) bool { return utf8.RuneCountInString(f.Phone) == PhoneMaskLen }},
	{FieldBirthDate, func(f FieldSet) bool { return utf8.RuneCountInString(f.BirthDate) == DateMaskLen }},
	{FieldPassword, func(f FieldSet) bool { return f.Password != "" }},
	{FieldPasswordConfirm, func(f FieldSet) bool { return PasswordsMatch(f.Password, f.PasswordConfirm) }},
	{FieldSpecies, func(f FieldSet) bool { return selected(FieldSpecies, string(f.Species)) }},
	{FieldSex, func(f FieldSet) bool { return selected(FieldSex, string(f.Sex)) }},
	{FieldAgeGroup, func(f FieldSet) bool { return selected(FieldAgeGroup, string(f.AgeGroup)) }},
	{FieldSize, func(f FieldSet) bool { return selected(FieldSize, string(f.Size)) }},
}

// selected exige un valor de la enumeración del selector; vacío no cuenta.
func selected(name Field, v string) bool {
	return v != "" && validate.Var(v, fieldSpecs[name].rule) == nil
}

// IsSubmittable es la conjunción de todas las condiciones del formulario.
// Función pura: se recalcula en cada cambio, nunca se cachea.
func IsSubmittable(f FieldSet) bool {
	for _, c := range checks {
		if !c.ok(f) {
			return false
		}
	}
	return true
}

// Missing devuelve los campos cuya condición falla, en orden de formulario.
// Un password vacío marca tanto password como password_confirm.
func Missing(f FieldSet) []Field {
	var out []Field
	for _, c := range checks {
		if !c.ok(f) {
			out = append(out, c.field)
		}
	}
	return out
}

// State es el estado del formulario: editing o ready. No hay otros.
type State string

const (
	StateEditing State = "editing"
	StateReady   State = "ready"
)

func StateOf(f FieldSet) State {
	if IsSubmittable(f) {
		return StateReady
	}
	return StateEditing
}
