package intake

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifica un campo del formulario tal como viaja en la API.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldBirthDate       Field = "birth_date"
	FieldPassword        Field = "password"
	FieldPasswordConfirm Field = "password_confirm"
	FieldSpecies         Field = "species"
	FieldSex             Field = "sex"
	FieldAgeGroup        Field = "age_group"
	FieldSize            Field = "size"
)

// FieldKind decide qué transformación recibe el texto crudo de un campo.
type FieldKind int

const (
	KindPlainText FieldKind = iota
	KindPhoneMasked
	KindDateMasked
	KindSelectorEnum
)

func (k FieldKind) String() string {
	switch k {
	case KindPhoneMasked:
		return "phone_masked"
	case KindDateMasked:
		return "date_masked"
	case KindSelectorEnum:
		return "selector_enum"
	default:
		return "plain_text"
	}
}

// Species define las especies que el adoptante puede elegir.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Sex define el sexo preferido.
// @Enum male, female
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// AgeGroup define la franja de edad preferida.
// @Enum puppy, adult, senior
type AgeGroup string

const (
	AgePuppy  AgeGroup = "puppy"
	AgeAdult  AgeGroup = "adult"
	AgeSenior AgeGroup = "senior"
)

// Size define el porte preferido.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// FieldSet es el estado completo del formulario. El valor cero es el formulario vacío.
type FieldSet struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	BirthDate       string   `json:"birth_date"`
	Password        string   `json:"password"`
	PasswordConfirm string   `json:"password_confirm"`
	Species         Species  `json:"species"`
	Sex             Sex      `json:"sex"`
	AgeGroup        AgeGroup `json:"age_group"`
	Size            Size     `json:"size"`
}

type fieldSpec struct {
	kind FieldKind
	// rule es un tag de go-playground/validator; solo aplica a selectores.
	rule string
}

// fieldSpecs es la tabla de despacho: nombre de campo -> tipo de transformación.
var fieldSpecs = map[Field]fieldSpec{
	FieldName:            {kind: KindPlainText},
	FieldEmail:           {kind: KindPlainText},
	FieldPhone:           {kind: KindPhoneMasked},
	FieldBirthDate:       {kind: KindDateMasked},
	FieldPassword:        {kind: KindPlainText},
	FieldPasswordConfirm: {kind: KindPlainText},
	FieldSpecies:         {kind: KindSelectorEnum, rule: "oneof=dog cat"},
	FieldSex:             {kind: KindSelectorEnum, rule: "oneof=male female"},
	FieldAgeGroup:        {kind: KindSelectorEnum, rule: "oneof=puppy adult senior"},
	FieldSize:            {kind: KindSelectorEnum, rule: "oneof=small medium large"},
}

// fieldOrder fija el orden de iteración (el mismo del formulario).
var fieldOrder = []Field{
	FieldName, FieldEmail, FieldPhone, FieldBirthDate, FieldPassword, FieldPasswordConfirm,
	FieldSpecies, FieldSex, FieldAgeGroup, FieldSize,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("intake_field", func(fl validator.FieldLevel) bool {
		_, ok := fieldSpecs[Field(fl.Field().String())]
		return ok
	})
	return v
}

// Fields devuelve los nombres de campo en orden de formulario.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// KindOf devuelve el tipo de un campo conocido.
func KindOf(name Field) (FieldKind, error) {
	spec, ok := fieldSpecs[name]
	if !ok {
		return KindPlainText, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return spec.kind, nil
}

// Format aplica la transformación del campo al texto crudo (onFieldChange).
// Teléfono y fecha se enmascaran, el texto libre pasa intacto y los selectores
// solo aceptan un valor de su enumeración (o "" para limpiar).
func Format(name Field, raw string) (string, error) {
	spec, ok := fieldSpecs[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	switch spec.kind {
	case KindPhoneMasked:
		return FormatPhone(raw), nil
	case KindDateMasked:
		return FormatDate(raw), nil
	case KindSelectorEnum:
		if err := validate.Var(raw, "omitempty,"+spec.rule); err != nil {
			return "", fmt.Errorf("%w: %s=%q", ErrInvalidSelection, name, raw)
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// Get lee el valor actual de un campo.
func (f FieldSet) Get(name Field) (string, error) {
	switch name {
	case FieldName:
		return f.Name, nil
	case FieldEmail:
		return f.Email, nil
	case FieldPhone:
		return f.Phone, nil
	case FieldBirthDate:
		return f.BirthDate, nil
	case FieldPassword:
		return f.Password, nil
	case FieldPasswordConfirm:
		return f.PasswordConfirm, nil
	case FieldSpecies:
		return string(f.Species), nil
	case FieldSex:
		return string(f.Sex), nil
	case FieldAgeGroup:
		return string(f.AgeGroup), nil
	case FieldSize:
		return string(f.Size), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// With devuelve una copia con el campo actualizado desde texto crudo, y el valor
// formateado que quedó guardado.
func (f FieldSet) With(name Field, raw string) (FieldSet, string, error) {
	v, err := Format(name, raw)
	if err != nil {
		return f, "", err
	}

	switch name {
	case FieldName:
		f.Name = v
	case FieldEmail:
		f.Email = v
	case FieldPhone:
		f.Phone = v
	case FieldBirthDate:
		f.BirthDate = v
	case FieldPassword:
		f.Password = v
	case FieldPasswordConfirm:
		f.PasswordConfirm = v
	case FieldSpecies:
		f.Species = Species(v)
	case FieldSex:
		f.Sex = Sex(v)
	case FieldAgeGroup:
		f.AgeGroup = AgeGroup(v)
	case FieldSize:
		f.Size = Size(v)
	}
	return f, v, nil
}

// Normalize pasa cada campo por su transformación. Sirve para conjuntos de campos
// que llegan completos (sin pasar tecla por tecla por Format).
func Normalize(f FieldSet) (FieldSet, error) {
	out := FieldSet{}
	var problems []string
	for _, name := range fieldOrder {
		raw, _ := f.Get(name)
		next, _, err := out.With(name, raw)
		if err != nil {
			problems = append(problems, string(name))
			continue
		}
		out = next
	}
	if len(problems) > 0 {
		return FieldSet{}, fmt.Errorf("%w: %s", ErrInvalidSelection, strings.Join(problems, ","))
	}
	return out, nil
}
