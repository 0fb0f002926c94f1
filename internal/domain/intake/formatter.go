package intake

import "strings"

const (
	// PhoneMaskLen es el largo de la máscara completa "(DD) 9XXXX-XXXX".
	PhoneMaskLen = 15
	// DateMaskLen es el largo de la máscara completa "DD/MM/YYYY".
	DateMaskLen = 10

	maxPhoneDigits = 11
	maxDateDigits  = 8
)

// StripNonDigits descarta todo carácter que no sea un dígito decimal ASCII.
// Recorre bytes: ningún byte de una secuencia UTF-8 multibyte cae en '0'..'9'.
func StripNonDigits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatPhone re-enmascara lo tecleado como celular brasileño: "(DD) 9XXXX-XXXX".
// Nunca produce más de PhoneMaskLen caracteres.
func FormatPhone(text string) string {
	d := firstN(StripNonDigits(text), maxPhoneDigits)

	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 6:
		return "(" + d[:2] + ") " + d[2:]
	default:
		// 7..11 dígitos; con 11 d[7:] ya es d[7:11] por el truncado.
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// FormatDate re-enmascara lo tecleado como "DD/MM/YYYY".
// No valida calendario: cualquier combinación de dígitos es aceptada.
func FormatDate(text string) string {
	d := firstN(StripNonDigits(text), maxDateDigits)

	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
