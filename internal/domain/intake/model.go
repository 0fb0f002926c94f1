package intake

import "time"

// Draft es un formulario de intake en curso, del lado del servidor.
// Su estado (editing/ready) se deriva siempre de Fields.
type Draft struct {
	ID     string
	Fields FieldSet

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d Draft) State() State {
	return StateOf(d.Fields)
}
