package catalog

import (
	"strconv"
	"sync/atomic"
)

// Sequence asigna ids crecientes compartidos por todos los envíos.
// Reemplaza a "len(catálogo)+1", que colisiona con envíos concurrentes.
type Sequence struct {
	n atomic.Uint64
}

// Next reserva el siguiente id. Nunca devuelve el mismo valor dos veces.
func (s *Sequence) Next() string {
	return strconv.FormatUint(s.n.Add(1), 10)
}

// AdvancePast garantiza que los próximos ids sean mayores que id (si es numérico).
// Se usa al cargar fichas con ids ya asignados.
func (s *Sequence) AdvancePast(id string) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return
	}
	for {
		cur := s.n.Load()
		if cur >= v || s.n.CompareAndSwap(cur, v) {
			return
		}
	}
}
