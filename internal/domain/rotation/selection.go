package rotation

import (
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
)

// Selection es lo que se muestra al elegir un potrero en el mapa.
type Selection struct {
	Pasture *pastures.Pasture
	Herds   []herds.Herd
}

// Select busca el potrero number y los rebaños que lo ocupan, en el orden recibido.
func Select(number int, ps []pastures.Pasture, hs []herds.Herd) Selection {
	var sel Selection
	for i := range ps {
		if ps[i].PastureNumber == number {
			p := ps[i]
			sel.Pasture = &p
			break
		}
	}
	for _, h := range hs {
		if h.CurrentPastureNumber == number {
			sel.Herds = append(sel.Herds, h)
		}
	}
	return sel
}

// FirstHerd devuelve el primer rebaño del potrero.
// Cuando varios rebaños comparten potrero, el conteo se muestra solo para este.
func (s Selection) FirstHerd() (herds.Herd, bool) {
	if len(s.Herds) == 0 {
		return herds.Herd{}, false
	}
	return s.Herds[0], true
}

// Countdown evalúa el primer rebaño contra el potrero seleccionado.
func (s Selection) Countdown(today time.Time) (Report, bool) {
	h, ok := s.FirstHerd()
	if !ok || s.Pasture == nil {
		return Report{}, false
	}
	return Evaluate(today, h, *s.Pasture), true
}
