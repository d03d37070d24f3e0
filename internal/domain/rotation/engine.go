// Package rotation calcula, para cada rebaño, cuántos días faltan para rotar
// de potrero y para cada cuidado periódico (agua, alimento, sal).
//
// El cálculo es puro: no toca el almacenamiento ni el reloj; "hoy" llega como
// argumento. Eso permite reevaluarlo en cada cambio de datos y probarlo sin
// ninguna base de datos.
package rotation

import (
	"fmt"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
)

type Activity string

const (
	ActivityRotation Activity = "rotation"
	ActivityWater    Activity = "water"
	ActivityFeed     Activity = "feed"
	ActivitySalt     Activity = "salt"
)

// Activities en el orden en que se evalúan y se muestran.
var Activities = []Activity{ActivityRotation, ActivityWater, ActivityFeed, ActivitySalt}

type Countdown struct {
	DaysRemaining int
	IsDue         bool
}

// Report es el resultado de evaluar un rebaño contra su potrero.
// Las actividades sin seguimiento no aparecen en Countdowns.
type Report struct {
	HerdID        string
	HerdName      string
	PastureNumber int
	Countdowns    map[Activity]Countdown
}

// Evaluate calcula los conteos de h sobre p a la fecha today.
// No valida que h.CurrentPastureNumber coincida con p; eso lo hace EvaluateAll.
//
// La rotación vence en lastRotation + rotationDays - 1: una estadía de 30 días
// que arranca el 1 termina el 30. Es un día antes que sumar rotationDays a la
// fecha de llegada, que es la regla de agua, alimento y sal (last + frecuencia).
func Evaluate(today time.Time, h herds.Herd, p pastures.Pasture) Report {
	r := Report{
		HerdID:        h.ID,
		HerdName:      h.Name,
		PastureNumber: p.PastureNumber,
		Countdowns:    make(map[Activity]Countdown, len(Activities)),
	}

	loc := today.Location()

	// el día de llegada cuenta como primer día de ocupación
	if p.RotationDays != nil && !h.LastRotationDate.IsZero() {
		due := civil(h.LastRotationDate, loc).AddDate(0, 0, *p.RotationDays-1)
		r.Countdowns[ActivityRotation] = countdown(today, due)
	}

	care := []struct {
		activity Activity
		freq     *int
		last     *time.Time
	}{
		{ActivityWater, p.WaterFrequency, h.LastWaterDate},
		{ActivityFeed, p.FeedFrequency, h.LastFeedDate},
		{ActivitySalt, p.SaltFrequency, h.LastSaltDate},
	}
	for _, c := range care {
		if c.freq == nil || c.last == nil {
			continue
		}
		due := civil(*c.last, loc).AddDate(0, 0, *c.freq)
		r.Countdowns[c.activity] = countdown(today, due)
	}

	return r
}

// EvaluateAll empareja cada rebaño con el potrero cuyo número coincide
// exactamente. Rebaños sin potrero no producen reporte.
func EvaluateAll(today time.Time, ps []pastures.Pasture, hs []herds.Herd) []Report {
	byNumber := make(map[int]pastures.Pasture, len(ps))
	for _, p := range ps {
		if _, ok := byNumber[p.PastureNumber]; !ok {
			byNumber[p.PastureNumber] = p
		}
	}

	out := make([]Report, 0, len(hs))
	for _, h := range hs {
		p, ok := byNumber[h.CurrentPastureNumber]
		if !ok {
			continue
		}
		out = append(out, Evaluate(today, h, p))
	}
	return out
}

// Due devuelve las actividades vencidas del reporte, en el orden de Activities.
func (r Report) Due() []Activity {
	var out []Activity
	for _, a := range Activities {
		if c, ok := r.Countdowns[a]; ok && c.IsDue {
			out = append(out, a)
		}
	}
	return out
}

// Label es el texto corto que acompaña a un conteo en pantalla.
func (c Countdown) Label() string {
	switch {
	case c.IsDue:
		return "¡Ahora!"
	case c.DaysRemaining == 1:
		return "en 1 día"
	default:
		return fmt.Sprintf("en %d días", c.DaysRemaining)
	}
}

func countdown(today, due time.Time) Countdown {
	days := daysBetween(civil(today, today.Location()), due)
	return Countdown{DaysRemaining: days, IsDue: days <= 0}
}

// civil reduce t a su fecha calendario en loc.
func civil(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween cuenta días calendario de from a to comparando medianoches UTC,
// así un cambio de horario no deja diferencias de 23 o 25 horas.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
