package notifications

import (
	"fmt"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
	"cattle-farm-manager/internal/domain/rotation"
)

// Message arma el texto de la alerta para una actividad vencida.
func Message(kind rotation.Activity, herdName string, pastureNumber int) string {
	switch kind {
	case rotation.ActivityRotation:
		return fmt.Sprintf("Rebaño '%s' necesita rotar del potrero %d.", herdName, pastureNumber)
	case rotation.ActivityWater:
		return fmt.Sprintf("Potrero %d necesita bombeo de agua.", pastureNumber)
	case rotation.ActivityFeed:
		return fmt.Sprintf("Rebaño '%s' necesita alimentación en el potrero %d.", herdName, pastureNumber)
	case rotation.ActivitySalt:
		return fmt.Sprintf("Rebaño '%s' necesita sal/melaza en el potrero %d.", herdName, pastureNumber)
	default:
		return fmt.Sprintf("Rebaño '%s': %s pendiente en el potrero %d.", herdName, kind, pastureNumber)
	}
}

// Reconcile hace una pasada de evaluación sobre reg: inserta las alertas
// vencidas y quita las que ya no lo están. Al terminar, reg contiene
// exactamente las condiciones vencidas de hoy, sin importar su estado previo;
// una alerta que sigue vencida conserva su posición pero toma el texto actual.
// Devuelve cuántas alertas se agregaron y cuántas se quitaron.
func Reconcile(reg *Registry, today time.Time, ps []pastures.Pasture, hs []herds.Herd) (added, removed int) {
	want := map[string]bool{}

	for _, rep := range rotation.EvaluateAll(today, ps, hs) {
		for _, a := range rotation.Activities {
			id := ID(a, rep.HerdID)
			c, tracked := rep.Countdowns[a]
			if !tracked || !c.IsDue {
				if reg.Remove(id) {
					removed++
				}
				continue
			}
			want[id] = true
			n := Notification{
				ID:            id,
				Kind:          a,
				HerdID:        rep.HerdID,
				PastureNumber: rep.PastureNumber,
				Message:       Message(a, rep.HerdName, rep.PastureNumber),
			}
			if reg.Upsert(n) {
				added++
				continue
			}
			// sigue vencida pero el rebaño cambió de nombre o de potrero
			reg.Replace(n)
		}
	}

	// rebaños borrados o sin potrero
	for _, id := range reg.ids() {
		if !want[id] && reg.Remove(id) {
			removed++
		}
	}
	return added, removed
}
