// Package notifications mantiene las alertas vivas de cada cuenta
// (rotación, agua, alimento, sal) a partir de los reportes del motor de rotación.
package notifications

import (
	"sync"

	"cattle-farm-manager/internal/domain/rotation"
)

type Notification struct {
	ID            string
	Kind          rotation.Activity
	HerdID        string
	PastureNumber int
	Message       string
}

// ID compone el identificador determinístico de una alerta: como máximo una
// alerta viva por (actividad, rebaño).
func ID(kind rotation.Activity, herdID string) string {
	return string(kind) + "-" + herdID
}

// Registry es un conjunto de alertas indexado por ID que conserva el orden de inserción.
type Registry struct {
	mu    sync.Mutex
	order []string
	items map[string]Notification
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]Notification{}}
}

// Upsert inserta n si su ID no existe. Si existe, la entrada queda igual.
// Devuelve true cuando hubo inserción.
func (r *Registry) Upsert(n Notification) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[n.ID]; ok {
		return false
	}
	r.items[n.ID] = n
	r.order = append(r.order, n.ID)
	return true
}

// Replace reescribe una entrada existente sin moverla de su posición.
// Devuelve true solo si la entrada existía y cambió.
func (r *Registry) Replace(n Notification) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.items[n.ID]
	if !ok || cur == n {
		return false
	}
	r.items[n.ID] = n
	return true
}

// Remove borra la entrada id; no hace nada si no existe.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) List() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Registry) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}
