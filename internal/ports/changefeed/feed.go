package changefeed

import "context"

// Colecciones observadas por el motor de recordatorios.
const (
	CollectionPastures = "pastures"
	CollectionHerds    = "herds"
)

type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Change describe una escritura sobre un documento de una colección.
type Change struct {
	Collection string `json:"collection"`
	OwnerID    string `json:"owner_id"`
	DocumentID string `json:"document_id"`
	Op         Op     `json:"op"`
}

// Handler recibe cada cambio publicado en la colección suscrita.
type Handler func(Change)

// Feed abstrae el mecanismo de "suscribirse a una colección y recibir callback".
// Cancelar el contexto de Subscribe termina la suscripción.
type Feed interface {
	Publish(ctx context.Context, c Change) error
	Subscribe(ctx context.Context, collection string, fn Handler) error
}
