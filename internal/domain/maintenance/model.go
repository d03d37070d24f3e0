package maintenance

import "time"

type EventType string

const (
	TypeLimpiezaCercas      EventType = "limpieza_cercas"
	TypeFumigada            EventType = "fumigada"
	TypeCercaNueva          EventType = "cerca_nueva"
	TypeCercaReforzada      EventType = "cerca_reforzada"
	TypeArrancadaTroncos    EventType = "arrancada_troncos"
	TypeCorralNuevo         EventType = "corral_nuevo"
	TypeMantenimientoCorral EventType = "mantenimiento_corral"
	TypeLimpiadaZona        EventType = "limpiada_zona"
	TypeTrabajoMaquina      EventType = "trabajo_maquina"
	TypeTanque              EventType = "tanque"
	TypeTumba               EventType = "tumba"
	TypeTrabajosPorHacer    EventType = "trabajos_por_hacer"
)

// EventTypes en el orden del formulario.
var EventTypes = []EventType{
	TypeLimpiezaCercas,
	TypeFumigada,
	TypeCercaNueva,
	TypeCercaReforzada,
	TypeArrancadaTroncos,
	TypeCorralNuevo,
	TypeMantenimientoCorral,
	TypeLimpiadaZona,
	TypeTrabajoMaquina,
	TypeTanque,
	TypeTumba,
	TypeTrabajosPorHacer,
}

var typeLabels = map[EventType]string{
	TypeLimpiezaCercas:      "Limpieza de Cercas",
	TypeFumigada:            "Fumigada",
	TypeCercaNueva:          "Cerca Nueva",
	TypeCercaReforzada:      "Cerca Reforzada",
	TypeArrancadaTroncos:    "Arrancada de Troncos",
	TypeCorralNuevo:         "Corral Nuevo",
	TypeMantenimientoCorral: "Mantenimiento de Corral",
	TypeLimpiadaZona:        "Limpiada de Zona",
	TypeTrabajoMaquina:      "Trabajo con Máquina",
	TypeTanque:              "Tanque",
	TypeTumba:               "Tumba",
	TypeTrabajosPorHacer:    "Trabajos por Hacer",
}

func (t EventType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

func (t EventType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Event es un trabajo de mantenimiento de la finca.
type Event struct {
	ID      string
	OwnerID string

	Type      EventType
	EventDate time.Time

	Employees *int     // cantidad de trabajadores
	Days      *float64 // jornadas; admite medias
	Notes     string

	CreatedAt time.Time
}
