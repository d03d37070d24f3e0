package health

type EventType string

const (
	EventVaccination  EventType = "vaccination"
	EventDeworming    EventType = "deworming"
	EventVitamins     EventType = "vitamins"
	EventFlyBath      EventType = "fly_bath"
	EventTickBath     EventType = "tick_bath"
	EventMastitis     EventType = "mastitis"
	EventOtherDisease EventType = "other_disease"
	EventIATFImplant  EventType = "iatf_implant"
	EventIATFBirth    EventType = "iatf_birth"
)

// EventTypes en el orden en que se ofrecen al registrar un evento.
var EventTypes = []EventType{
	EventVaccination,
	EventDeworming,
	EventVitamins,
	EventFlyBath,
	EventTickBath,
	EventMastitis,
	EventOtherDisease,
	EventIATFImplant,
	EventIATFBirth,
}

var eventLabels = map[EventType]string{
	EventVaccination:  "Vacunación",
	EventDeworming:    "Desparasitación",
	EventVitamins:     "Vitaminas",
	EventFlyBath:      "Baño de Mosca",
	EventTickBath:     "Baño de Garrapata",
	EventMastitis:     "Mastitis",
	EventOtherDisease: "Otra Enfermedad",
	EventIATFImplant:  "Implante IATF",
	EventIATFBirth:    "Parto IATF",
}

func (t EventType) Valid() bool {
	_, ok := eventLabels[t]
	return ok
}

func (t EventType) Label() string {
	if l, ok := eventLabels[t]; ok {
		return l
	}
	return string(t)
}

type Status string

const (
	StatusActive Status = "active"
	StatusVoided Status = "voided"
)
