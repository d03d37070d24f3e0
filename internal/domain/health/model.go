package health

import "time"

// Event es un registro sanitario de un animal: vacuna, baño, tratamiento, IATF.
type Event struct {
	ID    string
	CowID string

	Type      EventType
	EventDate time.Time
	Notes     string

	// ReminderDate es opcional: próxima dosis o revisión.
	ReminderDate *time.Time

	RecordedBy string
	RecordedAt time.Time
	Status     Status
}
