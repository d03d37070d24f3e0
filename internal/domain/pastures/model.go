package pastures

import "time"

// Pasture es un potrero cercado con sus frecuencias de cuidado (en días).
// Un puntero nil significa que esa actividad no se controla en este potrero.
type Pasture struct {
	ID      string
	OwnerID string

	PastureNumber int

	RotationDays   *int
	WaterFrequency *int
	FeedFrequency  *int
	SaltFrequency  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
