package herds

import "time"

// Herd es un grupo de animales que ocupa un potrero.
// CurrentPastureNumber referencia Pasture.PastureNumber por valor.
type Herd struct {
	ID      string
	OwnerID string

	Name        string
	AnimalType  string // libre: "Vacas", "Caballos", ...
	AnimalCount int

	CurrentPastureNumber int

	LastRotationDate time.Time
	LastWaterDate    *time.Time
	LastFeedDate     *time.Time
	LastSaltDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CareKind son los cuidados que se registran con fecha sobre un rebaño.
type CareKind string

const (
	CareWater CareKind = "water"
	CareFeed  CareKind = "feed"
	CareSalt  CareKind = "salt"
)
