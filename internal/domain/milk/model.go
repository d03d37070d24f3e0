package milk

import "time"

// Record es el ordeño de un día para un animal, en litros.
type Record struct {
	ID      string
	CowID   string
	OwnerID string

	Date   time.Time
	Amount float64

	CreatedAt time.Time
}

// ChartPoint es una barra del gráfico de producción.
type ChartPoint struct {
	Date   string // dd/MM
	Liters float64
}

type Summary struct {
	Count   int
	Total   float64
	Average float64
	// Series va del registro más antiguo al más reciente.
	Series []ChartPoint
}
