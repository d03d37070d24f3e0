package rotation

import (
	"testing"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestHerdIcon(t *testing.T) {
	require.Equal(t, "horse", HerdIcon("Caballos"))
	require.Equal(t, "horse", HerdIcon("caballo criollo"))
	require.Equal(t, "cow", HerdIcon("Vacas"))
	require.Equal(t, "cow", HerdIcon(""))
}

func TestBuildMap(t *testing.T) {
	ps := []pastures.Pasture{
		{PastureNumber: 3, RotationDays: intPtr(30)},
		{PastureNumber: 1},
		{PastureNumber: 40}, // sin posición en el mapa
	}
	hs := []herds.Herd{
		{ID: "H1", Name: "Lecheras", AnimalType: "Vacas", CurrentPastureNumber: 3, LastRotationDate: day("2024-01-01")},
		{ID: "H2", Name: "Potros", AnimalType: "Caballos", CurrentPastureNumber: 3, LastRotationDate: day("2024-01-20")},
	}

	fc := BuildMap(day("2024-02-01"), ps, hs, 3)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	require.Equal(t, 1, first.Properties["pasture_number"])
	require.Equal(t, orb.Point{12, 22}, first.Geometry)
	require.Equal(t, false, first.Properties["selected"])
	_, hasLabel := first.Properties["rotation_label"]
	require.False(t, hasLabel)

	second := fc.Features[1]
	require.Equal(t, 3, second.Properties["pasture_number"])
	require.Equal(t, true, second.Properties["selected"])
	require.Equal(t, "¡Ahora!", second.Properties["rotation_label"])

	markers := second.Properties["herds"].([]map[string]any)
	require.Len(t, markers, 2)
	require.Equal(t, "cow", markers[0]["icon"])
	require.Equal(t, "red", markers[0]["color"])
	require.Equal(t, "horse", markers[1]["icon"])
	require.Equal(t, "blue", markers[1]["color"])
}
