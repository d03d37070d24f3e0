package rotation

import (
	"sort"
	"strings"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Posiciones de los potreros sobre la imagen de la finca, en porcentaje.
// Los puntos son orb.Point{left, top}: x crece a la derecha, y hacia abajo.
var layout = map[int]orb.Point{
	1:  {12, 22},
	2:  {28, 22},
	3:  {48, 8},
	4:  {65, 8},
	5:  {80, 8},
	6:  {80, 35},
	7:  {80, 55},
	8:  {65, 55},
	9:  {50, 55},
	10: {75, 80},
	11: {60, 80},
	12: {45, 80},
	13: {25, 80},
	14: {12, 55},
	15: {28, 55},
}

var herdColors = []string{"red", "blue", "yellow", "green", "purple", "pink"}

// Position devuelve la posición de un potrero en el mapa, si tiene una asignada.
func Position(number int) (orb.Point, bool) {
	p, ok := layout[number]
	return p, ok
}

// HerdIcon elige el ícono del marcador según el tipo de animal.
func HerdIcon(animalType string) string {
	if strings.Contains(strings.ToLower(animalType), "caballo") {
		return "horse"
	}
	return "cow"
}

// BuildMap arma el mapa de la finca como FeatureCollection GeoJSON: un punto
// por potrero configurado que tenga posición. Cada feature lleva los rebaños
// que lo ocupan y, si lo hay, el conteo de rotación del primero.
func BuildMap(today time.Time, ps []pastures.Pasture, hs []herds.Herd, selected int) *geojson.FeatureCollection {
	sorted := make([]pastures.Pasture, len(ps))
	copy(sorted, ps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PastureNumber < sorted[j].PastureNumber })

	// color estable por rebaño según su orden de llegada
	colors := make(map[string]string, len(hs))
	for i, h := range hs {
		colors[h.ID] = herdColors[i%len(herdColors)]
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range sorted {
		pt, ok := layout[p.PastureNumber]
		if !ok {
			continue
		}

		sel := Select(p.PastureNumber, ps, hs)
		markers := make([]map[string]any, 0, len(sel.Herds))
		for _, h := range sel.Herds {
			markers = append(markers, map[string]any{
				"id":    h.ID,
				"name":  h.Name,
				"icon":  HerdIcon(h.AnimalType),
				"color": colors[h.ID],
			})
		}

		f := geojson.NewFeature(pt)
		f.Properties["pasture_number"] = p.PastureNumber
		f.Properties["selected"] = p.PastureNumber == selected
		f.Properties["herds"] = markers
		if r, ok := sel.Countdown(today); ok {
			if c, tracked := r.Countdowns[ActivityRotation]; tracked {
				f.Properties["rotation_label"] = c.Label()
				f.Properties["rotation_due"] = c.IsDue
			}
		}
		fc.Append(f)
	}
	return fc
}
