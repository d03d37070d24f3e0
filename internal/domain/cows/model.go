package cows

import "time"

// AnimalType define la categoría del animal dentro del hato.
// @Enum vaca, toro, novilla, novillo, maute, becerro, becerra
type AnimalType string

const (
	AnimalVaca    AnimalType = "vaca"
	AnimalToro    AnimalType = "toro"
	AnimalNovilla AnimalType = "novilla"
	AnimalNovillo AnimalType = "novillo"
	AnimalMaute   AnimalType = "maute"
	AnimalBecerro AnimalType = "becerro"
	AnimalBecerra AnimalType = "becerra"
)

var animalTypeLabels = map[AnimalType]string{
	AnimalVaca:    "Vaca",
	AnimalToro:    "Toro",
	AnimalNovilla: "Novilla",
	AnimalNovillo: "Novillo",
	AnimalMaute:   "Maute",
	AnimalBecerro: "Becerro",
	AnimalBecerra: "Becerra",
}

// Label devuelve el nombre para mostrar; tipos desconocidos se muestran tal cual.
func (t AnimalType) Label() string {
	if l, ok := animalTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Cow representa la ficha de un animal registrado en la finca.
type Cow struct {
	ID      string
	OwnerID string

	Name       string // código o nombre, requerido
	AnimalType AnimalType
	Breed      string

	BirthDate       *time.Time
	DeathDate       *time.Time
	LastCalvingDate *time.Time

	Father   string
	Mother   string
	Brand    string
	Location string

	// Fotos por etapa de vida
	BrandImageURL      string
	CalfImageURL       string
	AdolescentImageURL string
	AdultImageURL      string

	OwnerName string // nombre visible de quien lo registró

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GalleryImage es una foto de la ficha con su rótulo.
type GalleryImage struct {
	Label string
	URL   string
}

// Gallery devuelve las fotos cargadas, en orden de etapa.
func (c Cow) Gallery() []GalleryImage {
	all := []GalleryImage{
		{Label: "Marca", URL: c.BrandImageURL},
		{Label: "Becerro", URL: c.CalfImageURL},
		{Label: "Adolescente", URL: c.AdolescentImageURL},
		{Label: "Adulto", URL: c.AdultImageURL},
	}
	out := make([]GalleryImage, 0, len(all))
	for _, img := range all {
		if img.URL != "" {
			out = append(out, img)
		}
	}
	return out
}
