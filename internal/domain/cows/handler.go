package cows

import (
	"errors"
	"net/http"
	"time"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/clock"
	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /cows. nested recibe el subrouter /cows/{cowID} para
// que salud y producción de leche cuelguen de la ficha.
func RegisterRoutes(r chi.Router, svc *Service, loc *time.Location, nested ...func(chi.Router)) {
	r.Route("/cows", func(cr chi.Router) {
		cr.Get("/", searchCowsHandler(svc))
		cr.Post("/", createCowHandler(svc, loc))

		cr.Route("/{cowID}", func(ir chi.Router) {
			ir.Get("/", getCowHandler(svc))
			ir.Put("/", replaceCowHandler(svc, loc))
			ir.Delete("/", deleteCowHandler(svc))

			for _, register := range nested {
				register(ir)
			}
		})
	})
}

type cowRequest struct {
	Name       string `json:"name" validate:"required"`
	AnimalType string `json:"animal_type" validate:"omitempty,oneof=vaca toro novilla novillo maute becerro becerra"`
	Breed      string `json:"breed"`

	BirthDate       string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	DeathDate       string `json:"death_date" validate:"omitempty,datetime=2006-01-02"`
	LastCalvingDate string `json:"last_calving_date" validate:"omitempty,datetime=2006-01-02"`

	Father   string `json:"father"`
	Mother   string `json:"mother"`
	Brand    string `json:"brand"`
	Location string `json:"location"`

	BrandImageURL      string `json:"brand_image_url" validate:"omitempty,url"`
	CalfImageURL       string `json:"calf_image_url" validate:"omitempty,url"`
	AdolescentImageURL string `json:"adolescent_image_url" validate:"omitempty,url"`
	AdultImageURL      string `json:"adult_image_url" validate:"omitempty,url"`
}

type galleryImageResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type cowResponse struct {
	ID              string  `json:"id"`
	OwnerID         string  `json:"owner_id"`
	OwnerName       string  `json:"owner_name"`
	Name            string  `json:"name"`
	AnimalType      string  `json:"animal_type"`
	AnimalTypeLabel string  `json:"animal_type_label"`
	Breed           string  `json:"breed"`
	BirthDate       *string `json:"birth_date"`
	DeathDate       *string `json:"death_date"`
	LastCalvingDate *string `json:"last_calving_date"`
	Father          string  `json:"father"`
	Mother          string  `json:"mother"`
	Brand           string  `json:"brand"`
	Location        string  `json:"location"`

	BrandImageURL      string `json:"brand_image_url"`
	CalfImageURL       string `json:"calf_image_url"`
	AdolescentImageURL string `json:"adolescent_image_url"`
	AdultImageURL      string `json:"adult_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type cowDetailResponse struct {
	cowResponse
	Gallery []galleryImageResponse `json:"gallery"`
}

// searchCowsHandler godoc
// @Summary Buscar animales
// @Description Lista los animales de la cuenta; q filtra por nombre (sin distinguir mayúsculas).
// @Tags cows
// @Produce json
// @Param q query string false "Texto a buscar en el nombre"
// @Success 200 {array} cowResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /cows [get]
func searchCowsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), middleware.UserID(r.Context()), r.URL.Query().Get("q"))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		out := make([]cowResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCowResponse(c))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// createCowHandler godoc
// @Summary Registrar animal
// @Tags cows
// @Accept json
// @Produce json
// @Param payload body cowRequest true "Ficha del animal"
// @Success 201 {object} cowResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Router /cows [post]
func createCowHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeCowRequest(w, r, loc)
		if !ok {
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		c, err := svc.Create(r.Context(), claims.UserID, claims.DisplayName, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toCowResponse(c))
	}
}

// getCowHandler godoc
// @Summary Ficha de animal
// @Description Datos del animal y galería de fotos cargadas.
// @Tags cows
// @Produce json
// @Param cowID path string true "ID del animal"
// @Success 200 {object} cowDetailResponse
// @Failure 404 {object} map[string]string "cow not found"
// @Router /cows/{cowID} [get]
func getCowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		gallery := make([]galleryImageResponse, 0, 4)
		for _, img := range c.Gallery() {
			gallery = append(gallery, galleryImageResponse{Label: img.Label, URL: img.URL})
		}
		respond.JSON(w, http.StatusOK, cowDetailResponse{cowResponse: toCowResponse(c), Gallery: gallery})
	}
}

// replaceCowHandler godoc
// @Summary Editar animal
// @Description Reemplaza la ficha completa.
// @Tags cows
// @Accept json
// @Produce json
// @Param cowID path string true "ID del animal"
// @Param payload body cowRequest true "Ficha del animal"
// @Success 200 {object} cowResponse
// @Router /cows/{cowID} [put]
func replaceCowHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeCowRequest(w, r, loc)
		if !ok {
			return
		}
		c, err := svc.Replace(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toCowResponse(c))
	}
}

func deleteCowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeCowRequest escribe la respuesta de error y devuelve ok=false si el body no es válido.
func decodeCowRequest(w http.ResponseWriter, r *http.Request, loc *time.Location) (Input, bool) {
	var req cowRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json")
		return Input{}, false
	}
	if fields := validate.Struct(req); fields != nil {
		respond.Validation(w, fields)
		return Input{}, false
	}

	birth, _ := clock.ParseOptionalDate(req.BirthDate, loc)
	death, _ := clock.ParseOptionalDate(req.DeathDate, loc)
	calving, _ := clock.ParseOptionalDate(req.LastCalvingDate, loc)

	return Input{
		Name:               req.Name,
		AnimalType:         AnimalType(req.AnimalType),
		Breed:              req.Breed,
		BirthDate:          birth,
		DeathDate:          death,
		LastCalvingDate:    calving,
		Father:             req.Father,
		Mother:             req.Mother,
		Brand:              req.Brand,
		Location:           req.Location,
		BrandImageURL:      req.BrandImageURL,
		CalfImageURL:       req.CalfImageURL,
		AdolescentImageURL: req.AdolescentImageURL,
		AdultImageURL:      req.AdultImageURL,
	}, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "cow not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toCowResponse(c Cow) cowResponse {
	return cowResponse{
		ID:                 c.ID,
		OwnerID:            c.OwnerID,
		OwnerName:          c.OwnerName,
		Name:               c.Name,
		AnimalType:         string(c.AnimalType),
		AnimalTypeLabel:    c.AnimalType.Label(),
		Breed:              c.Breed,
		BirthDate:          clock.FormatOptionalDate(c.BirthDate),
		DeathDate:          clock.FormatOptionalDate(c.DeathDate),
		LastCalvingDate:    clock.FormatOptionalDate(c.LastCalvingDate),
		Father:             c.Father,
		Mother:             c.Mother,
		Brand:              c.Brand,
		Location:           c.Location,
		BrandImageURL:      c.BrandImageURL,
		CalfImageURL:       c.CalfImageURL,
		AdolescentImageURL: c.AdolescentImageURL,
		AdultImageURL:      c.AdultImageURL,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
