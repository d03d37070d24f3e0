package herds

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/clock"
	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// RegisterAdminRoutes monta el CRUD de rebaños. loc es la zona de la finca
// con la que se interpretan las fechas YYYY-MM-DD.
func RegisterAdminRoutes(r chi.Router, svc *Service, loc *time.Location) {
	r.Route("/herds", func(hr chi.Router) {
		hr.Post("/", createHerdHandler(svc, loc))
		hr.Get("/", listHerdsHandler(svc))
		hr.Get("/{herdID}", getHerdHandler(svc))
		hr.Patch("/{herdID}", updateHerdHandler(svc, loc))
		hr.Delete("/{herdID}", deleteHerdHandler(svc))

		hr.Post("/{herdID}/care", recordCareHandler(svc, loc))
		hr.Post("/{herdID}/move", moveHerdHandler(svc, loc))
	})
}

type createHerdRequest struct {
	Name                 string `json:"name" validate:"required"`
	AnimalType           string `json:"animal_type" validate:"required"`
	AnimalCount          int    `json:"animal_count" validate:"required,min=1"`
	CurrentPastureNumber int    `json:"current_pasture_number" validate:"required,min=1"`
	LastRotationDate     string `json:"last_rotation_date" validate:"required,datetime=2006-01-02"`
	LastWaterDate        string `json:"last_water_date" validate:"omitempty,datetime=2006-01-02"`
	LastFeedDate         string `json:"last_feed_date" validate:"omitempty,datetime=2006-01-02"`
	LastSaltDate         string `json:"last_salt_date" validate:"omitempty,datetime=2006-01-02"`
}

type careRequest struct {
	Kind CareKind `json:"kind" validate:"required,oneof=water feed salt"`
	Date string   `json:"date" validate:"required,datetime=2006-01-02"`
}

type moveRequest struct {
	PastureNumber int    `json:"pasture_number" validate:"required,min=1"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
}

type herdResponse struct {
	ID                   string    `json:"id"`
	OwnerID              string    `json:"owner_id"`
	Name                 string    `json:"name"`
	AnimalType           string    `json:"animal_type"`
	AnimalCount          int       `json:"animal_count"`
	CurrentPastureNumber int       `json:"current_pasture_number"`
	LastRotationDate     string    `json:"last_rotation_date"`
	LastWaterDate        *string   `json:"last_water_date"`
	LastFeedDate         *string   `json:"last_feed_date"`
	LastSaltDate         *string   `json:"last_salt_date"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// createHerdHandler godoc
// @Summary Crear rebaño
// @Description Registra un rebaño en un potrero. Fechas en formato YYYY-MM-DD. Solo admin.
// @Tags admin-herds
// @Accept json
// @Produce json
// @Param payload body createHerdRequest true "Datos del rebaño"
// @Success 201 {object} herdResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Failure 403 {object} map[string]string "access denied"
// @Router /admin/herds [post]
func createHerdHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createHerdRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}

		// validate ya garantizó el formato de las fechas
		rotation, _ := clock.ParseDate(req.LastRotationDate, loc)
		water, _ := clock.ParseOptionalDate(req.LastWaterDate, loc)
		feed, _ := clock.ParseOptionalDate(req.LastFeedDate, loc)
		salt, _ := clock.ParseOptionalDate(req.LastSaltDate, loc)

		h, err := svc.Create(r.Context(), middleware.UserID(r.Context()), CreateInput{
			Name:                 req.Name,
			AnimalType:           req.AnimalType,
			AnimalCount:          req.AnimalCount,
			CurrentPastureNumber: req.CurrentPastureNumber,
			LastRotationDate:     rotation,
			LastWaterDate:        water,
			LastFeedDate:         feed,
			LastSaltDate:         salt,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toHerdResponse(h))
	}
}

// listHerdsHandler godoc
// @Summary Listar rebaños
// @Tags admin-herds
// @Produce json
// @Success 200 {array} herdResponse
// @Router /admin/herds [get]
func listHerdsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		out := make([]herdResponse, 0, len(items))
		for _, h := range items {
			out = append(out, toHerdResponse(h))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func getHerdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "herdID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHerdResponse(h))
	}
}

// updateHerdHandler godoc
// @Summary Editar rebaño (merge)
// @Description Campos ausentes se conservan; null en last_water_date/last_feed_date/last_salt_date los limpia.
// @Tags admin-herds
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Success 200 {object} herdResponse
// @Router /admin/herds/{herdID} [patch]
func updateHerdHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := respond.Decode(r, &raw); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in, fields := parsePatch(raw, loc)
		if fields != nil {
			respond.Validation(w, fields)
			return
		}

		h, err := svc.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "herdID"), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHerdResponse(h))
	}
}

func deleteHerdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "herdID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// recordCareHandler godoc
// @Summary Registrar cuidado
// @Description Marca que se hizo bombeo de agua, alimentación o sal/melaza en la fecha indicada.
// @Tags admin-herds
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param payload body careRequest true "Cuidado realizado"
// @Success 200 {object} herdResponse
// @Router /admin/herds/{herdID}/care [post]
func recordCareHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req careRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}
		at, _ := clock.ParseDate(req.Date, loc)

		h, err := svc.RecordCare(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "herdID"), req.Kind, at)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHerdResponse(h))
	}
}

// moveHerdHandler godoc
// @Summary Rotar rebaño
// @Description Mueve el rebaño a otro potrero; la fecha pasa a ser su última rotación.
// @Tags admin-herds
// @Accept json
// @Produce json
// @Param herdID path string true "ID del rebaño"
// @Param payload body moveRequest true "Destino"
// @Success 200 {object} herdResponse
// @Router /admin/herds/{herdID}/move [post]
func moveHerdHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}
		at, _ := clock.ParseDate(req.Date, loc)

		h, err := svc.Move(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "herdID"), req.PastureNumber, at)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHerdResponse(h))
	}
}

func parsePatch(raw map[string]json.RawMessage, loc *time.Location) (UpdateInput, map[string]string) {
	var in UpdateInput
	fields := map[string]string{}

	for key, v := range raw {
		switch key {
		case "name", "animal_type":
			var s string
			if err := json.Unmarshal(v, &s); err != nil || s == "" {
				fields[key] = "es requerido"
				continue
			}
			if key == "name" {
				in.Name = &s
			} else {
				in.AnimalType = &s
			}
		case "animal_count", "current_pasture_number":
			var n int
			if err := json.Unmarshal(v, &n); err != nil || n < 1 {
				fields[key] = "debe ser al menos 1"
				continue
			}
			if key == "animal_count" {
				in.AnimalCount = &n
			} else {
				in.CurrentPastureNumber = &n
			}
		case "last_rotation_date":
			t, err := decodeDate(v, loc)
			if err != nil || t == nil {
				fields[key] = "la fecha es requerida (YYYY-MM-DD)"
				continue
			}
			in.LastRotationDate = t
		case "last_water_date", "last_feed_date", "last_salt_date":
			t, err := decodeDate(v, loc)
			if err != nil {
				fields[key] = "formato de fecha inválido, usar 2006-01-02"
				continue
			}
			opt := OptionalDate{Present: true, Value: t}
			switch key {
			case "last_water_date":
				in.LastWaterDate = opt
			case "last_feed_date":
				in.LastFeedDate = opt
			default:
				in.LastSaltDate = opt
			}
		default:
			fields[key] = "campo desconocido"
		}
	}

	if len(fields) > 0 {
		return UpdateInput{}, fields
	}
	return in, nil
}

// decodeDate acepta null (=> nil) o "YYYY-MM-DD".
func decodeDate(v json.RawMessage, loc *time.Location) (*time.Time, error) {
	if string(v) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, err
	}
	t, err := clock.ParseDate(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "herd not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toHerdResponse(h Herd) herdResponse {
	return herdResponse{
		ID:                   h.ID,
		OwnerID:              h.OwnerID,
		Name:                 h.Name,
		AnimalType:           h.AnimalType,
		AnimalCount:          h.AnimalCount,
		CurrentPastureNumber: h.CurrentPastureNumber,
		LastRotationDate:     clock.FormatDate(h.LastRotationDate),
		LastWaterDate:        clock.FormatOptionalDate(h.LastWaterDate),
		LastFeedDate:         clock.FormatOptionalDate(h.LastFeedDate),
		LastSaltDate:         clock.FormatOptionalDate(h.LastSaltDate),
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}
