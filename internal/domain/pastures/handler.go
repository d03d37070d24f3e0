package pastures

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// RegisterAdminRoutes monta el CRUD de potreros. El router aplica RequireAdmin.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/pastures", func(pr chi.Router) {
		pr.Post("/", createPastureHandler(svc))
		pr.Get("/", listPasturesHandler(svc))
		pr.Get("/{pastureID}", getPastureHandler(svc))
		pr.Patch("/{pastureID}", updatePastureHandler(svc))
		pr.Delete("/{pastureID}", deletePastureHandler(svc))
	})
}

// createPastureRequest es el formulario de alta de potrero.
type createPastureRequest struct {
	PastureNumber  int  `json:"pasture_number" validate:"required,min=1"`
	RotationDays   *int `json:"rotation_days" validate:"omitempty,min=1"`
	WaterFrequency *int `json:"water_frequency" validate:"omitempty,min=1"`
	FeedFrequency  *int `json:"feed_frequency" validate:"omitempty,min=1"`
	SaltFrequency  *int `json:"salt_frequency" validate:"omitempty,min=1"`
}

type pastureResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	PastureNumber  int       `json:"pasture_number"`
	RotationDays   *int      `json:"rotation_days"`
	WaterFrequency *int      `json:"water_frequency"`
	FeedFrequency  *int      `json:"feed_frequency"`
	SaltFrequency  *int      `json:"salt_frequency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// createPastureHandler godoc
// @Summary Crear potrero
// @Description Crea un potrero con sus frecuencias de rotación, agua, alimento y sal (días). Solo admin.
// @Tags admin-pastures
// @Accept json
// @Produce json
// @Param payload body createPastureRequest true "Datos del potrero"
// @Success 201 {object} pastureResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Failure 403 {object} map[string]string "access denied"
// @Failure 409 {object} map[string]string "pasture number already in use"
// @Router /admin/pastures [post]
func createPastureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPastureRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}

		p, err := svc.Create(r.Context(), middleware.UserID(r.Context()), CreateInput{
			PastureNumber:  req.PastureNumber,
			RotationDays:   req.RotationDays,
			WaterFrequency: req.WaterFrequency,
			FeedFrequency:  req.FeedFrequency,
			SaltFrequency:  req.SaltFrequency,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toPastureResponse(p))
	}
}

// listPasturesHandler godoc
// @Summary Listar potreros
// @Tags admin-pastures
// @Produce json
// @Success 200 {array} pastureResponse
// @Router /admin/pastures [get]
func listPasturesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]pastureResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPastureResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func getPastureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "pastureID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPastureResponse(p))
	}
}

// updatePastureHandler godoc
// @Summary Editar potrero (merge)
// @Description Campos ausentes se conservan; enviar null en una frecuencia deja de controlarla.
// @Tags admin-pastures
// @Accept json
// @Produce json
// @Param pastureID path string true "ID del potrero"
// @Success 200 {object} pastureResponse
// @Router /admin/pastures/{pastureID} [patch]
func updatePastureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := respond.Decode(r, &raw); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in, fields := parsePatch(raw)
		if fields != nil {
			respond.Validation(w, fields)
			return
		}

		p, err := svc.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "pastureID"), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPastureResponse(p))
	}
}

func deletePastureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "pastureID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// parsePatch detecta presencia de cada campo para diferenciar null de "no enviado".
func parsePatch(raw map[string]json.RawMessage) (UpdateInput, map[string]string) {
	var in UpdateInput
	fields := map[string]string{}

	allowed := map[string]*OptionalInt{
		"rotation_days":   &in.RotationDays,
		"water_frequency": &in.WaterFrequency,
		"feed_frequency":  &in.FeedFrequency,
		"salt_frequency":  &in.SaltFrequency,
	}

	for key, v := range raw {
		if key == "pasture_number" {
			var n int
			if err := json.Unmarshal(v, &n); err != nil || n < 1 {
				fields[key] = "debe ser un entero mayor a 0"
				continue
			}
			in.PastureNumber = &n
			continue
		}

		dst, ok := allowed[key]
		if !ok {
			fields[key] = "campo desconocido"
			continue
		}
		dst.Present = true
		if string(v) == "null" {
			continue
		}
		var n int
		if err := json.Unmarshal(v, &n); err != nil || n < 1 {
			fields[key] = "debe ser al menos 1 día"
			continue
		}
		dst.Value = &n
	}

	if len(fields) > 0 {
		return UpdateInput{}, fields
	}
	return in, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "pasture not found")
	case errors.Is(err, ErrDuplicateNumber):
		respond.Error(w, http.StatusConflict, err.Error())
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toPastureResponse(p Pasture) pastureResponse {
	return pastureResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		PastureNumber:  p.PastureNumber,
		RotationDays:   p.RotationDays,
		WaterFrequency: p.WaterFrequency,
		FeedFrequency:  p.FeedFrequency,
		SaltFrequency:  p.SaltFrequency,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
