package health

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/clock"
	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// Routes devuelve el registrador de /health-events bajo /cows/{cowID}.
func Routes(svc *Service, loc *time.Location) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/health-events", func(er chi.Router) {
			er.Post("/", createEventHandler(svc, loc))
			er.Get("/", listEventsHandler(svc, loc))
			er.Post("/{eventID}/void", voidEventHandler(svc))
		})
	}
}

// createEventRequest es el cuerpo para registrar un evento sanitario.
type createEventRequest struct {
	Type         string `json:"type" validate:"required,oneof=vaccination deworming vitamins fly_bath tick_bath mastitis other_disease iatf_implant iatf_birth"`
	EventDate    string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Notes        string `json:"notes"`
	ReminderDate string `json:"reminder_date" validate:"omitempty,datetime=2006-01-02"`
}

type eventResponse struct {
	ID           string    `json:"id"`
	CowID        string    `json:"cow_id"`
	Type         EventType `json:"type"`
	TypeLabel    string    `json:"type_label"`
	EventDate    string    `json:"event_date"`
	Notes        string    `json:"notes"`
	ReminderDate *string   `json:"reminder_date"`
	RecordedBy   string    `json:"recorded_by"`
	RecordedAt   time.Time `json:"recorded_at"`
	Status       Status    `json:"status"`
}

// createEventHandler godoc
// @Summary Registrar evento sanitario
// @Description Agrega un evento de salud (vacuna, baño, mastitis, IATF...) a la ficha del animal.
// @Tags health
// @Accept json
// @Produce json
// @Param cowID path string true "ID del animal"
// @Param payload body createEventRequest true "Evento; fechas YYYY-MM-DD"
// @Success 201 {object} eventResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Failure 404 {object} map[string]string "cow not found"
// @Router /cows/{cowID}/health-events [post]
func createEventHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}
		date, _ := clock.ParseDate(req.EventDate, loc)
		reminder, _ := clock.ParseOptionalDate(req.ReminderDate, loc)

		e, err := svc.Create(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"), CreateInput{
			Type:         EventType(req.Type),
			EventDate:    date,
			Notes:        req.Notes,
			ReminderDate: reminder,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Historial sanitario
// @Description Eventos del animal, el más reciente primero. Filtros por tipos, rango de fechas y texto.
// @Tags health
// @Produce json
// @Param cowID path string true "ID del animal"
// @Param limit query int false "Máximo de eventos (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos (ej: vaccination,tick_bath)"
// @Param from query string false "Fecha mínima YYYY-MM-DD"
// @Param to query string false "Fecha máxima YYYY-MM-DD"
// @Param q query string false "Texto libre en notas"
// @Param include_voided query bool false "Incluir anulados"
// @Success 200 {array} eventResponse
// @Failure 404 {object} map[string]string "cow not found"
// @Router /cows/{cowID}/health-events [get]
func listEventsHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r, loc)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// voidEventHandler godoc
// @Summary Anular evento sanitario
// @Tags health
// @Produce json
// @Param cowID path string true "ID del animal"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 404 {object} map[string]string "health event not found"
// @Router /cows/{cowID}/health-events/{eventID}/void [post]
func voidEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Void(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"), chi.URLParam(r, "eventID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toEventResponse(e))
	}
}

func parseListFilter(r *http.Request, loc *time.Location) (ListFilter, error) {
	q := r.URL.Query()

	limit := 50
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	filter := ListFilter{Limit: limit, IncludeVoided: q.Get("include_voided") == "true"}

	// types=vaccination,tick_bath
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := EventType(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return ListFilter{}, errors.New("unknown event type: " + string(t))
			}
			filter.Types = append(filter.Types, t)
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := clock.ParseDate(v, loc)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := clock.ParseDate(v, loc)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		end := clock.EndOfDay(t)
		filter.To = &end
	}

	filter.Query = strings.TrimSpace(q.Get("q"))
	return filter, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCowNotFound):
		respond.Error(w, http.StatusNotFound, "cow not found")
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "health event not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:           e.ID,
		CowID:        e.CowID,
		Type:         e.Type,
		TypeLabel:    e.Type.Label(),
		EventDate:    clock.FormatDate(e.EventDate),
		Notes:        e.Notes,
		ReminderDate: clock.FormatOptionalDate(e.ReminderDate),
		RecordedBy:   e.RecordedBy,
		RecordedAt:   e.RecordedAt,
		Status:       e.Status,
	}
}
