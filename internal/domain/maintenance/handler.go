package maintenance

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/clock"
	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, loc *time.Location) {
	r.Route("/maintenance", func(mr chi.Router) {
		mr.Get("/", listEventsHandler(svc, loc))
		mr.Post("/", createEventHandler(svc, loc))
		mr.Get("/types", listTypesHandler())
		mr.Get("/export.xlsx", exportHandler(svc, loc))
	})
}

type createEventRequest struct {
	Type      string   `json:"type" validate:"required,oneof=limpieza_cercas fumigada cerca_nueva cerca_reforzada arrancada_troncos corral_nuevo mantenimiento_corral limpiada_zona trabajo_maquina tanque tumba trabajos_por_hacer"`
	EventDate string   `json:"event_date" validate:"required,datetime=2006-01-02"`
	Employees *int     `json:"employees" validate:"omitempty,gte=0"`
	Days      *float64 `json:"days" validate:"omitempty,gte=0"`
	Notes     string   `json:"notes"`
}

type eventResponse struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	TypeLabel string    `json:"type_label"`
	EventDate string    `json:"event_date"`
	Employees *int      `json:"employees"`
	Days      *float64  `json:"days"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type listResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Events []eventResponse `json:"events"`
}

type typeResponse struct {
	Value EventType `json:"value"`
	Label string    `json:"label"`
}

// listEventsHandler godoc
// @Summary Trabajos de mantenimiento
// @Description Lista por rango de días [from, to]. Sin from: últimos 30 días. Sin to: solo el día from.
// @Tags maintenance
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} listResponse
// @Router /maintenance [get]
func listEventsHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := parseRange(r, svc, loc)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), middleware.UserID(r.Context()), rng)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := listResponse{
			From:   clock.FormatDate(rng.From),
			To:     clock.FormatDate(rng.To),
			Events: make([]eventResponse, 0, len(items)),
		}
		for _, e := range items {
			out.Events = append(out.Events, toEventResponse(e))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// createEventHandler godoc
// @Summary Registrar trabajo
// @Tags maintenance
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Trabajo realizado"
// @Success 201 {object} eventResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Router /maintenance [post]
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

		e, err := svc.Create(r.Context(), middleware.UserID(r.Context()), CreateInput{
			Type:      EventType(req.Type),
			EventDate: date,
			Employees: req.Employees,
			Days:      req.Days,
			Notes:     req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toEventResponse(e))
	}
}

func listTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]typeResponse, 0, len(EventTypes))
		for _, t := range EventTypes {
			out = append(out, typeResponse{Value: t, Label: t.Label()})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// exportHandler godoc
// @Summary Exportar trabajos a Excel
// @Description Mismo filtro de fechas que el listado.
// @Tags maintenance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Router /maintenance/export.xlsx [get]
func exportHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := parseRange(r, svc, loc)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		items, err := svc.List(r.Context(), middleware.UserID(r.Context()), rng)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var buf bytes.Buffer
		if err := WriteXLSX(&buf, items, rng); err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		filename := fmt.Sprintf("mantenimiento_%s_%s.xlsx", rng.From.Format("20060102"), rng.To.Format("20060102"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func parseRange(r *http.Request, svc *Service, loc *time.Location) (Range, error) {
	var from, to *time.Time
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := clock.ParseDate(v, loc)
		if err != nil {
			return Range{}, errors.New("from must be YYYY-MM-DD")
		}
		from = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := clock.ParseDate(v, loc)
		if err != nil {
			return Range{}, errors.New("to must be YYYY-MM-DD")
		}
		if from == nil {
			return Range{}, errors.New("to requires from")
		}
		to = &t
	}
	return svc.ResolveRange(from, to), nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.Error(w, http.StatusInternalServerError, "internal error")
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:        e.ID,
		Type:      e.Type,
		TypeLabel: e.Type.Label(),
		EventDate: clock.FormatDate(e.EventDate),
		Employees: e.Employees,
		Days:      e.Days,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
