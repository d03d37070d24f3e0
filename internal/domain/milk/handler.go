package milk

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

// Routes devuelve el registrador de /milk-records bajo /cows/{cowID}.
func Routes(svc *Service, loc *time.Location) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/milk-records", func(mr chi.Router) {
			mr.Post("/", createRecordHandler(svc, loc))
			mr.Get("/", listRecordsHandler(svc))
			mr.Get("/summary", summaryHandler(svc))
		})
	}
}

type createRecordRequest struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Amount *float64 `json:"amount" validate:"required,gte=0"`
}

type recordResponse struct {
	ID        string    `json:"id"`
	CowID     string    `json:"cow_id"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type chartPointResponse struct {
	Date   string  `json:"date"`
	Liters float64 `json:"liters"`
}

type summaryResponse struct {
	Count   int                  `json:"count"`
	Total   float64              `json:"total"`
	Average float64              `json:"average"`
	Series  []chartPointResponse `json:"series"`
}

// createRecordHandler godoc
// @Summary Registrar producción de leche
// @Tags milk
// @Accept json
// @Produce json
// @Param cowID path string true "ID del animal"
// @Param payload body createRecordRequest true "Fecha (YYYY-MM-DD) y litros"
// @Success 201 {object} recordResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Failure 404 {object} map[string]string "cow not found"
// @Router /cows/{cowID}/milk-records [post]
func createRecordHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}
		date, _ := clock.ParseDate(req.Date, loc)

		rec, err := svc.Create(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"), date, *req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Registros de producción
// @Description El más reciente primero.
// @Tags milk
// @Produce json
// @Param cowID path string true "ID del animal"
// @Success 200 {array} recordResponse
// @Router /cows/{cowID}/milk-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// summaryHandler godoc
// @Summary Balance de producción
// @Description Totales y serie para el gráfico (del más antiguo al más reciente, fechas dd/MM).
// @Tags milk
// @Produce json
// @Param cowID path string true "ID del animal"
// @Success 200 {object} summaryResponse
// @Router /cows/{cowID}/milk-records/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "cowID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		series := make([]chartPointResponse, 0, len(sum.Series))
		for _, p := range sum.Series {
			series = append(series, chartPointResponse{Date: p.Date, Liters: p.Liters})
		}
		respond.JSON(w, http.StatusOK, summaryResponse{
			Count:   sum.Count,
			Total:   sum.Total,
			Average: sum.Average,
			Series:  series,
		})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCowNotFound):
		respond.Error(w, http.StatusNotFound, "cow not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:        r.ID,
		CowID:     r.CowID,
		Date:      clock.FormatDate(r.Date),
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
}
