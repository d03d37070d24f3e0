package rotation

import (
	"net/http"
	"strconv"
	"strings"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/clock"
	"cattle-farm-manager/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/rotation", func(rr chi.Router) {
		rr.Get("/map", mapHandler(svc))
		rr.Get("/pastures/{number}", pastureHandler(svc))
		rr.Get("/due", dueHandler(svc))
	})
}

type countdownResponse struct {
	DaysRemaining int    `json:"days_remaining"`
	IsDue         bool   `json:"is_due"`
	Label         string `json:"label"`
}

type reportResponse struct {
	HerdID        string                         `json:"herd_id"`
	HerdName      string                         `json:"herd_name"`
	PastureNumber int                            `json:"pasture_number"`
	Countdowns    map[Activity]countdownResponse `json:"countdowns"`
	Due           []Activity                     `json:"due"`
}

type pastureSummary struct {
	PastureNumber  int  `json:"pasture_number"`
	RotationDays   *int `json:"rotation_days"`
	WaterFrequency *int `json:"water_frequency"`
	FeedFrequency  *int `json:"feed_frequency"`
	SaltFrequency  *int `json:"salt_frequency"`
}

type herdSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AnimalType       string  `json:"animal_type"`
	AnimalCount      int     `json:"animal_count"`
	Icon             string  `json:"icon"`
	LastRotationDate string  `json:"last_rotation_date"`
	LastWaterDate    *string `json:"last_water_date"`
	LastFeedDate     *string `json:"last_feed_date"`
	LastSaltDate     *string `json:"last_salt_date"`
}

type pastureDetailResponse struct {
	Pasture   *pastureSummary `json:"pasture"`
	Herds     []herdSummary   `json:"herds"`
	Countdown *reportResponse `json:"countdown"`
}

// mapHandler godoc
// @Summary Mapa de potreros
// @Description FeatureCollection GeoJSON con un punto por potrero configurado (coordenadas en % de la imagen).
// @Tags rotation
// @Produce json
// @Param selected query int false "Potrero seleccionado"
// @Success 200 {object} map[string]any
// @Router /rotation/map [get]
func mapHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selected := 0
		if v := strings.TrimSpace(r.URL.Query().Get("selected")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				respond.Error(w, http.StatusBadRequest, "invalid selected")
				return
			}
			selected = n
		}

		fc, err := svc.Map(r.Context(), middleware.UserID(r.Context()), selected)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond.JSON(w, http.StatusOK, fc)
	}
}

// pastureHandler godoc
// @Summary Detalle de potrero
// @Description Potrero, rebaños que lo ocupan y conteo del primer rebaño.
// @Tags rotation
// @Produce json
// @Param number path int true "Número de potrero"
// @Success 200 {object} pastureDetailResponse
// @Router /rotation/pastures/{number} [get]
func pastureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil || n < 1 {
			respond.Error(w, http.StatusBadRequest, "invalid pasture number")
			return
		}

		d, err := svc.Pasture(r.Context(), middleware.UserID(r.Context()), n)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := pastureDetailResponse{Herds: make([]herdSummary, 0, len(d.Selection.Herds))}
		if p := d.Selection.Pasture; p != nil {
			resp.Pasture = &pastureSummary{
				PastureNumber:  p.PastureNumber,
				RotationDays:   p.RotationDays,
				WaterFrequency: p.WaterFrequency,
				FeedFrequency:  p.FeedFrequency,
				SaltFrequency:  p.SaltFrequency,
			}
		}
		for _, h := range d.Selection.Herds {
			resp.Herds = append(resp.Herds, herdSummary{
				ID:               h.ID,
				Name:             h.Name,
				AnimalType:       h.AnimalType,
				AnimalCount:      h.AnimalCount,
				Icon:             HerdIcon(h.AnimalType),
				LastRotationDate: clock.FormatDate(h.LastRotationDate),
				LastWaterDate:    clock.FormatOptionalDate(h.LastWaterDate),
				LastFeedDate:     clock.FormatOptionalDate(h.LastFeedDate),
				LastSaltDate:     clock.FormatOptionalDate(h.LastSaltDate),
			})
		}
		if d.Report != nil {
			rr := toReportResponse(*d.Report)
			resp.Countdown = &rr
		}
		respond.JSON(w, http.StatusOK, resp)
	}
}

// dueHandler godoc
// @Summary Conteos de todos los rebaños
// @Tags rotation
// @Produce json
// @Success 200 {array} reportResponse
// @Router /rotation/due [get]
func dueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := svc.Due(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		out := make([]reportResponse, 0, len(reports))
		for _, rep := range reports {
			out = append(out, toReportResponse(rep))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toReportResponse(r Report) reportResponse {
	cs := make(map[Activity]countdownResponse, len(r.Countdowns))
	for a, c := range r.Countdowns {
		cs[a] = countdownResponse{DaysRemaining: c.DaysRemaining, IsDue: c.IsDue, Label: c.Label()}
	}
	due := r.Due()
	if due == nil {
		due = []Activity{}
	}
	return reportResponse{
		HerdID:        r.HerdID,
		HerdName:      r.HerdName,
		PastureNumber: r.PastureNumber,
		Countdowns:    cs,
		Due:           due,
	}
}
