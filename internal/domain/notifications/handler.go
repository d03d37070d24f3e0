package notifications

import (
	"errors"
	"net/http"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c *Center) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listHandler(c))
		nr.Delete("/{notificationID}", dismissHandler(c))
	})
}

type notificationResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	HerdID        string `json:"herd_id"`
	PastureNumber int    `json:"pasture_number"`
	Message       string `json:"message"`
}

// listHandler godoc
// @Summary Alertas vivas
// @Description Rotaciones y cuidados vencidos de la cuenta, en orden de aparición.
// @Tags notifications
// @Produce json
// @Success 200 {array} notificationResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /notifications [get]
func listHandler(c *Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := c.List(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, notificationResponse{
				ID:            n.ID,
				Kind:          string(n.Kind),
				HerdID:        n.HerdID,
				PastureNumber: n.PastureNumber,
				Message:       n.Message,
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// dismissHandler godoc
// @Summary Descartar alerta
// @Description Quita la alerta hasta que una nueva evaluación la vuelva a generar.
// @Tags notifications
// @Param notificationID path string true "ID de la alerta (p.ej. water-<herdId>)"
// @Success 204
// @Failure 404 {object} map[string]string "notification not found"
// @Router /notifications/{notificationID} [delete]
func dismissHandler(c *Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.Dismiss(middleware.UserID(r.Context()), chi.URLParam(r, "notificationID"))
		if errors.Is(err, ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "notification not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
