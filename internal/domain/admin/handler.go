// Package admin expone el panel de administración: el índice de secciones
// y las secciones que todavía no están disponibles.
package admin

import (
	"net/http"

	"cattle-farm-manager/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// Section es una entrada del panel.
type Section struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Available   bool   `json:"available"`
}

var sections = []Section{
	{Key: "pastures", Title: "Potreros", Description: "Configura los potreros y la frecuencia de rotación y cuidados.", Path: "/admin/pastures", Available: true},
	{Key: "herds", Title: "Rebaños", Description: "Administra los rebaños y el potrero que ocupan.", Path: "/admin/herds", Available: true},
	{Key: "accounts", Title: "Cuentas", Description: "Roles de las personas con acceso.", Path: "/admin/accounts", Available: true},
	{Key: "employees", Title: "Empleados", Description: "Gestión del personal de la finca.", Path: "/admin/employees", Available: false},
	{Key: "expenses", Title: "Gastos", Description: "Registro de gastos de la finca.", Path: "/admin/expenses", Available: false},
}

// Sections devuelve una copia del índice del panel.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// RegisterRoutes monta el índice y las secciones "Próximamente".
// Se llama dentro del grupo /admin ya protegido por RequireAdmin.
func RegisterRoutes(r chi.Router) {
	r.Get("/", indexHandler())
	for _, s := range sections {
		if !s.Available {
			r.Get("/"+s.Key, comingSoonHandler(s))
		}
	}
}

// indexHandler godoc
// @Summary Panel de administración
// @Tags admin
// @Produce json
// @Success 200 {array} Section
// @Failure 403 {object} map[string]string "access denied"
// @Router /admin [get]
func indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, Sections())
	}
}

func comingSoonHandler(s Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusNotImplemented, map[string]string{
			"error":   "coming soon",
			"section": s.Key,
			"message": s.Title + ": Próximamente",
		})
	}
}
