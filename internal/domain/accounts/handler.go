package accounts

import (
	"errors"
	"net/http"
	"time"

	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me", meHandler(svc))
}

// RegisterAdminRoutes monta la gestión de roles bajo /admin.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/accounts", func(ar chi.Router) {
		ar.Get("/", listAccountsHandler(svc))
		ar.Put("/{accountID}/role", setRoleHandler(svc))
	})
}

type accountResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member"`
}

// meHandler godoc
// @Summary Cuenta actual
// @Description Devuelve la cuenta autenticada (se crea en el primer acceso) con su rol.
// @Tags accounts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} accountResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		a, err := svc.Ensure(r.Context(), claims)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond.JSON(w, http.StatusOK, toAccountResponse(a))
	}
}

func listAccountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		out := make([]accountResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAccountResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// setRoleHandler godoc
// @Summary Cambiar rol
// @Tags admin-accounts
// @Accept json
// @Produce json
// @Param accountID path string true "ID de la cuenta"
// @Param payload body setRoleRequest true "Nuevo rol"
// @Success 200 {object} accountResponse
// @Failure 404 {object} map[string]string "account not found"
// @Router /admin/accounts/{accountID}/role [put]
func setRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setRoleRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := validate.Struct(req); fields != nil {
			respond.Validation(w, fields)
			return
		}

		a, err := svc.SetRole(r.Context(), chi.URLParam(r, "accountID"), Role(req.Role))
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(w, http.StatusNotFound, "account not found")
			return
		case errors.Is(err, ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond.JSON(w, http.StatusOK, toAccountResponse(a))
	}
}

func toAccountResponse(a Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		Role:        a.Role,
		IsAdmin:     a.Role == RoleAdmin,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
