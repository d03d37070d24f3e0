package topics

import (
	"errors"
	"net/http"

	"cattle-farm-manager/internal/platform/respond"
	"cattle-farm-manager/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/ai", func(ar chi.Router) {
		ar.Post("/topic", topicHandler(svc))
		ar.Post("/questions", questionsHandler(svc))
		ar.Post("/tone", toneHandler(svc))
	})
}

type topicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type topicResponse struct {
	Topic string `json:"topic"`
}

type questionsResponse struct {
	Questions []string `json:"questions"`
}

type toneResponse struct {
	ToneSuggestions string `json:"tone_suggestions"`
}

// topicHandler godoc
// @Summary Tema de conversación al azar
// @Tags ai
// @Produce json
// @Success 200 {object} topicResponse
// @Failure 502 {object} map[string]string "Failed to generate topic."
// @Failure 503 {object} map[string]string "ai not configured"
// @Router /ai/topic [post]
func topicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic, err := svc.Topic(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, topicResponse{Topic: topic})
	}
}

// questionsHandler godoc
// @Summary Preguntas para un tema
// @Description Al menos 5 preguntas para guiar la charla.
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body topicRequest true "Tema"
// @Success 200 {object} questionsResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Failure 502 {object} map[string]string "Failed to suggest questions."
// @Router /ai/questions [post]
func questionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTopic(w, r)
		if !ok {
			return
		}
		qs, err := svc.Questions(r.Context(), req.Topic)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, questionsResponse{Questions: qs})
	}
}

// toneHandler godoc
// @Summary Sugerencias de tono
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body topicRequest true "Tema"
// @Success 200 {object} toneResponse
// @Failure 400 {object} map[string]any "validation failed"
// @Failure 502 {object} map[string]string "Failed to provide tone suggestions."
// @Router /ai/tone [post]
func toneHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTopic(w, r)
		if !ok {
			return
		}
		tone, err := svc.Tone(r.Context(), req.Topic)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toneResponse{ToneSuggestions: tone})
	}
}

func decodeTopic(w http.ResponseWriter, r *http.Request) (topicRequest, bool) {
	var req topicRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid json")
		return req, false
	}
	if fields := validate.Struct(req); fields != nil {
		respond.Validation(w, fields)
		return req, false
	}
	return req, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var genErr *GenerationError
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Validation(w, map[string]string{"topic": err.Error()})
	case errors.Is(err, ErrNotConfigured):
		respond.Error(w, http.StatusServiceUnavailable, "ai not configured")
	case errors.As(err, &genErr):
		respond.Error(w, http.StatusBadGateway, genErr.Message)
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
