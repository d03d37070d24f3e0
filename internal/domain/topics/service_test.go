package topics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	topic     string
	questions []string
	tone      string
	err       error
}

func (f fakeGenerator) Topic(ctx context.Context) (string, error) { return f.topic, f.err }

func (f fakeGenerator) Questions(ctx context.Context, topic string, min int) ([]string, error) {
	return f.questions, f.err
}

func (f fakeGenerator) Tone(ctx context.Context, topic string) (string, error) { return f.tone, f.err }

func TestService_EmptyTopicIsInvalid(t *testing.T) {
	svc := NewService(fakeGenerator{}, nil)

	_, err := svc.Questions(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Tone(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_FailuresUseGenericMessages(t *testing.T) {
	svc := NewService(fakeGenerator{err: errors.New("quota exceeded")}, nil)
	ctx := context.Background()

	var genErr *GenerationError

	_, err := svc.Topic(ctx)
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, "Failed to generate topic.", genErr.Message)

	_, err = svc.Questions(ctx, "Vacunación del hato")
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, "Failed to suggest questions.", genErr.Message)

	_, err = svc.Tone(ctx, "Vacunación del hato")
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, "Failed to provide tone suggestions.", genErr.Message)
}

func TestService_NotConfigured(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Topic(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_QuestionsTrimmed(t *testing.T) {
	svc := NewService(fakeGenerator{questions: []string{" ¿Qué? ", "", "¿Cómo?"}}, nil)
	qs, err := svc.Questions(context.Background(), "Cercas")
	require.NoError(t, err)
	require.Equal(t, []string{"¿Qué?", "¿Cómo?"}, qs)
}

func TestHandlers(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(fakeGenerator{topic: "El clima y el pasto", tone: "cercano"}, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai/topic", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "El clima y el pasto")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai/tone", strings.NewReader(`{"topic":""}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai/tone", strings.NewReader(`{"topic":"Cercas"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"tone_suggestions":"cercano"`)

	failing := chi.NewRouter()
	RegisterRoutes(failing, NewService(fakeGenerator{err: errors.New("boom")}, nil))
	rec = httptest.NewRecorder()
	failing.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai/questions", strings.NewReader(`{"topic":"Cercas"}`)))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to suggest questions.")
}
