// Package topics genera material para las charlas con el personal: un tema
// al azar, preguntas para conversarlo y sugerencias de tono.
package topics

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidInput  = errors.New("El tema no puede estar vacío.")
	ErrNotConfigured = errors.New("ai generator not configured")
)

// GenerationError lleva el mensaje genérico que se le muestra al usuario;
// la causa real solo va al log.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string { return e.Message }
func (e *GenerationError) Unwrap() error { return e.Err }

const (
	msgTopicFailed     = "Failed to generate topic."
	msgQuestionsFailed = "Failed to suggest questions."
	msgToneFailed      = "Failed to provide tone suggestions."
)

// MinQuestions es la cantidad mínima de preguntas que se piden al modelo.
const MinQuestions = 5

// Generator es el modelo de lenguaje detrás de las charlas.
type Generator interface {
	Topic(ctx context.Context) (string, error)
	Questions(ctx context.Context, topic string, min int) ([]string, error)
	Tone(ctx context.Context, topic string) (string, error)
}

type Service struct {
	gen Generator
	log *zap.Logger
}

// NewService acepta gen nil: las operaciones devuelven ErrNotConfigured.
func NewService(gen Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, log: log}
}

func (s *Service) Topic(ctx context.Context) (string, error) {
	if s.gen == nil {
		return "", ErrNotConfigured
	}
	topic, err := s.gen.Topic(ctx)
	if err == nil && strings.TrimSpace(topic) == "" {
		err = errors.New("empty topic")
	}
	if err != nil {
		return "", s.fail("topic", msgTopicFailed, err)
	}
	return strings.TrimSpace(topic), nil
}

func (s *Service) Questions(ctx context.Context, topic string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrInvalidInput
	}
	if s.gen == nil {
		return nil, ErrNotConfigured
	}

	qs, err := s.gen.Questions(ctx, topic, MinQuestions)
	if err != nil {
		return nil, s.fail("questions", msgQuestionsFailed, err)
	}

	out := make([]string, 0, len(qs))
	for _, q := range qs {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, s.fail("questions", msgQuestionsFailed, errors.New("no questions returned"))
	}
	return out, nil
}

func (s *Service) Tone(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrInvalidInput
	}
	if s.gen == nil {
		return "", ErrNotConfigured
	}

	tone, err := s.gen.Tone(ctx, topic)
	if err == nil && strings.TrimSpace(tone) == "" {
		err = errors.New("empty tone suggestions")
	}
	if err != nil {
		return "", s.fail("tone", msgToneFailed, err)
	}
	return strings.TrimSpace(tone), nil
}

func (s *Service) fail(flow, msg string, err error) error {
	s.log.Error("ai flow failed", zap.String("flow", flow), zap.Error(err))
	return &GenerationError{Message: msg, Err: err}
}
