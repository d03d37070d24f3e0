// Package gemini implementa topics.Generator con Google Gemini (google.golang.org/genai).
// Las respuestas se piden como JSON con esquema, así no hay que parsear texto libre.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type Generator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

func (g *Generator) Topic(ctx context.Context) (string, error) {
	var out struct {
		Topic string `json:"topic"`
	}
	err := g.generate(ctx, topicPrompt(), objectSchema(topicSchemaProps()), &out)
	return out.Topic, err
}

func (g *Generator) Questions(ctx context.Context, topic string, min int) ([]string, error) {
	var out struct {
		Questions []string `json:"questions"`
	}
	err := g.generate(ctx, questionsPrompt(topic, min), objectSchema(questionsSchemaProps()), &out)
	return out.Questions, err
}

func (g *Generator) Tone(ctx context.Context, topic string) (string, error) {
	var out struct {
		ToneSuggestions string `json:"toneSuggestions"`
	}
	err := g.generate(ctx, tonePrompt(topic), objectSchema(toneSchemaProps()), &out)
	return out.ToneSuggestions, err
}

func (g *Generator) generate(ctx context.Context, prompt string, schema *genai.Schema, dst any) error {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("gemini generate: %w", err)
	}
	return decode(resp.Text(), dst)
}

func decode(text string, dst any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("gemini returned an empty response")
	}
	if err := json.Unmarshal([]byte(text), dst); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func objectSchema(props map[string]*genai.Schema) *genai.Schema {
	required := make([]string, 0, len(props))
	for k := range props {
		required = append(required, k)
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func topicSchemaProps() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"topic": {Type: genai.TypeString, Description: "A random conversation topic in Spanish."},
	}
}

func questionsSchemaProps() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"questions": {
			Type:        genai.TypeArray,
			Description: "An array of suggested questions for the topic.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	}
}

func toneSchemaProps() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"toneSuggestions": {Type: genai.TypeString, Description: "Suggestions for the appropriate tone and approach."},
	}
}
