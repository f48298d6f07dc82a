package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

var ErrMissingAPIKey = errors.New("gemini: API key não configurada")

// ContentGenerator é o subconjunto de *genai.Models usado pelo cliente
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models ContentGenerator
	model  string
}

func NewClient(ctx context.Context, cfg config.Gemini) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: erro ao inicializar o cliente: %w", err)
	}

	return New(client.Models, cfg.Model), nil
}

func New(models ContentGenerator, model string) *Client {
	if model == "" {
		model = defaultModel
	}

	return &Client{
		models: models,
		model:  model,
	}
}

// GenerateInsights envia o prompt pedindo uma resposta JSON no formato de insightSchema
// e devolve o texto bruto retornado pelo modelo.
func (c *Client) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightSchema(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"model": c.model,
			"error": err.Error(),
		}).Error("gemini: falha ao gerar insights")
		return "", err
	}

	if resp == nil {
		return "", nil
	}

	text := resp.Text()

	logrus.WithFields(logrus.Fields{
		"model":  c.model,
		"length": len(text),
	}).Debug("gemini: insights gerados")

	return text, nil
}

func insightSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":          {Type: genai.TypeString},
				"recommendation": {Type: genai.TypeString},
				"impact": {
					Type: genai.TypeString,
					Enum: []string{"High", "Medium", "Low"},
				},
				"category": {
					Type: genai.TypeString,
					Enum: []string{"Pricing", "Marketing", "Operations"},
				},
			},
			Required: []string{"title", "recommendation", "impact", "category"},
		},
	}
}
