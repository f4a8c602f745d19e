package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"dealershield/pkg/costs"
)

// QueryClient is the boundary to the external language model. Implementations
// return the raw response text; parsing and normalization happen upstream.
type QueryClient interface {
	Search(ctx context.Context, prompt, operation string) (string, error)
}

// GPTConfig configures the OpenAI-backed query client. Credentials are
// injected here; nothing reads the environment below this point.
type GPTConfig struct {
	APIKey      string
	SearchModel string // web-search capable model, tried first
	Model       string // standard model, JSON-mode fallback
	MaxTokens   int
}

func (c *GPTConfig) applyDefaults() {
	if c.SearchModel == "" {
		c.SearchModel = "gpt-4o-search-preview"
	}
	if c.Model == "" {
		c.Model = "gpt-4o"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 4000
	}
}

// GPTClient queries OpenAI with web search, falling back to the standard
// model when the search model is unavailable. Token usage from every call is
// reported to the cost tracker.
type GPTClient struct {
	client      *openai.Client
	searchModel string
	model       string
	maxTokens   int
	tracker     *costs.Tracker
}

func NewGPTClient(cfg GPTConfig, tracker *costs.Tracker) (*GPTClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	cfg.applyDefaults()
	slog.Info("initializing OpenAI client", "search_model", cfg.SearchModel, "model", cfg.Model)
	return &GPTClient{
		client:      openai.NewClient(cfg.APIKey),
		searchModel: cfg.SearchModel,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		tracker:     tracker,
	}, nil
}

const searchSuffix = `

REALIZE UMA ANÁLISE COMPLETA usando busca web para obter:
- Dados oficiais e atualizados da empresa
- Reclamações recentes em sites de consumidores
- Processos judiciais e investigações
- Notícias e reportagens sobre a empresa
- Avaliações e reputação online

IMPORTANTE: Retorne sua resposta EXCLUSIVAMENTE em formato JSON válido, sem texto adicional.`

const fallbackSuffix = `

ANÁLISE DETALHADA BASEADA EM:
- Padrões típicos de empresas do setor automotivo brasileiro
- Problemas comuns em lojistas de veículos
- Indicadores de risco no comércio de automóveis

Forneça uma análise REALISTA e DETALHADA em JSON. Seja ESPECÍFICO e use valores/datas plausíveis para o contexto brasileiro.`

// Search runs the prompt against the search model first, then the standard
// model with JSON response format when the search model errors out.
func (g *GPTClient) Search(ctx context.Context, prompt, operation string) (string, error) {
	slog.Debug("sending search request", "operation", operation, "prompt_len", len(prompt))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.searchModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt + searchSuffix},
		},
		MaxTokens: g.maxTokens,
	})
	if err == nil {
		// the search model performs roughly one web search per request
		g.track(g.searchModel, resp.Usage, 1, operation)
		return g.content(resp)
	}
	slog.Warn("search model unavailable, falling back", "model", g.searchModel, "error", err)

	resp, err = g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt + fallbackSuffix},
		},
		Temperature:    0,
		MaxTokens:      g.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	g.track(g.model, resp.Usage, 0, operation)
	return g.content(resp)
}

func (g *GPTClient) track(model string, usage openai.Usage, searchCount int, operation string) {
	if g.tracker == nil {
		return
	}
	g.tracker.Track(model, usage.PromptTokens, usage.CompletionTokens, searchCount, operation)
}

func (g *GPTClient) content(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
