// Package llm is the advisory analysis collaborator: it sends raw
// source text to an OpenAI-compatible endpoint (Ollama works) and
// returns free-text findings. The lint engine has no dependency on this
// package and stays fully functional without a reachable model.
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// AnalysisType tags what kind of advisory analysis to run.
type AnalysisType string

const (
	AnalysisReview      AnalysisType = "review"
	AnalysisSecurity    AnalysisType = "security"
	AnalysisExplain     AnalysisType = "explain"
	AnalysisComplexity  AnalysisType = "complexity"
	AnalysisPerformance AnalysisType = "performance"
	AnalysisDocs        AnalysisType = "docs"
)

// AnalysisTypes lists the supported analysis tags.
func AnalysisTypes() []AnalysisType {
	return []AnalysisType{
		AnalysisReview, AnalysisSecurity, AnalysisExplain,
		AnalysisComplexity, AnalysisPerformance, AnalysisDocs,
	}
}

// Response carries the model's free-text content plus timing and token
// metadata.
type Response struct {
	Content     string        `json:"content"`
	Model       string        `json:"model"`
	TotalTokens int           `json:"total_tokens,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// Config points the analyzer at a model endpoint. BaseURL defaults to a
// local Ollama instance's OpenAI-compatible API.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// DefaultConfig returns a config for a local Ollama endpoint.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:11434/v1",
		APIKey:  "ollama",
		Model:   "qwen2.5-coder:7b",
	}
}

// Analyzer runs advisory analyses against one configured model.
type Analyzer struct {
	client *openai.Client
	model  string
}

// New creates an analyzer from the given config, applying defaults for
// empty fields.
func New(cfg Config) *Analyzer {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = defaults.APIKey
	}
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Analyzer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Model returns the configured model name.
func (a *Analyzer) Model() string { return a.model }

// Analyze sends source to the model under the prompt for the given
// analysis type.
func (a *Analyzer) Analyze(ctx context.Context, source string, typ AnalysisType) (*Response, error) {
	prompt, err := buildPrompt(typ, source)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm analysis (%s): %w", typ, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm analysis (%s): empty response", typ)
	}

	return &Response{
		Content:     resp.Choices[0].Message.Content,
		Model:       resp.Model,
		TotalTokens: resp.Usage.TotalTokens,
		Duration:    time.Since(start),
	}, nil
}
