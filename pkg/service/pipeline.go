package service

import (
	"context"
	"fmt"
	"log"

	"github.com/warit/newsgen/pkg/domain"
	"github.com/warit/newsgen/pkg/llm"
)

// SettingsProvider loads the current configuration record, nil when absent
type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// AIClient invokes the generative model for the two input modalities and the
// article generation flow
type AIClient interface {
	ExtractFromImage(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error)
	ExtractFromText(ctx context.Context, model, prompt, text string) (string, error)
	GenerateArticle(ctx context.Context, model, prompt string, data any) (string, error)
}

// Pipeline sequences settings load, prompt resolution, model invocation and
// response normalization for each request. Configuration is loaded fresh per
// call so operator changes apply without restart. Results are never persisted
// here, saving an article is a separate explicit step.
type Pipeline struct {
	settings     SettingsProvider
	client       AIClient
	defaultModel string
}

// NewPipeline creates a pipeline with injected collaborators
func NewPipeline(settings SettingsProvider, client AIClient, defaultModel string) *Pipeline {
	return &Pipeline{settings: settings, client: client, defaultModel: defaultModel}
}

// ExtractFromImage runs the extraction flavor on a scanned document image
func (p *Pipeline) ExtractFromImage(ctx context.Context, image []byte, mimeType string) (*domain.EventData, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	model := llm.ResolveModel(settings, p.defaultModel)
	prompt := llm.ResolveExtractionPrompt(settings)

	raw, err := p.client.ExtractFromImage(ctx, model, prompt, image, mimeType)
	if err != nil {
		return nil, err
	}

	data, err := llm.ParseEventData(raw)
	if err != nil {
		log.Printf("[WARN] extraction produced unparseable output, model %s: %v", model, err)
		return nil, err
	}
	return data, nil
}

// ExtractFromText runs the extraction flavor on typed document text
func (p *Pipeline) ExtractFromText(ctx context.Context, text string) (*domain.EventData, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	model := llm.ResolveModel(settings, p.defaultModel)
	prompt := llm.ResolveExtractionPrompt(settings)

	raw, err := p.client.ExtractFromText(ctx, model, prompt, text)
	if err != nil {
		return nil, err
	}

	data, err := llm.ParseEventData(raw)
	if err != nil {
		log.Printf("[WARN] extraction produced unparseable output, model %s: %v", model, err)
		return nil, err
	}
	return data, nil
}

// GenerateNews runs the generation flavor. The event data is any JSON value,
// objects and arrays both pass through. The model output is a formatted
// article, treated as opaque prose and returned without parsing.
func (p *Pipeline) GenerateNews(ctx context.Context, data any) (string, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}

	model := llm.ResolveModel(settings, p.defaultModel)
	prompt := llm.ResolveGenerationPrompt(settings)

	return p.client.GenerateArticle(ctx, model, prompt, data)
}
