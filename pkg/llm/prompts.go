package llm

import "github.com/warit/newsgen/pkg/domain"

// ResolveExtractionPrompt returns the operator-configured extraction prompt or
// the built-in default. The pipeline never calls the model with an empty
// instruction, so a missing settings row or a blank field falls through.
func ResolveExtractionPrompt(settings *domain.Settings) string {
	if settings != nil && settings.ExtractionPrompt != "" {
		return settings.ExtractionPrompt
	}
	return domain.DefaultExtractionPrompt
}

// ResolveGenerationPrompt returns the operator-configured generation prompt or
// the built-in default
func ResolveGenerationPrompt(settings *domain.Settings) string {
	if settings != nil && settings.GenerationPrompt != "" {
		return settings.GenerationPrompt
	}
	return domain.DefaultGenerationPrompt
}

// ResolveModel returns the configured model id, falling back to the given
// default and finally to domain.DefaultModel
func ResolveModel(settings *domain.Settings, fallback string) string {
	if settings != nil && settings.AIModel != "" {
		return settings.AIModel
	}
	if fallback != "" {
		return fallback
	}
	return domain.DefaultModel
}
