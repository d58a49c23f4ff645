package domain

import "time"

// DefaultModel is used when the settings row is absent or carries no model id
const DefaultModel = "gemini-1.5-flash"

// Settings is the single operator-editable configuration record. Exactly one
// row exists after seeding; updates replace all mutable fields at once.
type Settings struct {
	AIModel          string    `json:"ai_model"`
	ExtractionPrompt string    `json:"extraction_prompt"`
	GenerationPrompt string    `json:"generation_prompt"`
	MaxNewsHistory   int       `json:"max_news_history"`
	OrganizationName string    `json:"organization_name"`
	PresidentsList   string    `json:"presidents_list"`
	ParticipantsList string    `json:"participants_list"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SettingsUpdate carries all seven mutable fields for a full-row replacement.
// There is no partial update, callers resend every field.
type SettingsUpdate struct {
	AIModel          string `json:"ai_model"`
	ExtractionPrompt string `json:"extraction_prompt"`
	GenerationPrompt string `json:"generation_prompt"`
	MaxNewsHistory   int    `json:"max_news_history"`
	OrganizationName string `json:"organization_name"`
	PresidentsList   string `json:"presidents_list"`
	ParticipantsList string `json:"participants_list"`
}
