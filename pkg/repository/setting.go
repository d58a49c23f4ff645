package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/warit/newsgen/pkg/db"
	"github.com/warit/newsgen/pkg/domain"
)

// settingsID is the fixed identity of the configuration singleton
const settingsID = 1

// SettingRepository handles the settings singleton
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves the settings row. Returns nil without error when the row does
// not exist, callers decide how to substitute defaults.
func (r *SettingRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var row db.Settings
	err := r.db.GetContext(ctx, &row, "SELECT * FROM settings WHERE id = ?", settingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return toDomainSettings(&row), nil
}

// Update replaces all mutable fields of the settings row, refreshes
// updated_at and returns the post-update state
func (r *SettingRepository) Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.Settings, error) {
	query := `
		UPDATE settings
		SET ai_model = ?,
		    extraction_prompt = ?,
		    generation_prompt = ?,
		    max_news_history = ?,
		    organization_name = ?,
		    presidents_list = ?,
		    participants_list = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		upd.AIModel, upd.ExtractionPrompt, upd.GenerationPrompt, upd.MaxNewsHistory,
		upd.OrganizationName, upd.PresidentsList, upd.ParticipantsList, settingsID)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("settings row missing after update")
	}
	return settings, nil
}

// EnsureDefaults inserts the settings row with built-in prompts and reference
// lists when it does not exist yet. Safe to call on every startup.
func (r *SettingRepository) EnsureDefaults(ctx context.Context) error {
	query := `
		INSERT INTO settings (id, ai_model, extraction_prompt, generation_prompt, organization_name, presidents_list, participants_list)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, settingsID, domain.DefaultModel,
		domain.DefaultExtractionPrompt, domain.DefaultGenerationPrompt,
		domain.DefaultOrganizationName, domain.DefaultPresidentsList, domain.DefaultParticipantsList)
	if err != nil {
		return fmt.Errorf("ensure default settings: %w", err)
	}
	return nil
}

// toDomainSettings converts db.Settings to domain.Settings
func toDomainSettings(row *db.Settings) *domain.Settings {
	return &domain.Settings{
		AIModel:          row.AIModel,
		ExtractionPrompt: row.ExtractionPrompt.String,
		GenerationPrompt: row.GenerationPrompt.String,
		MaxNewsHistory:   row.MaxNewsHistory,
		OrganizationName: row.OrganizationName.String,
		PresidentsList:   row.PresidentsList.String,
		ParticipantsList: row.ParticipantsList.String,
		UpdatedAt:        row.UpdatedAt,
	}
}
