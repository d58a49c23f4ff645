package db

import (
	"database/sql"
	"time"
)

// News is the database row for a saved article. Text fields are nullable,
// partial rows are accepted.
type News struct {
	ID        int64          `db:"id"`
	Title     sql.NullString `db:"title"`
	Content   sql.NullString `db:"content"`
	Summary   sql.NullString `db:"summary"`
	SourceURL sql.NullString `db:"source_url"`
	Tags      sql.NullString `db:"tags"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Settings is the single-row configuration record, id is always 1
type Settings struct {
	ID               int64          `db:"id"`
	AIModel          string         `db:"ai_model"`
	ExtractionPrompt sql.NullString `db:"extraction_prompt"`
	GenerationPrompt sql.NullString `db:"generation_prompt"`
	MaxNewsHistory   int            `db:"max_news_history"`
	OrganizationName sql.NullString `db:"organization_name"`
	PresidentsList   sql.NullString `db:"presidents_list"`
	ParticipantsList sql.NullString `db:"participants_list"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
