package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/warit/newsgen/pkg/db"
	"github.com/warit/newsgen/pkg/domain"
)

// NewsRepository handles news-related database operations
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create inserts a new article and backfills the generated id and timestamps.
// Only the INSERT runs under the retrier: anything after it re-running would
// execute the INSERT again and duplicate the row.
func (r *NewsRepository) Create(ctx context.Context, item *domain.NewsItem) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var id int64
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO news (title, content, summary, source_url, tags)
			VALUES (?, ?, ?, ?, ?)
		`
		result, err := r.db.ExecContext(ctx, query,
			item.Title, item.Content, item.Summary, item.SourceURL, item.Tags)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create news: %w", err)}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	}, errStopRetry)
	if err != nil {
		return err
	}

	var row db.News
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM news WHERE id = ?", id); err != nil {
		return fmt.Errorf("reload created news: %w", err)
	}
	*item = *toDomainNews(&row)
	return nil
}

// List returns the most recent articles, newest first, bounded by limit
func (r *NewsRepository) List(ctx context.Context, limit int) ([]domain.NewsItem, error) {
	var rows []db.News
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM news ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	items := make([]domain.NewsItem, len(rows))
	for i := range rows {
		items[i] = *toDomainNews(&rows[i])
	}
	return items, nil
}

// Update rewrites title, content and summary of an article and refreshes
// updated_at. Returns nil without error when no row matches the id, the
// caller treats that as a soft not-found.
func (r *NewsRepository) Update(ctx context.Context, id int64, title, content, summary string) (*domain.NewsItem, error) {
	query := `
		UPDATE news
		SET title = ?, content = ?, summary = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, title, content, summary, id); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}

	var row db.News
	err := r.db.GetContext(ctx, &row, "SELECT * FROM news WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reload updated news: %w", err)
	}
	return toDomainNews(&row), nil
}

// Delete removes an article if present, succeeds whether or not a row existed
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM news WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

// toDomainNews converts db.News to domain.NewsItem
func toDomainNews(row *db.News) *domain.NewsItem {
	return &domain.NewsItem{
		ID:        row.ID,
		Title:     row.Title.String,
		Content:   row.Content.String,
		Summary:   row.Summary.String,
		SourceURL: row.SourceURL.String,
		Tags:      row.Tags.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
