package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/warit/newsgen/pkg/domain"
	"github.com/warit/newsgen/pkg/llm"
)

// defaultHistoryLimit bounds the news listing when the settings row carries
// no usable max_news_history value
const defaultHistoryLimit = 50

// extractImageHandler runs the extraction pipeline on an uploaded document image
func (s *Server) extractImageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, err := r.FormFile("data")
	if err != nil {
		renderError(w, r, fmt.Errorf("no image file uploaded"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		renderError(w, r, fmt.Errorf("read uploaded file: %w", err), http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	data, err := s.pipeline.ExtractFromImage(ctx, image, mimeType)
	if err != nil {
		log.Printf("[ERROR] image extraction failed: %v", err)
		renderPipelineError(w, r, err, "failed to process image")
		return
	}

	renderJSON(w, r, http.StatusOK, data)
}

// extractTextHandler runs the extraction pipeline on typed document text
func (s *Server) extractTextHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		renderError(w, r, fmt.Errorf("no text provided"), http.StatusBadRequest)
		return
	}

	data, err := s.pipeline.ExtractFromText(ctx, req.Text)
	if err != nil {
		log.Printf("[ERROR] text extraction failed: %v", err)
		renderPipelineError(w, r, err, "failed to process text")
		return
	}

	renderJSON(w, r, http.StatusOK, data)
}

// generateHandler turns structured event data into a formatted article. The
// body is any JSON value, callers send objects or arrays of objects.
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	news, err := s.pipeline.GenerateNews(ctx, data)
	if err != nil {
		log.Printf("[ERROR] news generation failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"news": news})
}

// listNewsHandler returns the most recent saved articles, newest first. The
// window honors the configured max_news_history when set and falls back to a
// fixed 50 otherwise.
func (s *Server) listNewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultHistoryLimit
	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Printf("[WARN] failed to load settings for history limit: %v", err)
	}
	if settings != nil && settings.MaxNewsHistory > 0 {
		limit = settings.MaxNewsHistory
	}

	items, err := s.news.List(ctx, limit)
	if err != nil {
		log.Printf("[ERROR] failed to list news: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, items)
}

// saveNewsHandler persists a generated article. Saving is an explicit caller
// decision, the pipeline never stores its own output.
func (s *Server) saveNewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Summary   string `json:"summary"`
		SourceURL string `json:"source_url"`
		Tags      string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	item := domain.NewsItem{
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		SourceURL: req.SourceURL,
		Tags:      req.Tags,
	}
	if err := s.news.Create(ctx, &item); err != nil {
		log.Printf("[ERROR] failed to save news: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, item)
}

// updateNewsHandler rewrites title, content and summary of a saved article.
// A missing id is a soft not-found and answers {"success": true}.
func (s *Server) updateNewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ID      int64  `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	item, err := s.news.Update(ctx, req.ID, req.Title, req.Content, req.Summary)
	if err != nil {
		log.Printf("[ERROR] failed to update news %d: %v", req.ID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if item == nil {
		renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
		return
	}

	renderJSON(w, r, http.StatusOK, item)
}

// deleteNewsHandler removes an article, idempotent on repeated calls
func (s *Server) deleteNewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.news.Delete(ctx, req.ID); err != nil {
		log.Printf("[ERROR] failed to delete news %d: %v", req.ID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "id": req.ID})
}

// getSettingsHandler returns the settings row, or an empty object when the
// row does not exist yet
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to get settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if settings == nil {
		renderJSON(w, r, http.StatusOK, map[string]any{})
		return
	}

	renderJSON(w, r, http.StatusOK, settings)
}

// updateSettingsHandler replaces all mutable settings fields at once. There is
// no partial update, omitted fields end up empty.
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd domain.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	settings, err := s.settings.Update(ctx, upd)
	if err != nil {
		log.Printf("[ERROR] failed to update settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, settings)
}

// renderPipelineError distinguishes bad model output from transport and other
// upstream failures so callers can tell the two apart
func renderPipelineError(w http.ResponseWriter, r *http.Request, err error, details string) {
	var formatErr *llm.ResponseFormatError
	if errors.As(err, &formatErr) {
		renderJSON(w, r, http.StatusInternalServerError, map[string]string{
			"error":   err.Error(),
			"details": "model returned non-JSON content",
		})
		return
	}

	renderJSON(w, r, http.StatusInternalServerError, map[string]string{
		"error":   err.Error(),
		"details": details,
	})
}
