package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warit/newsgen/pkg/domain"
	"github.com/warit/newsgen/pkg/llm"
	"github.com/warit/newsgen/server/mocks"
)

// newTestRequest builds a request and a recorder for direct router calls
func newTestRequest(t *testing.T, method, target string, body io.Reader) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	if body == nil {
		body = http.NoBody
	}
	req := httptest.NewRequest(method, target, body)
	if method == "POST" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, httptest.NewRecorder()
}

func strPtr(s string) *string { return &s }

func testServer(pipeline Pipeline, news NewsStore, settings SettingsStore) *Server {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
	return New(cfg, pipeline, news, settings, "test", false)
}

func TestServer_extractImageHandler(t *testing.T) {
	pipeline := &mocks.PipelineMock{
		ExtractFromImageFunc: func(ctx context.Context, image []byte, mimeType string) (*domain.EventData, error) {
			assert.Equal(t, []byte("fake-image-bytes"), image)
			assert.Equal(t, "image/png", mimeType)
			return &domain.EventData{Date: strPtr("25 ธันวาคม 2568")}, nil
		},
	}
	srv := testServer(pipeline, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	// build multipart body with field "data"
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="data"; filename="doc.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, "25 ธันวาคม 2568", data["date"])

	// all recognized keys present, unknown ones null
	for _, key := range []string{"date", "time", "event_name", "location", "president_name", "president_position", "participants"} {
		_, ok := data[key]
		assert.True(t, ok, "key %s missing", key)
	}
	assert.Nil(t, data["location"])

	require.Len(t, pipeline.ExtractFromImageCalls(), 1)
}

func TestServer_extractImageHandler_NoFile(t *testing.T) {
	srv := testServer(&mocks.PipelineMock{}, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	req, w := newTestRequest(t, "POST", "/api/extract", bytes.NewBufferString("{}"))
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no image file uploaded")
}

func TestServer_extractImageHandler_BadModelOutput(t *testing.T) {
	pipeline := &mocks.PipelineMock{
		ExtractFromImageFunc: func(ctx context.Context, image []byte, mimeType string) (*domain.EventData, error) {
			return nil, &llm.ResponseFormatError{Raw: "nonsense", Err: fmt.Errorf("invalid character")}
		},
	}
	srv := testServer(pipeline, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("data", "doc.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "model returned non-JSON content")
}

func TestServer_extractTextHandler(t *testing.T) {
	pipeline := &mocks.PipelineMock{
		ExtractFromTextFunc: func(ctx context.Context, text string) (*domain.EventData, error) {
			assert.Equal(t, "กำหนดการ วันที่ 25 ธันวาคม", text)
			return &domain.EventData{
				Date:      strPtr("25 ธันวาคม 2568"),
				EventName: strPtr("พิธีเปิดงาน"),
			}, nil
		},
	}
	srv := testServer(pipeline, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	body := bytes.NewBufferString(`{"text":"กำหนดการ วันที่ 25 ธันวาคม"}`)
	req, w := newTestRequest(t, "POST", "/api/extract-text", body)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, "พิธีเปิดงาน", data["event_name"])
}

func TestServer_extractTextHandler_MissingText(t *testing.T) {
	srv := testServer(&mocks.PipelineMock{}, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	for _, body := range []string{`{}`, `{"text":""}`, `not json`} {
		req, w := newTestRequest(t, "POST", "/api/extract-text", bytes.NewBufferString(body))
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "no text provided")
	}
}

func TestServer_extractTextHandler_PipelineFailure(t *testing.T) {
	pipeline := &mocks.PipelineMock{
		ExtractFromTextFunc: func(ctx context.Context, text string) (*domain.EventData, error) {
			return nil, fmt.Errorf("llm request failed: quota exceeded")
		},
	}
	srv := testServer(pipeline, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	req, w := newTestRequest(t, "POST", "/api/extract-text", bytes.NewBufferString(`{"text":"doc"}`))
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "quota exceeded")
}

func TestServer_generateHandler(t *testing.T) {
	pipeline := &mocks.PipelineMock{
		GenerateNewsFunc: func(ctx context.Context, data any) (string, error) {
			obj, ok := data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "พิธีเปิดงาน", obj["event_name"])
			return "ข่าวประชาสัมพันธ์ ฉบับเต็ม", nil
		},
	}
	srv := testServer(pipeline, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	req, w := newTestRequest(t, "POST", "/api/generate", bytes.NewBufferString(`{"event_name":"พิธีเปิดงาน"}`))
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ข่าวประชาสัมพันธ์ ฉบับเต็ม", resp["news"])
}

func TestServer_generateHandler_ArrayBody(t *testing.T) {
	// multiple events in one request come in as a JSON array
	pipeline := &mocks.PipelineMock{
		GenerateNewsFunc: func(ctx context.Context, data any) (string, error) {
			list, ok := data.([]any)
			require.True(t, ok)
			require.Len(t, list, 2)
			return "ข่าวรวมสองงาน", nil
		},
	}
	srv := testServer(pipeline, &mocks.NewsStoreMock{}, &mocks.SettingsStoreMock{})

	body := bytes.NewBufferString(`[{"event_name":"งานแรก"},{"event_name":"งานที่สอง"}]`)
	req, w := newTestRequest(t, "POST", "/api/generate", body)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ข่าวรวมสองงาน", resp["news"])
	require.Len(t, pipeline.GenerateNewsCalls(), 1)
}

func TestServer_listNewsHandler(t *testing.T) {
	news := &mocks.NewsStoreMock{
		ListFunc: func(ctx context.Context, limit int) ([]domain.NewsItem, error) {
			assert.Equal(t, 50, limit)
			return []domain.NewsItem{
				{ID: 2, Title: "newer"},
				{ID: 1, Title: "older"},
			}, nil
		},
	}
	settings := &mocks.SettingsStoreMock{
		GetFunc: func(ctx context.Context) (*domain.Settings, error) { return nil, nil },
	}
	srv := testServer(&mocks.PipelineMock{}, news, settings)

	req, w := newTestRequest(t, "GET", "/api/news", nil)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var items []domain.NewsItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
}

func TestServer_listNewsHandler_HonorsConfiguredLimit(t *testing.T) {
	news := &mocks.NewsStoreMock{
		ListFunc: func(ctx context.Context, limit int) ([]domain.NewsItem, error) {
			assert.Equal(t, 20, limit)
			return []domain.NewsItem{}, nil
		},
	}
	settings := &mocks.SettingsStoreMock{
		GetFunc: func(ctx context.Context) (*domain.Settings, error) {
			return &domain.Settings{MaxNewsHistory: 20}, nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, news, settings)

	req, w := newTestRequest(t, "GET", "/api/news", nil)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, news.ListCalls(), 1)
}

func TestServer_saveNewsHandler(t *testing.T) {
	news := &mocks.NewsStoreMock{
		CreateFunc: func(ctx context.Context, item *domain.NewsItem) error {
			item.ID = 7
			item.CreatedAt = time.Now()
			item.UpdatedAt = item.CreatedAt
			return nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, news, &mocks.SettingsStoreMock{})

	body := bytes.NewBufferString(`{"title":"หัวข้อ","content":"เนื้อหา","summary":"สรุป","source_url":"","tags":"ที่ดิน"}`)
	req, w := newTestRequest(t, "POST", "/api/save-news", body)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var item domain.NewsItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "หัวข้อ", item.Title)
	assert.Equal(t, "ที่ดิน", item.Tags)
}

func TestServer_updateNewsHandler(t *testing.T) {
	news := &mocks.NewsStoreMock{
		UpdateFunc: func(ctx context.Context, id int64, title, content, summary string) (*domain.NewsItem, error) {
			assert.Equal(t, int64(3), id)
			return &domain.NewsItem{ID: id, Title: title, Content: content, Summary: summary}, nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, news, &mocks.SettingsStoreMock{})

	body := bytes.NewBufferString(`{"id":3,"title":"ใหม่","content":"เนื้อหาใหม่","summary":"สรุปใหม่"}`)
	req, w := newTestRequest(t, "POST", "/api/update-news", body)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var item domain.NewsItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "ใหม่", item.Title)
}

func TestServer_updateNewsHandler_NotFound(t *testing.T) {
	news := &mocks.NewsStoreMock{
		UpdateFunc: func(ctx context.Context, id int64, title, content, summary string) (*domain.NewsItem, error) {
			return nil, nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, news, &mocks.SettingsStoreMock{})

	req, w := newTestRequest(t, "POST", "/api/update-news", bytes.NewBufferString(`{"id":999}`))
	srv.router.ServeHTTP(w, req)

	// soft not-found, still a success response
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"])
}

func TestServer_deleteNewsHandler(t *testing.T) {
	deleted := 0
	news := &mocks.NewsStoreMock{
		DeleteFunc: func(ctx context.Context, id int64) error {
			deleted++
			assert.Equal(t, int64(5), id)
			return nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, news, &mocks.SettingsStoreMock{})

	// deleting twice succeeds both times
	for i := 0; i < 2; i++ {
		req, w := newTestRequest(t, "POST", "/api/delete-news", bytes.NewBufferString(`{"id":5}`))
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.InEpsilon(t, 5.0, resp["id"], 0.001)
	}
	assert.Equal(t, 2, deleted)
}

func TestServer_getSettingsHandler(t *testing.T) {
	settings := &mocks.SettingsStoreMock{
		GetFunc: func(ctx context.Context) (*domain.Settings, error) {
			return &domain.Settings{AIModel: "gemini-1.5-flash", MaxNewsHistory: 50}, nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, &mocks.NewsStoreMock{}, settings)

	req, w := newTestRequest(t, "GET", "/api/settings", nil)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "gemini-1.5-flash", got.AIModel)
}

func TestServer_getSettingsHandler_Absent(t *testing.T) {
	settings := &mocks.SettingsStoreMock{
		GetFunc: func(ctx context.Context) (*domain.Settings, error) { return nil, nil },
	}
	srv := testServer(&mocks.PipelineMock{}, &mocks.NewsStoreMock{}, settings)

	req, w := newTestRequest(t, "GET", "/api/settings", nil)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestServer_updateSettingsHandler(t *testing.T) {
	settings := &mocks.SettingsStoreMock{
		UpdateFunc: func(ctx context.Context, upd domain.SettingsUpdate) (*domain.Settings, error) {
			assert.Equal(t, "gemini-1.5-pro", upd.AIModel)
			assert.Equal(t, 30, upd.MaxNewsHistory)
			return &domain.Settings{
				AIModel:        upd.AIModel,
				MaxNewsHistory: upd.MaxNewsHistory,
				UpdatedAt:      time.Now(),
			}, nil
		},
	}
	srv := testServer(&mocks.PipelineMock{}, &mocks.NewsStoreMock{}, settings)

	body := bytes.NewBufferString(`{"ai_model":"gemini-1.5-pro","max_news_history":30}`)
	req, w := newTestRequest(t, "POST", "/api/settings", body)
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "gemini-1.5-pro", got.AIModel)
	assert.False(t, got.UpdatedAt.IsZero())
	require.Len(t, settings.UpdateCalls(), 1)
}

func TestServer_saveNewsHandler_StoreFailure(t *testing.T) {
	news := &mocks.NewsStoreMock{
		CreateFunc: func(ctx context.Context, item *domain.NewsItem) error {
			return fmt.Errorf("disk full")
		},
	}
	srv := testServer(&mocks.PipelineMock{}, news, &mocks.SettingsStoreMock{})

	req, w := newTestRequest(t, "POST", "/api/save-news", bytes.NewBufferString(`{"title":"x"}`))
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "disk full")
}
