package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"helpdesk-backend/internal/models"
)

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		if strings.HasSuffix(name, ".png") {
			h.Set("Content-Type", "image/png")
		} else {
			h.Set("Content-Type", "application/octet-stream")
		}
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write([]byte(content))
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	app := fiber.New()
	app.Post("/api/upload", NewUploadHandler(dir).Upload)

	body, contentType := multipartBody(t, map[string]string{
		"photo.png": "not-really-a-png",
		"notes.txt": "hello",
	})
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", res.StatusCode)
	}

	var uploaded []models.UploadedFile
	decodeBody(t, res, &uploaded)
	if len(uploaded) != 2 {
		t.Fatalf("want 2 descriptors, got %d", len(uploaded))
	}

	byName := map[string]models.UploadedFile{}
	for _, f := range uploaded {
		byName[f.Name] = f
	}
	img, ok := byName["photo.png"]
	if !ok || img.Kind != "image" || img.Type != "image/png" {
		t.Errorf("unexpected image descriptor: %+v", img)
	}
	txt, ok := byName["notes.txt"]
	if !ok || txt.Kind != "file" || txt.Size != int64(len("hello")) {
		t.Errorf("unexpected file descriptor: %+v", txt)
	}

	for _, f := range uploaded {
		if !strings.HasPrefix(f.URL, "/uploads/") {
			t.Errorf("URL outside /uploads: %q", f.URL)
			continue
		}
		stored := strings.TrimPrefix(f.URL, "/uploads/")
		if _, err := os.Stat(filepath.Join(dir, stored)); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	}
}

func TestUploadEmptyForm(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Post("/api/upload", NewUploadHandler(t.TempDir()).Upload)

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", res.StatusCode)
	}
	var uploaded []models.UploadedFile
	decodeBody(t, res, &uploaded)
	if len(uploaded) != 0 {
		t.Fatalf("want empty array, got %+v", uploaded)
	}
}
