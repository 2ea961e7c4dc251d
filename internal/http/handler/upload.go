package handler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"helpdesk-backend/internal/helper"
	"helpdesk-backend/internal/models"
)

// UploadHandler stores multipart files on the local filesystem and
// hands back URLs under /uploads. File content is not inspected.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload - POST /api/upload
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart form",
		})
	}

	files := form.File["files"]
	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	uploaded := []models.UploadedFile{}
	for _, file := range files {
		stored := helper.UniqueFilename(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.dir, stored)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Server error",
			})
		}

		contentType := file.Header.Get("Content-Type")
		kind := "file"
		if strings.HasPrefix(contentType, "image/") {
			kind = "image"
		}

		uploaded = append(uploaded, models.UploadedFile{
			Kind: kind,
			Name: file.Filename,
			Type: contentType,
			Size: file.Size,
			URL:  "/uploads/" + stored,
		})
	}

	return c.JSON(uploaded)
}
