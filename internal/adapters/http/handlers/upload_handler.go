package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"snp-mealhub/internal/core/services"
	"snp-mealhub/internal/pkg/response"
)

// maxUploadSize bounds a single uploaded file (10 MB)
const maxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// UploadHandler handles file upload endpoints
type UploadHandler struct {
	store services.FileStore
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store services.FileStore) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// UploadFile handles a multipart file upload (receipts, supporting documents)
// @Summary Upload file
// @Description Upload a supporting document and get back its URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /uploads [post]
func (h *UploadHandler) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing file field")
	}

	if fileHeader.Size > maxUploadSize {
		return response.BadRequest(c, "File exceeds the 10MB limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return response.BadRequest(c, "Unsupported file type")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}

	userID := c.Locals("userID").(uint)
	now := time.Now()
	path := fmt.Sprintf("%s/%s%s", now.Format("2006/01"), uuid.New().String(), ext)

	url, err := h.store.Upload(c.Context(), path, data, map[string]string{
		"originalName": fileHeader.Filename,
		"uploadedBy":   fmt.Sprintf("%d", userID),
		"uploadedAt":   now.Format(time.RFC3339),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to store file")
	}

	return response.Created(c, "File uploaded successfully", fiber.Map{
		"url":          url,
		"originalName": fileHeader.Filename,
		"size":         fileHeader.Size,
	})
}
