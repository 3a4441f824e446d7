package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/upload"
)

type FileHandler struct {
	uploadDir string
	hostURL   string
}

func NewFileHandler(uploadDir, hostURL string) *FileHandler {
	return &FileHandler{uploadDir: uploadDir, hostURL: hostURL}
}

// UploadProductImage validates and stores a product image
// POST /api/v1/files/product
func (h *FileHandler) UploadProductImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, apperr.ErrEmptyFile)
	}

	info := upload.FileInfo{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
	}

	if err := upload.CheckFile(info); err != nil {
		return errorJSON(c, err)
	}

	name, err := upload.RandomName(info)
	if err != nil {
		return errorJSON(c, err)
	}

	if err := c.SaveFile(fileHeader, filepath.Join(h.uploadDir, name)); err != nil {
		return errorJSON(c, apperr.ErrInternal)
	}

	return c.Status(201).JSON(fiber.Map{
		"fileName":  name,
		"secureUrl": fmt.Sprintf("%s/api/v1/files/product/%s", h.hostURL, name),
	})
}

// GetProductImage serves a stored product image by name
// GET /api/v1/files/product/:imageName
func (h *FileHandler) GetProductImage(c *fiber.Ctx) error {
	// Base strips any path traversal from the requested name
	name := filepath.Base(c.Params("imageName"))
	path := filepath.Join(h.uploadDir, name)

	if _, err := os.Stat(path); err != nil {
		return errorJSON(c, apperr.ErrNotFound)
	}

	return c.SendFile(path)
}
