package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/domain/service"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
	"portfolia/pkg/response"
	"portfolia/pkg/utils"
)

type FileHandler struct {
	fileService      service.FileUploadService
	fileMetadataRepo repository.FileMetadataRepository
	maxFileSize      int64
}

func NewFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
		maxFileSize:      maxFileSize,
	}
}

func SetupFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository, maxFileSize int64) {
	fileHandler = NewFileHandler(fileService, fileMetadataRepo, maxFileSize)
}

var (
	fileHandler *FileHandler
)

func GetFileHandler() *FileHandler {
	return fileHandler
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	folder := sanitizeFolderName(c.FormValue("folder"))

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening uploaded file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	fileType := file.Header.Get("Content-Type")

	url, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, folder)
	if err != nil {
		logger.Error("Storage upload failed: %v", err)
		return response.Error(c, err)
	}

	metadata := &entity.FileMetadata{
		ID:          uuid.New().String(),
		Filename:    file.Filename,
		URL:         url,
		ContentType: fileType,
		Folder:      folder,
		Size:        file.Size,
		UploadedAt:  time.Now(),
	}

	// Metadata is bookkeeping; the upload already succeeded.
	if err := h.fileMetadataRepo.Create(c.Request().Context(), metadata); err != nil {
		logger.Warn("Failed to save file metadata: %v", err)
	}

	return response.Success(c, map[string]interface{}{
		"id":       metadata.ID,
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

func (h *FileHandler) ListFiles(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	files, total, err := h.fileMetadataRepo.List(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, files, total, pagination.Page, pagination.PageSize)
}

func sanitizeFolderName(folder string) string {
	if folder == "" {
		return "uploads"
	}

	folder = strings.ToLower(folder)
	folder = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return -1
	}, folder)

	if folder == "" {
		return "uploads"
	}
	return folder
}
