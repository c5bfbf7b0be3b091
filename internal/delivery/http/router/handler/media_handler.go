package handler

import (
	"log/slog"
	"net/http"

	"backstage/internal/delivery/http/response"
	domainerrors "backstage/internal/domain/errors"
	"backstage/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for file upload handlers.
type MediaHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(storage service.FileStorage, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{storage: storage, logger: logger}
}

// Upload streams a multipart file into the media bucket.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("multipart field 'file' is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	stored, err := h.storage.Save(c.Request().Context(), fileHeader.Filename, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("File uploaded", slog.String("key", stored.Key), slog.Int64("size", stored.Size))

	return response.Success(c, http.StatusCreated, stored, "File uploaded successfully")
}
