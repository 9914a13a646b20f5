package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// UploadPoster accepts a multipart "file" field and returns the hosted image URL.
func (h *Handler) UploadPoster(c *ginext.Context) {
	h.uploadImage(c)
}

// UploadPhoto hosts a profile photo. It is open before sign-up, so the
// returned URL can be sent as photo_url with the sign-up request.
func (h *Handler) UploadPhoto(c *ginext.Context) {
	h.uploadImage(c)
}

func (h *Handler) uploadImage(c *ginext.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file is required"})
		return
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		h.handleError(c, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, h.maxUploadBytes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	url, err := h.uploadService.Upload(c.Request.Context(), fh.Filename, data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
