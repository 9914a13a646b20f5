// Package upload stores event posters and profile photos with the hosted image service.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stpnv0/EventZone/internal/domain"
)

const defaultBaseURL = "https://api.cloudinary.com"

var (
	ErrNotImage   = fmt.Errorf("%w: file is not an image", domain.ErrValidation)
	ErrTooLarge   = fmt.Errorf("%w: file is too large", domain.ErrValidation)
	ErrUploadFail = errors.New("image upload failed")
)

var allowedImages = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Cloudinary uploads through an unsigned upload preset.
type Cloudinary struct {
	cloudName string
	preset    string
	baseURL   string
	maxBytes  int
	client    *http.Client
}

func NewCloudinary(cloudName, preset, baseURL string, maxBytes int, timeout time.Duration) *Cloudinary {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Cloudinary{
		cloudName: cloudName,
		preset:    preset,
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxBytes:  maxBytes,
		client:    &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload validates data by content, not by filename, and returns the public https URL.
func (c *Cloudinary) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if c.maxBytes > 0 && len(data) > c.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImages...) {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mt.String())
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("upload_preset", c.preset); err != nil {
		return "", fmt.Errorf("write preset: %w", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFail, err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUploadFail, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("%w: %s", ErrUploadFail, msg)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("%w: empty url", ErrUploadFail)
	}

	return out.SecureURL, nil
}
