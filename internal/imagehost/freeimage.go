package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// FreeImageHost uploads to a freeimage.host-compatible API: a multipart POST
// with the API key and image bytes, answered with JSON describing the stored
// image and its thumbnail.
type FreeImageHost struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewFreeImageHost(endpoint, apiKey string) *FreeImageHost {
	return &FreeImageHost{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (h *FreeImageHost) Name() string {
	return "freeimage"
}

// freeImageResponse mirrors the fields we need from the upload API. URL
// fields are duplicated at several levels depending on API version, so the
// lookup falls through in order.
type freeImageResponse struct {
	StatusCode int `json:"status_code"`
	Image      struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Thumb      struct {
			URL string `json:"url"`
		} `json:"thumb"`
	} `json:"image"`
	DisplayURL string `json:"display_url"`
	URL        string `json:"url"`
}

func (h *FreeImageHost) Upload(ctx context.Context, data []byte, filename, mimeType string) (*Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	err := writer.WriteField("key", h.apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	_ = writer.WriteField("action", "upload")
	_ = writer.WriteField("format", "json")

	part, err := writer.CreateFormFile("source", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	_, err = part.Write(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: host returned status %d: %s", ErrUpload, resp.StatusCode, msg)
	}

	var parsed freeImageResponse
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrUpload, err)
	}

	url := parsed.Image.URL
	if url == "" {
		url = parsed.Image.DisplayURL
	}
	if url == "" {
		url = parsed.DisplayURL
	}
	if url == "" {
		url = parsed.URL
	}
	if url == "" {
		return nil, fmt.Errorf("%w: no image URL in response", ErrUpload)
	}

	return &Result{
		URL:      url,
		ThumbURL: parsed.Image.Thumb.URL,
		Width:    parsed.Image.Width,
		Height:   parsed.Image.Height,
	}, nil
}
