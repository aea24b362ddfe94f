// Package imagegen calls an OpenAI-compatible image generation endpoint
// (POST {base}/images/generations) and returns the produced image bytes.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

// maxImageBytes caps downloads from a returned image URL.
const maxImageBytes = 32 << 20

// Provider generates images.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	size       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from image settings.
func NewProvider(cfg config.ImageConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		size:       cfg.Size,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "imagegen"),
	}
}

type generateRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	Size   string `json:"size,omitempty"`
	N      int    `json:"n"`
}

// Generate renders prompt at size (the configured size when empty).
//
// Failures of the generation call itself wrap domain.ErrProviderFailure.
// Failures to obtain the bytes of a successful generation (bad base64,
// unreachable result URL) wrap domain.ErrFetchFailure.
func (p *Provider) Generate(ctx context.Context, prompt, size string) ([]byte, error) {
	if size == "" {
		size = p.size
	}

	payload, err := json.Marshal(generateRequest{Model: p.model, Prompt: prompt, Size: size, N: 1})
	if err != nil {
		return nil, fmt.Errorf("imagegen: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/images/generations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("imagegen: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "imagegen request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("imagegen: %w: %w", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imagegen: %w: read body: %w", domain.ErrProviderFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		p.log.WarnContext(ctx, "imagegen rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return nil, fmt.Errorf("imagegen: %w: status %d: %s", domain.ErrProviderFailure, resp.StatusCode, msg)
	}

	first := gjson.GetBytes(body, "data.0")
	if !first.Exists() {
		return nil, fmt.Errorf("imagegen: %w: response has no image", domain.ErrProviderFailure)
	}

	if b64 := first.Get("b64_json"); b64.Exists() && b64.String() != "" {
		img, err := base64.StdEncoding.DecodeString(b64.String())
		if err != nil {
			return nil, fmt.Errorf("imagegen: %w: decode image: %w", domain.ErrFetchFailure, err)
		}
		return img, nil
	}

	if u := first.Get("url").String(); u != "" {
		return p.fetch(ctx, u)
	}

	return nil, fmt.Errorf("imagegen: %w: image has neither b64_json nor url", domain.ErrProviderFailure)
}

func (p *Provider) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("imagegen: %w: %w", domain.ErrFetchFailure, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "imagegen fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("imagegen: %w: %w", domain.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imagegen: %w: fetch status %d", domain.ErrFetchFailure, resp.StatusCode)
	}

	img, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imagegen: %w: read image: %w", domain.ErrFetchFailure, err)
	}
	if len(img) == 0 || len(img) > maxImageBytes {
		return nil, fmt.Errorf("imagegen: %w: image size %d out of range", domain.ErrFetchFailure, len(img))
	}
	return img, nil
}
