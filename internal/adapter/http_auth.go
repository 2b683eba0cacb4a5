package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// HTTPAuthAdapter is the resty implementation of [AuthAdapter].
type HTTPAuthAdapter struct {
	client *HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an [HTTPAuthAdapter] rooted at loginURL
// (e.g. https://apigw-prod.api.triva.xyz/mobile-methods/login).
func NewHTTPAuthAdapter(loginURL string, timeout time.Duration, log *logger.Logger) (*HTTPAuthAdapter, error) {
	client, err := NewHTTPClient(loginURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid login address: %w", err)
	}

	return &HTTPAuthAdapter{client: client, logger: log}, nil
}

// Login implements [AuthAdapter].
func (h *HTTPAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return h.post(ctx, "/Login", req)
}

// RefreshLogin implements [AuthAdapter].
func (h *HTTPAuthAdapter) RefreshLogin(ctx context.Context, req models.RefreshLoginRequest) (models.LoginResponse, error) {
	return h.post(ctx, "/RefreshLogin", req)
}

func (h *HTTPAuthAdapter) post(ctx context.Context, path string, body any) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("login request failed")
		return models.LoginResponse{}, fmt.Errorf("%w: %s request: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode %s response: %w", path, err)
	}

	return out, nil
}
