package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client configured
// for the TRIVA gateway: fixed base URL, request timeout, JSON accept header
// and no automatic retries.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL.
// Returns an error if baseURL is not an absolute http(s) URL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include http(s) scheme and host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
