package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPDeltaAdapter is the resty implementation of [DeltaAdapter].
type HTTPDeltaAdapter struct {
	client     *HTTPClient
	tokens     TokenSource
	authScheme string
	logger     *logger.Logger
}

// NewHTTPDeltaAdapter constructs an [HTTPDeltaAdapter] rooted at dataURL
// (e.g. https://apigw-prod.api.triva.xyz/DataPublish). Every request carries
// the token obtained from tokens in the Authorization header, prefixed with
// authScheme when it is non-empty.
func NewHTTPDeltaAdapter(dataURL, authScheme string, timeout time.Duration, tokens TokenSource, log *logger.Logger) (*HTTPDeltaAdapter, error) {
	client, err := NewHTTPClient(dataURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid data publish address: %w", err)
	}

	return &HTTPDeltaAdapter{
		client:     client,
		tokens:     tokens,
		authScheme: strings.TrimSpace(authScheme),
		logger:     log,
	}, nil
}

// FetchPage implements [DeltaAdapter].
func (h *HTTPDeltaAdapter) FetchPage(ctx context.Context, resource string, sinceVersion uint64, offset, limit int) ([]byte, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	path := deltaPath(resource, sinceVersion)
	resp, err := req.
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("delta fetch rejected")
		return nil, err
	}

	return resp.Body(), nil
}

func (h *HTTPDeltaAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	header := token
	if h.authScheme != "" {
		header = h.authScheme + " " + token
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", header), nil
}

// deltaPath builds /<resource>/sinceVersion/<v>, escaping every segment of
// resource.
func deltaPath(resource string, sinceVersion uint64) string {
	var b strings.Builder
	for _, seg := range strings.Split(strings.Trim(resource, "/"), "/") {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	b.WriteString("/sinceVersion/")
	b.WriteString(strconv.FormatUint(sinceVersion, 10))
	return b.String()
}
