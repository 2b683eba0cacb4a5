package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps the response body copied into a TransportError.
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	status := http.StatusText(resp.StatusCode())
	if status == "" {
		status = strings.TrimSpace(resp.Status())
	}

	return &TransportError{
		Method:     resp.Request.Method,
		Path:       resp.Request.URL,
		StatusCode: resp.StatusCode(),
		Status:     status,
		Body:       body,
	}
}
