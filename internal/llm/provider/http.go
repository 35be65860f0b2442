package provider

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// NewHTTPClient returns the transport shared by both SDKs. retryMax of zero
// (the default configuration) disables automatic retries entirely.
func NewHTTPClient(retryMax int, timeout time.Duration, logger *slog.Logger) *http.Client {
	h := retryablehttp.NewClient()
	h.RetryMax = max(retryMax, 0)
	h.RetryWaitMin = 500 * time.Millisecond
	h.RetryWaitMax = 5 * time.Second
	h.HTTPClient.Timeout = timeout
	// Hand the final response back so the SDKs can decode their own error bodies.
	h.ErrorHandler = retryablehttp.PassthroughErrorHandler
	h.Logger = nil
	if logger != nil {
		h.Logger = logger
	}
	return h.StandardClient()
}
