package httpserver

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/logging"
)

// Backend is one upstream the gateway forwards to. Name doubles as the
// entity in client-facing bodies ("Product not found", "Product service
// unavailable").
type Backend struct {
	Name    string
	BaseURL string

	client *http.Client
}

// NewBackend builds a backend with a fixed five second budget per call.
func NewBackend(name, baseURL string) *Backend {
	return &Backend{
		Name:    name,
		BaseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 60 * time.Second,
				}).DialContext,
				MaxIdleConns:          200,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// Forward relays the request to the backend with the /api prefix stripped.
// Any status below 500 other than 404 passes through verbatim. A backend
// 404 becomes a generic not-found body. Timeouts, connection errors and
// backend 5xx all surface as 503 carrying the failure detail.
func (b *Backend) Forward() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		l := logging.FromContext(ctx).With("backend", b.Name)

		target := b.BaseURL + strings.TrimPrefix(req.URL.Path, "/api")
		if req.URL.RawQuery != "" {
			target += "?" + req.URL.RawQuery
		}

		out, err := http.NewRequestWithContext(ctx, req.Method, target, req.Body)
		if err != nil {
			l.Error("backend_request_failed", "target", target, "error", err)
			return b.unavailable(c, err.Error())
		}
		out.ContentLength = req.ContentLength
		if ct := req.Header.Get(echo.HeaderContentType); ct != "" {
			out.Header.Set(echo.HeaderContentType, ct)
		}

		proto := "http"
		if req.TLS != nil {
			proto = "https"
		} else if xf := req.Header.Get("X-Forwarded-Proto"); xf != "" {
			proto = xf
		}
		out.Header.Set("X-Forwarded-Proto", proto)
		if req.Host != "" {
			out.Header.Set("X-Forwarded-Host", req.Host)
		}

		resp, err := b.client.Do(out)
		if err != nil {
			l.Error("backend_unreachable", "target", target, "error", err)
			return b.unavailable(c, err.Error())
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			l.Error("backend_error", "target", target, "status", resp.StatusCode)
			return b.unavailable(c, fmt.Sprintf("backend responded with status %d", resp.StatusCode))
		}
		if resp.StatusCode == http.StatusNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": b.Name + " not found",
			})
		}

		contentType := resp.Header.Get(echo.HeaderContentType)
		if contentType == "" {
			contentType = echo.MIMEApplicationJSON
		}
		return c.Stream(resp.StatusCode, contentType, resp.Body)
	}
}

func (b *Backend) unavailable(c echo.Context, details string) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error":   b.Name + " service unavailable",
		"details": details,
	})
}
