package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// maxResponseBytes begrenzt, wie viel vom Backend-Body gelesen wird.
const maxResponseBytes = 10 << 20

// Request ist ein ausgehender Aufruf an das Marktplatz-Backend.
type Request struct {
	Method        string
	Path          string // z. B. "/shops/12", bereits aufgelöst
	Query         url.Values
	Body          []byte
	Authorization string // unverändert vom eingehenden Request
	Language      string
	RequestID     string
}

// Response ist die rohe Antwort des Backends.
type Response struct {
	Status int
	Body   []byte
}

// IsSuccess ist true für 2xx.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client reicht Requests an das Backend weiter.
type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient erstellt den Backend-Client. timeout 0 nutzt das Verhalten der Plattform (kein eigener Timeout).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// URL baut {baseURL}{path}?{query}.
func (c *HTTPClient) URL(path string, query url.Values) string {
	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

func (c *HTTPClient) Do(ctx context.Context, r Request) (*Response, error) {
	target := c.URL(r.Path, r.Query)

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("backend request erstellen: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.Authorization != "" {
		req.Header.Set("Authorization", r.Authorization)
	}
	if r.Language != "" {
		req.Header.Set("Accept-Language", r.Language)
	}
	if r.RequestID != "" {
		req.Header.Set("X-Request-ID", r.RequestID)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", r.Method).Str("url", target).Msg("Backend nicht erreichbar")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("backend body lesen: %w", err)
	}

	log.Debug().
		Str("[request_id]", r.RequestID).
		Str("method", r.Method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Backend-Antwort")

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

// LogoutPath ist der Abmeldeendpunkt des Backends.
const LogoutPath = "/back-office/auth/logout"

// NewLogoutRoutine liefert die externe Abmelderoutine der Dashboard-Sitzung.
// Nicht-2xx gilt als Fehler, wird vom Aufrufer aber nur geloggt.
func NewLogoutRoutine(client Client) func(ctx context.Context, authorization string) error {
	return func(ctx context.Context, authorization string) error {
		resp, err := client.Do(ctx, Request{
			Method:        http.MethodPost,
			Path:          LogoutPath,
			Authorization: authorization,
		})
		if err != nil {
			return err
		}
		if !resp.IsSuccess() {
			return fmt.Errorf("backend logout: status %d", resp.Status)
		}
		return nil
	}
}
