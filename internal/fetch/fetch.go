// Package fetch downloads puzzle input from the Advent of Code site.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// SessionEnv names the environment variable holding the session token.
	SessionEnv = "AOC_SESSION"

	requestTimeout = 30 * time.Second
	userAgent      = "github.com/jorge-barreto/aoch"
	maxInputBytes  = 8 << 20
)

// httpClient is a package var so tests can point it at httptest servers.
var httpClient = &http.Client{Timeout: requestTimeout}

// ErrNoSession means no session token was found in any source.
var ErrNoSession = errors.New("no session token: pass --session, set " + SessionEnv + " or write one to the session file")

// StatusError is a non-200 reply from the puzzle site.
type StatusError struct {
	Day    int
	Status string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	switch e.Code {
	case http.StatusNotFound:
		return fmt.Sprintf("day %d input not available yet (%s)", e.Day, e.Status)
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Sprintf("day %d: session token rejected (%s)", e.Day, e.Status)
	}
	return fmt.Sprintf("day %d: unexpected status %s", e.Day, e.Status)
}

// Client downloads inputs for one event year.
type Client struct {
	BaseURL string
	Year    int
	Session string
	Logger  *zap.Logger
}

// URL returns the input URL for day n.
func (c *Client) URL(n int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(c.BaseURL, "/"), c.Year, n)
}

// Input downloads the input for day n.
func (c *Client) Input(ctx context.Context, n int) ([]byte, error) {
	if c.Session == "" {
		return nil, ErrNoSession
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(n), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading day %d: %w", n, err)
	}
	defer resp.Body.Close()
	logger.Debug("input request",
		zap.Int("day", n),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputBytes))
	if err != nil {
		return nil, fmt.Errorf("reading day %d input: %w", n, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Day: n, Status: resp.Status, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

// Session returns the session token from the first source that has one:
// the flag value, the AOC_SESSION environment variable, then the file at
// path. A missing file is not an error; ErrNoSession is returned when all
// sources are empty.
func Session(flag, path string) (string, error) {
	if s := strings.TrimSpace(flag); s != "" {
		return s, nil
	}
	if s := strings.TrimSpace(os.Getenv(SessionEnv)); s != "" {
		return s, nil
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("reading session file: %w", err)
		}
		if s := strings.TrimSpace(string(data)); s != "" {
			return s, nil
		}
	}
	return "", ErrNoSession
}
