package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/henryfm1994/userlist-test/internal/types"
)

// ErrUnexpectedStatus is returned for non-2xx responses
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Source fetches the user records
type Source interface {
	Fetch(ctx context.Context) (*Result, error)
}

// Result is a successful fetch
type Result struct {
	Users        []types.User
	Duration     int64 // milliseconds
	ResponseSize int
}

// HTTPSource fetches records from an HTTP endpoint
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a source for url. A zero timeout means none.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL: url,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch performs one GET and decodes the results array in the order received
func (s *HTTPSource) Fetch(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer resp.Body.Close()

	if !IsSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload types.UsersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	users := payload.Results
	if users == nil {
		users = []types.User{}
	}

	return &Result{
		Users:        users,
		Duration:     time.Since(startTime).Milliseconds(),
		ResponseSize: len(body),
	}, nil
}

// FormatDuration formats duration in milliseconds to human-readable string
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
