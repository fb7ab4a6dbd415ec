// Package grammar provides grammar and spelling checking through the
// LanguageTool HTTP API. Only the count of reported matches is consumed by
// the grading pipeline, but full match details are returned for callers
// that want them.
package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public LanguageTool API endpoint.
const DefaultBaseURL = "https://api.languagetool.org"

// DefaultLocale is the locale used for checking submissions.
const DefaultLocale = "en-US"

// DefaultTimeout is the default HTTP request timeout for a check call.
const DefaultTimeout = 30 * time.Second

// Checker reports grammar and spelling issues in a text.
// Implementations may call the LanguageTool API or return canned results
// for tests.
type Checker interface {
	Check(ctx context.Context, text string) ([]Match, error)
}

// Match is a single grammar or spelling issue reported by the checker.
type Match struct {
	Message string `json:"message"`
	RuleID  string `json:"-"`
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
}

// Error represents a failure talking to the grammar service.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("grammar check failed for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("grammar check failed for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the LanguageTool client.
type Options struct {
	BaseURL string
	Locale  string
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults for the public API.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Locale:  DefaultLocale,
		Timeout: DefaultTimeout,
	}
}

// LanguageTool is a Checker backed by a LanguageTool server.
type LanguageTool struct {
	baseURL string
	locale  string
	client  *http.Client
}

// NewLanguageTool creates a LanguageTool client. Nil options use defaults;
// empty fields fall back individually.
func NewLanguageTool(opts *Options) *LanguageTool {
	if opts == nil {
		opts = DefaultOptions()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &LanguageTool{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		locale:  locale,
		client:  &http.Client{Timeout: timeout},
	}
}

// checkResponse mirrors the subset of the LanguageTool response we read.
type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Offset  int    `json:"offset"`
		Length  int    `json:"length"`
		Rule    struct {
			ID string `json:"id"`
		} `json:"rule"`
	} `json:"matches"`
}

// Check submits text to the /v2/check endpoint and returns the reported
// matches for the configured locale.
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]Match, error) {
	endpoint := lt.baseURL + "/v2/check"

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &Error{URL: endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, &Error{URL: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: endpoint, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: endpoint, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var parsed checkResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{URL: endpoint, Message: "failed to parse response JSON", Cause: err}
	}

	matches := make([]Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		matches = append(matches, Match{
			Message: m.Message,
			RuleID:  m.Rule.ID,
			Offset:  m.Offset,
			Length:  m.Length,
		})
	}
	return matches, nil
}
