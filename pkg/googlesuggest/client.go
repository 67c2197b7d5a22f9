package googlesuggest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
)

// Client queries the suggestion service. One Fetch is one HTTP request;
// retries are left to the caller.
type Client struct {
	apiURL     string
	format     string
	language   string
	userAgent  string
	httpClient *http.Client
}

// New creates a Client, filling unset fields with defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Format == "" {
		cfg.Format = FormatToolbar
	}
	if cfg.Format != FormatToolbar && cfg.Format != FormatFirefox {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if _, err := url.Parse(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("invalid suggestion API URL: %w", err)
	}

	return &Client{
		apiURL:     cfg.APIURL,
		format:     cfg.Format,
		language:   cfg.Language,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Format returns the response format the client requests.
func (c *Client) Format() string {
	return c.format
}

// Fetch returns the suggestions for query in the order the service lists them.
func (c *Client) Fetch(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("client", c.format)
	params.Set("q", query)
	if c.language != "" {
		params.Set("hl", c.language)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Query: query, Kind: ErrTransport, Err: err}
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, &FetchError{Query: query, Kind: ErrTimeout, Err: err}
		}
		return nil, &FetchError{Query: query, Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, &FetchError{Query: query, Kind: ErrTimeout, Err: err}
		}
		return nil, &FetchError{Query: query, Kind: ErrTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Query: query,
			Kind:  ErrTransport,
			Err:   fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200)),
		}
	}

	var suggestions []string
	switch c.format {
	case FormatFirefox:
		suggestions, err = ParseJSON(body)
	default:
		suggestions, err = ParseXML(body)
	}
	if err != nil {
		return nil, &FetchError{Query: query, Kind: ErrParse, Err: err}
	}

	return suggestions, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
