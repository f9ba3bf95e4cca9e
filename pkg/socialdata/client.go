package socialdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.socialdata.tools"

// ErrNotFound is returned by LookupUser when the provider reports that no
// account exists for the given handle.
var ErrNotFound = errors.New("user not found")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

// LookupUser resolves a handle to the provider's stable account id. A leading
// @ and surrounding whitespace are stripped before the request.
func (c *Client) LookupUser(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")

	body, status, err := c.get(ctx, c.baseURL+"/twitter/user/"+url.PathEscape(handle))
	if err != nil {
		return "", fmt.Errorf("socialdata lookup %q: %w", handle, err)
	}
	if status == http.StatusNotFound {
		return "", ErrNotFound
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("socialdata lookup %q: unexpected status %d", handle, status)
	}

	var user map[string]any
	if err := decode(body, &user); err != nil {
		return "", fmt.Errorf("socialdata lookup %q: decode: %w", handle, err)
	}

	switch id := user["id"].(type) {
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("socialdata lookup %q: response has no id field", handle)
	}
}

// UserTweets fetches one page of recent posts for a resolved account id and
// returns the raw tweets array. Entries are left untyped; the provider
// controls their shape.
func (c *Client) UserTweets(ctx context.Context, userID string) ([]any, error) {
	endpoint := c.baseURL + "/twitter/user/" + url.PathEscape(userID) + "/tweets"
	return c.fetchTweets(ctx, endpoint)
}

// SearchTweets fetches one page of recent posts matching query, bounded to the
// past windowDays days via the provider's since: filter, most recent first.
func (c *Client) SearchTweets(ctx context.Context, query string, windowDays int) ([]any, error) {
	since := c.now().AddDate(0, 0, -windowDays).Format("2006-01-02")

	params := url.Values{}
	params.Set("query", query+" since:"+since)
	params.Set("type", "latest")

	endpoint := c.baseURL + "/twitter/search?" + params.Encode()
	return c.fetchTweets(ctx, endpoint)
}

func (c *Client) fetchTweets(ctx context.Context, endpoint string) ([]any, error) {
	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("socialdata fetch: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("socialdata fetch: unexpected status %d", status)
	}

	var page struct {
		Tweets []any `json:"tweets"`
	}
	if err := decode(body, &page); err != nil {
		return nil, fmt.Errorf("socialdata fetch: decode: %w", err)
	}

	return page.Tweets, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// decode unmarshals with json.Number so post ids survive without losing
// precision to float64.
func decode(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
