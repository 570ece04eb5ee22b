// Package news fetches the live cybersecurity headline feed.
package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://newsapi.org"
	DefaultQuery   = "cybersecurity tips AND security"
	FeedSize       = 6
)

var ErrNotConfigured = errors.New("news feed api key not configured")

type Headline struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

type Config struct {
	APIKey  string
	BaseURL string
	Query   string
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	apiKey string
	query  string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Query == "" {
		cfg.Query = DefaultQuery
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout),
		apiKey: cfg.APIKey,
		query:  cfg.Query,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type everythingResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// Feed returns up to FeedSize of the newest matching headlines.
func (c *Client) Feed(ctx context.Context) ([]Headline, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        c.query,
			"sortBy":   "publishedAt",
			"language": "en",
			"apiKey":   c.apiKey,
		}).
		Get("/v2/everything")
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}

	var body everythingResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode news response (http %d): %w", resp.StatusCode(), err)
	}
	if resp.StatusCode() != http.StatusOK || body.Status != "ok" {
		return nil, fmt.Errorf("news api %s: %s", body.Code, body.Message)
	}

	out := make([]Headline, 0, FeedSize)
	for _, a := range body.Articles {
		if len(out) == FeedSize {
			break
		}
		// removed articles come back with placeholder titles
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		out = append(out, Headline{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return out, nil
}
