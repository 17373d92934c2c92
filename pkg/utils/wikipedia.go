package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	mem "tripchat/pkg/memcache"
)

// PageInfo is the result of an encyclopedia title lookup.
type PageInfo struct {
	Exists bool
	URL    string
}

// Encyclopedia resolves a title to an article page.
type Encyclopedia interface {
	Lookup(ctx context.Context, title string) (PageInfo, error)
}

type WikipediaConfig struct {
	Language  string // e.g. "en"
	UserAgent string // Wikipedia rejects requests without one
	BaseURL   string // optional; defaults to https://<lang>.wikipedia.org/w/api.php
}

type WikipediaClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	cache      mem.LookupCache
}

func NewWikipediaClient(cfg WikipediaConfig, cache mem.LookupCache) *WikipediaClient {
	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
	}
	return &WikipediaClient{
		endpoint:   endpoint,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{},
		cache:      cache,
	}
}

type wikiQueryResponse struct {
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
			FullURL string `json:"fullurl"`
		} `json:"pages"`
	} `json:"query"`
}

// Lookup asks the MediaWiki page-info API whether an article titled
// exactly title exists and returns its canonical URL.
func (w *WikipediaClient) Lookup(ctx context.Context, title string) (PageInfo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return PageInfo{}, nil
	}
	if w.cache != nil {
		if exists, pageURL, ok := w.cache.Get(title); ok {
			return PageInfo{Exists: exists, URL: pageURL}, nil
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("prop", "info")
	params.Set("inprop", "url")
	params.Set("titles", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return PageInfo{}, fmt.Errorf("wikipedia: %w", err)
	}
	if w.userAgent != "" {
		req.Header.Set("User-Agent", w.userAgent)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return PageInfo{}, fmt.Errorf("wikipedia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PageInfo{}, fmt.Errorf("wikipedia: unexpected status %d", resp.StatusCode)
	}

	var body wikiQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PageInfo{}, fmt.Errorf("wikipedia: decode: %w", err)
	}

	info := PageInfo{}
	for _, page := range body.Query.Pages {
		if page.Missing || page.Invalid || page.FullURL == "" {
			continue
		}
		info = PageInfo{Exists: true, URL: page.FullURL}
		break
	}

	if w.cache != nil {
		w.cache.Set(title, info.Exists, info.URL)
	}
	return info, nil
}
