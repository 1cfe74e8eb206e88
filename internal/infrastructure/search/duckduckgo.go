package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
)

const ddgEndpoint = "https://lite.duckduckgo.com/lite/"

// ddgRateLimit enforces 1 query per second across all DuckDuckGo instances
// and goroutines; the lite endpoint blocks faster clients.
var ddgRateLimit struct {
	mu   sync.Mutex
	last time.Time
}

// DuckDuckGo scrapes DuckDuckGo's lite HTML interface. No API key needed.
type DuckDuckGo struct {
	client *http.Client
}

func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{client: &http.Client{Timeout: 15 * time.Second}}
}

// NewDuckDuckGoWithClient is useful for overriding the default timeout and in tests.
func NewDuckDuckGoWithClient(client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{client: client}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	if err := ddgWait(ctx); err != nil {
		return nil, err
	}

	formData := url.Values{}
	formData.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ddgEndpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.New("duckduckgo: rate limit reached, try again in a moment")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: parse html: %w", err)
	}
	return parseLiteResults(doc), nil
}

func ddgWait(ctx context.Context) error {
	ddgRateLimit.mu.Lock()
	wait := time.Until(ddgRateLimit.last.Add(time.Second))
	if wait > 0 {
		ddgRateLimit.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		ddgRateLimit.mu.Lock()
	}
	ddgRateLimit.last = time.Now()
	ddgRateLimit.mu.Unlock()
	return nil
}

// parseLiteResults walks the lite page DOM. Result links carry
// class="result-link"; the snippet lives in the following
// td class="result-snippet".
func parseLiteResults(doc *html.Node) []Result {
	var results []Result
	var pending *Result

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(results) >= maxResults && pending == nil {
			return
		}
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "a" && hasClass(n, "result-link"):
				if pending != nil && len(results) < maxResults {
					results = append(results, *pending)
				}
				pending = &Result{
					Title: strings.TrimSpace(textContent(n)),
					URL:   normalizeDDGURL(attr(n, "href")),
				}
			case n.Data == "td" && hasClass(n, "result-snippet"):
				if pending != nil {
					pending.Snippet = strings.TrimSpace(textContent(n))
					if len(results) < maxResults {
						results = append(results, *pending)
					}
					pending = nil
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if pending != nil && len(results) < maxResults {
		results = append(results, *pending)
	}
	return results
}

// normalizeDDGURL unwraps the lite page's redirect links
// (//duckduckgo.com/l/?uddg=<encoded>) into the target URL.
func normalizeDDGURL(href string) string {
	if href == "" {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if strings.Contains(u.Path, "/l/") {
		if target := u.Query().Get("uddg"); target != "" {
			if decoded, err := url.QueryUnescape(target); err == nil {
				return decoded
			}
		}
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
