package bref

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// playerPathPattern accepts only player profile paths; ids are typically
// 8-10 characters.
var playerPathPattern = regexp.MustCompile(`^/players/[a-z]/([a-z0-9]{7,12})\.html$`)

// PlayerResult is one player search hit.
type PlayerResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SearchPlayers queries the site search endpoint and returns candidate
// player ids. Non-player hits (teams, coaches) are filtered out.
func (c *Client) SearchPlayers(query string) ([]PlayerResult, error) {
	searchURL := c.baseURL + "/search/search.fcgi?search=" + url.QueryEscape(query)
	page, err := c.fetcher.Get(searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	var results []PlayerResult
	doc.Find("div.search-item").Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("div.search-item-name a").First().Text())

		path := strings.TrimSpace(sel.Find("div.search-item-url").First().Text())
		if path == "" {
			// Fallback: read the path from the anchor tag.
			href, _ := sel.Find("a").First().Attr("href")
			path = strings.TrimSpace(href)
		}
		if path == "" {
			return
		}

		m := playerPathPattern.FindStringSubmatch(path)
		if m == nil {
			return
		}

		results = append(results, PlayerResult{
			ID:   m[1],
			Name: name,
			URL:  c.baseURL + path,
		})
	})
	return results, nil
}
