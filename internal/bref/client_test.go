package bref

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pfrederiksen/bref-scraper/internal/fetch"
)

// fakeFetcher serves canned pages keyed by URL and records request order.
type fakeFetcher struct {
	pages     map[string]string
	errs      map[string]error
	requested []string
}

func (f *fakeFetcher) Get(url string) (string, error) {
	f.requested = append(f.requested, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	page, ok := f.pages[url]
	if !ok {
		return "", &fetch.RequestError{URL: url, Err: errors.New("unexpected status code: 404")}
	}
	return page, nil
}

// perGamePage builds a minimal league per-game stats page.
func perGamePage() string {
	return `<table id="per_game_stats">
<thead><tr><th>Player</th><th>PTS</th></tr></thead>
<tbody>
<tr><td>Player One</td><td>25.1</td></tr>
<tr><td>Player Two</td><td>18.4</td></tr>
</tbody>
</table>`
}

// emptyPerGamePage has the stats table id but no usable rows, which is how
// a not-yet-populated season page looks.
func emptyPerGamePage() string {
	return `<table id="per_game_stats">
<thead><tr><th>Player</th><th>PTS</th></tr></thead>
<tbody><tr><td colspan="2">No data yet</td></tr></tbody>
</table>`
}

// gameLogPage builds a game-log page using the given table id with n rows.
func gameLogPage(tableID string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<table id="%s">`, tableID)
	b.WriteString(`<thead><tr><th>Rk</th><th>PTS</th></tr></thead><tbody>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%d</td></tr>`, i, 10+i)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}
