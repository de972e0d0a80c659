// Package scraper discovers the directory tree and data files of the
// archive by walking its HTML directory listings.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

// Data file suffixes recognized in listings: GeoTIFF tiles and NetCDF
// image stacks.
var dataSuffixes = []string{".tif", ".nc"}

// Tree is the result of a scrape: every distinct directory URL in
// depth-first visit order, and every data file URL in discovery order.
// File URLs are not de-duplicated.
type Tree struct {
	Dirs  []string
	Files []string
}

type Scraper struct {
	Client    *http.Client
	UserAgent string
}

func New(timeout time.Duration, userAgent string) *Scraper {
	return &Scraper{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// frame is a pending traversal step: either a directory listing to
// fetch or a file URL to record.
type frame struct {
	url string
	dir bool
}

// Scrape walks the listings reachable from seeds. Relative
// sub-directory links are followed depth-first in link-appearance
// order; parent-directory and absolute links are ignored; a visited
// set keeps each directory from being fetched more than once. A listing
// that cannot be fetched or parsed aborts the whole scrape.
func (s *Scraper) Scrape(ctx context.Context, seeds []string) (*Tree, error) {
	tree := &Tree{}
	visited := make(map[string]struct{}, len(seeds))

	stack := make([]frame, 0, len(seeds))
	for i := len(seeds) - 1; i >= 0; i-- {
		if _, ok := visited[seeds[i]]; ok {
			continue
		}
		visited[seeds[i]] = struct{}{}
		stack = append(stack, frame{url: seeds[i], dir: true})
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !cur.dir {
			tree.Files = append(tree.Files, cur.url)
			continue
		}

		tree.Dirs = append(tree.Dirs, cur.url)
		log.Debug("listing", "url", cur.url)

		hrefs, err := s.listing(ctx, cur.url)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", cur.url, err)
		}

		var children []frame
		for _, href := range hrefs {
			// Autoindex pages carry parent-directory and absolute
			// links; only relative child links stay inside the seed
			// scope.
			if strings.HasPrefix(href, "..") || strings.HasPrefix(href, "/") || strings.Contains(href, "://") {
				continue
			}
			switch {
			case strings.HasSuffix(href, "/"):
				sub := cur.url + href
				if _, ok := visited[sub]; ok {
					continue
				}
				visited[sub] = struct{}{}
				children = append(children, frame{url: sub, dir: true})
			case isDataFile(href):
				children = append(children, frame{url: cur.url + href})
			}
		}

		// Pushed in reverse so they pop in link-appearance order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return tree, nil
}

func isDataFile(href string) bool {
	for _, suffix := range dataSuffixes {
		if strings.HasSuffix(href, suffix) {
			return true
		}
	}
	return false
}

// listing fetches a directory listing and returns the href target of
// every anchor element, in document order.
func (s *Scraper) listing(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	return extractHrefs(doc), nil
}

func extractHrefs(n *html.Node) []string {
	var hrefs []string

	if n.Type == html.ElementNode && n.Data == "a" {
		for _, a := range n.Attr {
			if a.Key == "href" {
				hrefs = append(hrefs, a.Val)
				break
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		hrefs = append(hrefs, extractHrefs(c)...)
	}

	return hrefs
}
