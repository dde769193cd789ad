package ddclient

import (
	"net/url"
	"strconv"
)

// Page is the platform's list-response envelope.
type Page[T any] struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []T    `json:"results"`
}

// Pager walks a paged collection iteratively, keeping explicit limit/offset
// arithmetic instead of following the next URL verbatim so that the page size
// can change after the first request.
type Pager[T any] struct {
	c         *Client
	path      string
	params    url.Values
	limit     int
	nextLimit int
	offset    int
	started   bool
	done      bool
	page      Page[T]
	err       error
}

func newPager[T any](c *Client, path string, params url.Values, limit, nextLimit int) *Pager[T] {
	return &Pager[T]{c: c, path: path, params: params, limit: limit, nextLimit: nextLimit}
}

// Next fetches the following page. It returns false once the collection is
// exhausted or a request fails; per the error model, callers stop the scan
// either way (Err distinguishes the two).
func (p *Pager[T]) Next() bool {
	if p.done {
		return false
	}
	if p.started {
		p.offset += p.limit
		p.limit = p.nextLimit
	}
	p.started = true

	params := url.Values{}
	for k, v := range p.params {
		params[k] = v
	}
	params.Set("limit", strconv.Itoa(p.limit))
	params.Set("offset", strconv.Itoa(p.offset))

	p.page = Page[T]{}
	if err := p.c.get(p.path, params, &p.page); err != nil {
		p.err = err
		p.done = true
		return false
	}
	if p.page.Next == "" {
		p.done = true
	}
	return true
}

// Page returns the page fetched by the last successful Next.
func (p *Pager[T]) Page() *Page[T] {
	return &p.page
}

func (p *Pager[T]) Err() error {
	return p.err
}
