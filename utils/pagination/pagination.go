package pagination

import (
	"net/url"
	"strconv"

	"github.com/sainu/http-link-header/linkheader"
)

const (
	DefaultParam = "page"

	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"

	// Some APIs spell out prev.
	relPrevious = "previous"
)

// Pages holds page numbers. Zero means the page is not known.
type Pages struct {
	First int `json:"first,omitempty" yaml:"first,omitempty"`
	Prev  int `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next  int `json:"next,omitempty" yaml:"next,omitempty"`
	Last  int `json:"last,omitempty" yaml:"last,omitempty"`
}

// New returns the pages around page for a result with last pages.
func New(page int, last int) Pages {
	if last < 1 || page < 1 {
		return Pages{}
	}
	p := Pages{First: 1, Last: last}
	if page > 1 {
		p.Prev = page - 1
	}
	if page < last {
		p.Next = page + 1
	}
	return p
}

// NextPage returns the page query parameter of the next link or 0.
func NextPage(linkHdr string) int {
	return Parse(linkHdr, DefaultParam).Next
}

// NextURL returns the target of the next link.
func NextURL(linkHdr string) (string, bool) {
	c, err := linkheader.Parse(linkHdr)
	if err != nil {
		return "", false
	}
	l, ok := c.FindBy(linkheader.FieldRel, RelNext)
	if !ok {
		return "", false
	}
	// make sure it's a valid URL
	if _, err := url.Parse(l.URI()); err != nil {
		return "", false
	}
	return l.URI(), true
}

// Parse reads the param query parameter of the first, prev, next and last
// links. A malformed header yields no pages.
func Parse(linkHdr string, param string) Pages {
	c, err := linkheader.Parse(linkHdr)
	if err != nil {
		return Pages{}
	}

	p := Pages{
		First: pageOf(c, param, RelFirst),
		Prev:  pageOf(c, param, RelPrev),
		Next:  pageOf(c, param, RelNext),
		Last:  pageOf(c, param, RelLast),
	}
	if p.Prev == 0 {
		p.Prev = pageOf(c, param, relPrevious)
	}
	return p
}

func pageOf(c *linkheader.Collection, param string, rel string) int {
	l, ok := c.FindBy(linkheader.FieldRel, rel)
	if !ok {
		return 0
	}
	parsed, err := url.Parse(l.URI())
	if err != nil {
		return 0
	}
	page, _ := strconv.Atoi(parsed.Query().Get(param))
	return page
}

// Links returns a link per known page, pointing at base with param set.
// Other query parameters of base are kept.
func Links(base *url.URL, param string, p Pages) *linkheader.Collection {
	c := linkheader.NewCollection()
	for _, pg := range []struct {
		rel  string
		page int
	}{
		{RelFirst, p.First},
		{RelPrev, p.Prev},
		{RelNext, p.Next},
		{RelLast, p.Last},
	} {
		if pg.page == 0 {
			continue
		}
		u := *base
		q := u.Query()
		q.Set(param, strconv.Itoa(pg.page))
		u.RawQuery = q.Encode()
		c.AddLink(u.String(), map[string]string{linkheader.FieldRel: pg.rel})
	}
	return c
}

// Header renders Links as a Link header value.
func Header(base *url.URL, param string, p Pages) string {
	return Links(base, param, p).String()
}
