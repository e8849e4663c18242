// Package feedlinks turns the links of a syndication feed into a Link header.
//
// Atom link elements carry the same attributes as Link header entries, so they
// are copied as they are. RSS and JSON feeds only know their home page and
// their own location, which become rel="alternate" and rel="self".
package feedlinks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/sainu/http-link-header/linkheader"
)

const (
	relAlternate = "alternate"
	relSelf      = "self"
	relRelated   = "related"

	typeAtom = "application/atom+xml"
	typeRSS  = "application/rss+xml"
	typeJSON = "application/feed+json"
	typeHTML = "text/html"
)

var ErrUnknownFeedType = errors.New("unknown feed type")

// FromReader parses the feed in r and returns its links in document order.
func FromReader(r io.Reader) (*linkheader.Collection, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading feed: %w", err)
	}

	switch gofeed.DetectFeedType(bytes.NewReader(b)) {
	case gofeed.FeedTypeAtom:
		fp := &atom.Parser{}
		feed, err := fp.Parse(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("error parsing atom feed: %w", err)
		}
		return fromAtom(feed), nil
	case gofeed.FeedTypeRSS, gofeed.FeedTypeJSON:
		feed, err := gofeed.NewParser().Parse(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("error parsing feed: %w", err)
		}
		return fromFeed(feed), nil
	default:
		return nil, ErrUnknownFeedType
	}
}

func FromFile(path string) (*linkheader.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromReader(f)
}

func fromAtom(feed *atom.Feed) *linkheader.Collection {
	c := linkheader.NewCollection()
	for _, l := range feed.Links {
		if l == nil || l.Href == "" {
			continue
		}
		// A link without rel is an alternate link (RFC 4287 4.2.7.2).
		rel := l.Rel
		if rel == "" {
			rel = relAlternate
		}
		c.AddLink(l.Href, withoutEmpty(map[string]string{
			linkheader.FieldRel:      rel,
			linkheader.FieldType:     l.Type,
			linkheader.FieldHreflang: l.Hreflang,
			linkheader.FieldTitle:    l.Title,
		}))
	}
	return c
}

func fromFeed(feed *gofeed.Feed) *linkheader.Collection {
	c := linkheader.NewCollection()
	seen := map[string]bool{}

	if feed.FeedLink != "" {
		seen[feed.FeedLink] = true
		c.AddLink(feed.FeedLink, withoutEmpty(map[string]string{
			linkheader.FieldRel:  relSelf,
			linkheader.FieldType: feedMediaType(feed.FeedType),
		}))
	}
	if feed.Link != "" && !seen[feed.Link] {
		seen[feed.Link] = true
		c.AddLink(feed.Link, withoutEmpty(map[string]string{
			linkheader.FieldRel:      relAlternate,
			linkheader.FieldType:     typeHTML,
			linkheader.FieldHreflang: feed.Language,
			linkheader.FieldTitle:    feed.Title,
		}))
	}
	for _, l := range feed.Links {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		c.AddLink(l, map[string]string{linkheader.FieldRel: relRelated})
	}
	return c
}

func feedMediaType(feedType string) string {
	switch feedType {
	case "atom":
		return typeAtom
	case "rss":
		return typeRSS
	case "json":
		return typeJSON
	default:
		return ""
	}
}

func withoutEmpty(attrs map[string]string) map[string]string {
	for k, v := range attrs {
		if v == "" {
			delete(attrs, k)
		}
	}
	return attrs
}
