package linkheader

import "strings"

const entrySep = ", "

// Collection is an ordered list of links.
//
// A Collection is not safe for concurrent use. Callers sharing one between
// goroutines must serialize calls to Add and AddLink.
type Collection struct {
	links []Link
}

// NewCollection returns a collection of the non-nil links, in order.
func NewCollection(links ...*Link) *Collection {
	return &Collection{links: Compact(links...)}
}

// Generate renders the non-nil links as a Link header value.
// It returns an empty string when there is nothing to render.
func Generate(links ...*Link) string {
	return join(Compact(links...))
}

// Flatten concatenates groups of optional links into one slice.
func Flatten(groups ...[]*Link) []*Link {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	ret := make([]*Link, 0, n)
	for _, g := range groups {
		ret = append(ret, g...)
	}
	return ret
}

// Compact drops the nil entries of links.
func Compact(links ...*Link) []Link {
	ret := make([]Link, 0, len(links))
	for _, l := range links {
		if l != nil {
			ret = append(ret, *l)
		}
	}
	return ret
}

func join(links []Link) string {
	rendered := make([]string, len(links))
	for i, l := range links {
		rendered[i] = l.String()
	}
	return strings.Join(rendered, entrySep)
}

// String renders the collection as a Link header value.
func (c *Collection) String() string {
	return join(c.links)
}

// Links returns a copy of the links in the collection.
func (c *Collection) Links() []Link {
	ret := make([]Link, len(c.links))
	copy(ret, c.links)
	return ret
}

func (c *Collection) Len() int {
	return len(c.links)
}

// IsPresent reports whether the collection holds at least one link.
func (c *Collection) IsPresent() bool {
	return len(c.links) > 0
}

// Add appends links to the collection.
func (c *Collection) Add(links ...Link) {
	c.links = append(c.links, links...)
}

// AddLink appends a new link for uri and attrs.
func (c *Collection) AddLink(uri string, attrs map[string]string) {
	c.links = append(c.links, NewLink(uri, attrs))
}

// FindBy returns the first link whose field name equals value.
// See GetField for the supported names.
func (c *Collection) FindBy(name string, value string) (Link, bool) {
	for _, l := range c.links {
		if v, ok := GetField(l, name); ok && v == value {
			return l, true
		}
	}
	return Link{}, false
}

// FilterBy returns every link whose field name equals value, in order.
func (c *Collection) FilterBy(name string, value string) []Link {
	var ret []Link
	for _, l := range c.links {
		if v, ok := GetField(l, name); ok && v == value {
			ret = append(ret, l)
		}
	}
	return ret
}
