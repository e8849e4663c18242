package linkheader

import (
	"regexp"
	"strings"
)

var uriRegex = regexp.MustCompile(`<(.*)>`)

type ParseOption func(*parser)

// WithQuoteAwareSplit makes Parse ignore commas and semicolons inside
// quoted values and inside the angle brackets around a URI.
//
// Without it the header is split naively, so
//
//	<a>; media="screen, print"
//
// is read as two entries and fails to parse.
func WithQuoteAwareSplit() ParseOption {
	return func(p *parser) {
		p.quoteAware = true
	}
}

type parser struct {
	quoteAware bool
}

// Parse parses a Link header value.
//
// An empty value yields an empty collection. Empty list elements are skipped.
// An entry without a <URI> returns a *ParseError.
func Parse(linkHdr string, opts ...ParseOption) (*Collection, error) {
	p := &parser{}
	for _, o := range opts {
		o(p)
	}

	c := &Collection{}
	if strings.TrimSpace(linkHdr) == "" {
		return c, nil
	}

	for i, entry := range p.split(linkHdr, ',') {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		l, err := p.parseEntry(i, entry)
		if err != nil {
			return nil, err
		}
		c.links = append(c.links, l)
	}
	return c, nil
}

func (p *parser) parseEntry(i int, entry string) (Link, error) {
	sections := p.split(entry, ';')

	m := uriRegex.FindStringSubmatch(sections[0])
	if m == nil {
		return Link{}, &ParseError{Index: i, Entry: entry, Reason: "missing <URI>"}
	}
	if m[1] == "" {
		return Link{}, &ParseError{Index: i, Entry: entry, Reason: "empty URI"}
	}

	l := Link{uri: m[1]}
	for _, s := range sections[1:] {
		if strings.TrimSpace(s) == "" {
			continue
		}
		// Only the first '=' separates the name from the value.
		name, val, _ := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return Link{}, &ParseError{Index: i, Entry: entry, Reason: "attribute without a name"}
		}
		if l.attrs == nil {
			l.attrs = make(map[string]string, len(sections)-1)
		}
		l.attrs[name] = unquote(strings.TrimSpace(val))
	}
	return l, nil
}

// unquote strips at most one '"' from each end of s.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func (p *parser) split(s string, sep byte) []string {
	if !p.quoteAware {
		return strings.Split(s, string(sep))
	}

	var (
		ret     []string
		start   int
		quoted  bool
		bracket bool
	)
	// Only a '<' leading an entry opens a URI.
	entryStart := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case bracket:
			bracket = c != '>'
		case quoted:
			quoted = c != '"'
		case c == '<' && entryStart:
			bracket = true
		case c == '"':
			quoted = true
		case c == sep:
			ret = append(ret, s[start:i])
			start = i + 1
		}

		if c == ',' && !quoted && !bracket {
			entryStart = true
		} else if c != ' ' && c != '\t' {
			entryStart = false
		}
	}
	return append(ret, s[start:])
}
