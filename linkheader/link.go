// Package linkheader parses and generates HTTP Link header values (RFC 8288).
package linkheader

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	FieldURI      = "uri"
	FieldRel      = "rel"
	FieldTitle    = "title"
	FieldHreflang = "hreflang"
	FieldMedia    = "media"
	FieldType     = "type"
)

// Known attributes, in the order they are rendered.
var knownAttributes = []string{FieldRel, FieldTitle, FieldHreflang, FieldMedia, FieldType}

// Link is a single target URI and its attributes.
// The zero value is a Link with an empty URI and no attributes.
type Link struct {
	uri   string
	attrs map[string]string
}

// NewLink returns a Link for uri with a copy of attrs.
// Neither the URI nor the attribute names are validated.
func NewLink(uri string, attrs map[string]string) Link {
	l := Link{uri: uri}
	if len(attrs) > 0 {
		l.attrs = maps.Clone(attrs)
	}
	return l
}

func (l Link) URI() string {
	return l.uri
}

// Attributes returns a copy of the link's attributes.
func (l Link) Attributes() map[string]string {
	ret := make(map[string]string, len(l.attrs))
	maps.Copy(ret, l.attrs)
	return ret
}

// Attr returns the value of the attribute name and whether it is set.
func (l Link) Attr(name string) (string, bool) {
	v, ok := l.attrs[name]
	return v, ok
}

func (l Link) Rel() string      { return l.attrs[FieldRel] }
func (l Link) Title() string    { return l.attrs[FieldTitle] }
func (l Link) Hreflang() string { return l.attrs[FieldHreflang] }
func (l Link) Media() string    { return l.attrs[FieldMedia] }
func (l Link) Type() string     { return l.attrs[FieldType] }

// Equal reports whether l and o have the same URI and the same attributes.
func (l Link) Equal(o Link) bool {
	return l.uri == o.uri && maps.Equal(l.attrs, o.attrs)
}

// attrNames returns the attribute names in render order: the known
// attributes first, then everything else sorted.
func (l Link) attrNames() []string {
	names := make([]string, 0, len(l.attrs))
	for _, k := range knownAttributes {
		if _, ok := l.attrs[k]; ok {
			names = append(names, k)
		}
	}
	if len(names) == len(l.attrs) {
		return names
	}

	extra := make([]string, 0, len(l.attrs)-len(names))
	for _, k := range maps.Keys(l.attrs) {
		if !slices.Contains(knownAttributes, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}

// String renders the link as a single Link header entry.
// Every value is quoted; quotes inside a value are not escaped.
func (l Link) String() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(l.uri)
	sb.WriteString(">")
	for _, name := range l.attrNames() {
		sb.WriteString(`; `)
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(l.attrs[name])
		sb.WriteString(`"`)
	}
	return sb.String()
}

// GetField returns the value of the field name of l.
// FieldURI addresses the target URI, every other name, known or not, is
// looked up in the link's attributes.
func GetField(l Link, name string) (string, bool) {
	if name == FieldURI {
		return l.uri, true
	}
	return l.Attr(name)
}
