// Package linkfile reads YAML documents describing the links of a Link header.
//
//	links:
//	  - uri: /?page=1
//	    rel: previous
//	    anchor: "#top"
//
// The keys uri, rel, title, hreflang, media and type are known, any other key
// becomes an extra attribute.
package linkfile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/sainu/http-link-header/linkheader"
	"gopkg.in/yaml.v3"
)

const (
	cfgTag = "cfg"
)

var validate = validator.New()

type File struct {
	Links []*Link `yaml:"links" validate:"required,min=1,dive,required"`
}

type Link struct {
	URI      string `cfg:"uri" validate:"required"`
	Rel      string `cfg:"rel"`
	Title    string `cfg:"title"`
	Hreflang string `cfg:"hreflang" validate:"omitempty,bcp47_language_tag"`
	Media    string `cfg:"media"`
	Type     string `cfg:"type"`

	Extra map[string]string `cfg:"-"`
}

func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	m := map[string]interface{}{}
	if err := value.Decode(m); err != nil {
		return err
	}

	tmp := struct {
		Link `cfg:",squash"`
		Rest map[string]interface{} `cfg:",remain"`
	}{}
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &tmp,
		TagName:          cfgTag,
		WeaklyTypedInput: true,
		// Attribute names are case sensitive, "Rel" is an extra attribute.
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return fmt.Errorf("error initializing link decoder: %w", err)
	}
	if err := d.Decode(m); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*l = tmp.Link
	if len(tmp.Rest) > 0 {
		l.Extra = make(map[string]string, len(tmp.Rest))
	}
	for k, v := range tmp.Rest {
		switch v := v.(type) {
		case nil:
			l.Extra[k] = ""
		case string, bool, int, int64, uint64, float64:
			l.Extra[k] = fmt.Sprint(v)
		default:
			return fmt.Errorf("line %d: attribute %q must be a scalar, got %T", value.Line, k, v)
		}
	}
	return nil
}

// Attributes returns the link's attributes. Empty known attributes are left out.
func (l *Link) Attributes() map[string]string {
	ret := make(map[string]string, len(l.Extra)+5)
	for k, v := range l.Extra {
		ret[k] = v
	}
	for k, v := range map[string]string{
		linkheader.FieldRel:      l.Rel,
		linkheader.FieldTitle:    l.Title,
		linkheader.FieldHreflang: l.Hreflang,
		linkheader.FieldMedia:    l.Media,
		linkheader.FieldType:     l.Type,
	} {
		if v != "" {
			ret[k] = v
		}
	}
	return ret
}

// Collection returns the links of f, in file order.
func (f *File) Collection() *linkheader.Collection {
	c := linkheader.NewCollection()
	for _, l := range f.Links {
		c.AddLink(l.URI, l.Attributes())
	}
	return c
}

func Read(r io.Reader) (*File, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	f := &File{}
	// https://github.com/go-yaml/yaml/issues/639#issuecomment-666935833
	if err := d.Decode(f); err != nil && err != io.EOF {
		return nil, err
	}

	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid link file: %w", err)
	}
	return f, nil
}

func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
