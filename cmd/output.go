package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sainu/http-link-header/linkheader"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

type linkOutput struct {
	URI        string            `json:"uri" yaml:"uri"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

func newLinkOutput(l linkheader.Link) linkOutput {
	return linkOutput{URI: l.URI(), Attributes: l.Attributes()}
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeValue writes v as yaml or json. text is used for the text format.
func writeValue(w io.Writer, format string, v interface{}, text string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatText:
		_, err := fmt.Fprintln(w, text)
		return err
	default:
		return checkFormat(format)
	}
}

func writeLinks(w io.Writer, format string, links []linkheader.Link) error {
	if format == formatText {
		for _, l := range links {
			if _, err := fmt.Fprintln(w, l.String()); err != nil {
				return err
			}
		}
		return nil
	}

	out := make([]linkOutput, len(links))
	for i, l := range links {
		out[i] = newLinkOutput(l)
	}
	return writeValue(w, format, out, "")
}
