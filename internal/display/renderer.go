package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/at-ishikawa/etym/internal/etymology"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatText, FormatYAML, FormatJSON}
)

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

func Formats() []Format {
	return allFormats
}

type Renderer struct {
	out     io.Writer
	display *Display
	format  Format
}

func NewRenderer(out io.Writer, display *Display, format Format) *Renderer {
	return &Renderer{
		out:     out,
		display: display,
		format:  format,
	}
}

func (r *Renderer) Render(entries []etymology.Entry) error {
	switch r.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("yaml.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Encoder.Close > %w", err)
		}
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("json.Encode > %w", err)
		}
		return nil
	}

	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return fmt.Errorf("fmt.Fprintln > %w", err)
			}
		}
		if err := r.RenderEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

// RenderEntry prints the headword in bold and the etymology wrapped to the display width.
func (r *Renderer) RenderEntry(entry etymology.Entry) error {
	if _, err := fmt.Fprintln(r.out, r.display.Bold(entry.Headword)); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	if _, err := fmt.Fprintln(r.out, wordwrap.WrapString(entry.Etymology, uint(r.display.Width()))); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	return nil
}
