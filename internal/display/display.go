// Package display holds the terminal capabilities shared by the beautifier
// and the renderer: line width and bold/italic styling.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const defaultWidth = 80

type Display struct {
	width  int
	bold   *color.Color
	italic *color.Color
}

// New detects the width of out when it is a terminal and otherwise uses
// fallbackWidth, or 80 when that is not positive.
func New(out *os.File, fallbackWidth int) *Display {
	width := fallbackWidth
	if out != nil {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return NewWithWidth(width)
}

func NewWithWidth(width int) *Display {
	if width <= 0 {
		width = defaultWidth
	}
	return &Display{
		width:  width,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

// Plain returns a copy of d that never emits escape sequences.
func (d *Display) Plain() *Display {
	plain := NewWithWidth(d.width)
	plain.bold.DisableColor()
	plain.italic.DisableColor()
	return plain
}

func (d *Display) Width() int {
	return d.width
}

func (d *Display) Bold(s string) string {
	return d.bold.Sprint(s)
}

func (d *Display) Italic(s string) string {
	return d.italic.Sprint(s)
}

type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

var (
	_             pflag.Value = (*ColorMode)(nil)
	allColorModes             = []ColorMode{ColorModeAuto, ColorModeAlways, ColorModeNever}
)

func (m *ColorMode) Set(val string) error {
	for _, mode := range allColorModes {
		if val == string(mode) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid color mode: %s", val)
}

func (m ColorMode) String() string {
	return string(m)
}

func (m *ColorMode) Type() string {
	return "ColorMode"
}

// Apply sets the global color switch. Auto keeps the terminal detection done by fatih/color.
func (m ColorMode) Apply() {
	switch m {
	case ColorModeAlways:
		color.NoColor = false
	case ColorModeNever:
		color.NoColor = true
	}
}

func ColorModes() []ColorMode {
	return allColorModes
}
