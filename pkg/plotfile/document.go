// Plot documents: a declarative description of a plot in TOML, JSON or YAML.

package plotfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

// Format identifies a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for unrecognised document encodings.
var ErrUnknownFormat = errors.New("unknown document format")

// Default surface size used when a document leaves it unset.
const (
	DefaultWidth  = 500
	DefaultHeight = 400
)

// autoMargin is the fraction of the data range added on each side when
// limits are derived from the data.
const autoMargin = 0.05

// Document describes a complete plot.
type Document struct {
	Title     string   `toml:"title,omitempty" json:"title,omitempty" yaml:"title,omitempty"`
	Width     int      `toml:"width,omitempty" json:"width,omitempty" yaml:"width,omitempty"`
	Height    int      `toml:"height,omitempty" json:"height,omitempty" yaml:"height,omitempty"`
	Grid      bool     `toml:"grid,omitempty" json:"grid,omitempty" yaml:"grid,omitempty"`
	Antialias bool     `toml:"antialias,omitempty" json:"antialias,omitempty" yaml:"antialias,omitempty"`
	Colors    Colors   `toml:"colors,omitempty" json:"colors,omitempty" yaml:"colors,omitempty"`
	Padding   Padding  `toml:"padding,omitempty" json:"padding,omitempty" yaml:"padding,omitempty"`
	Limits    *Limits  `toml:"limits,omitempty" json:"limits,omitempty" yaml:"limits,omitempty"`
	Secondary *Limits  `toml:"secondary,omitempty" json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Axes      Axes     `toml:"axes,omitempty" json:"axes,omitempty" yaml:"axes,omitempty"`
	Series    []Series `toml:"series,omitempty" json:"series,omitempty" yaml:"series,omitempty"`
}

// Colors holds the surface colours. Empty fields keep the defaults.
type Colors struct {
	Background string `toml:"background,omitempty" json:"background,omitempty" yaml:"background,omitempty"`
	Foreground string `toml:"foreground,omitempty" json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Grid       string `toml:"grid,omitempty" json:"grid,omitempty" yaml:"grid,omitempty"`
}

// Padding holds explicit paddings in pixels; nil means automatic.
type Padding struct {
	Left   *int `toml:"left,omitempty" json:"left,omitempty" yaml:"left,omitempty"`
	Right  *int `toml:"right,omitempty" json:"right,omitempty" yaml:"right,omitempty"`
	Top    *int `toml:"top,omitempty" json:"top,omitempty" yaml:"top,omitempty"`
	Bottom *int `toml:"bottom,omitempty" json:"bottom,omitempty" yaml:"bottom,omitempty"`
}

// Limits is a data-space rectangle given by its edges.
type Limits struct {
	X1 float64 `toml:"x1" json:"x1" yaml:"x1"`
	X2 float64 `toml:"x2" json:"x2" yaml:"x2"`
	Y1 float64 `toml:"y1" json:"y1" yaml:"y1"`
	Y2 float64 `toml:"y2" json:"y2" yaml:"y2"`
}

// Axes configures the four plot axes. nil entries keep the defaults.
type Axes struct {
	Left   *AxisDoc `toml:"left,omitempty" json:"left,omitempty" yaml:"left,omitempty"`
	Bottom *AxisDoc `toml:"bottom,omitempty" json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Right  *AxisDoc `toml:"right,omitempty" json:"right,omitempty" yaml:"right,omitempty"`
	Top    *AxisDoc `toml:"top,omitempty" json:"top,omitempty" yaml:"top,omitempty"`
}

// AxisDoc configures one axis.
type AxisDoc struct {
	Label      string `toml:"label,omitempty" json:"label,omitempty" yaml:"label,omitempty"`
	Visible    *bool  `toml:"visible,omitempty" json:"visible,omitempty" yaml:"visible,omitempty"`
	TickLabels *bool  `toml:"tick_labels,omitempty" json:"tick_labels,omitempty" yaml:"tick_labels,omitempty"`
	Format     string `toml:"format,omitempty" json:"format,omitempty" yaml:"format,omitempty"`
	Width      int    `toml:"width,omitempty" json:"width,omitempty" yaml:"width,omitempty"`
	Precision  *int   `toml:"precision,omitempty" json:"precision,omitempty" yaml:"precision,omitempty"`
}

// Series describes one plotted data set.
type Series struct {
	Name       string     `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Type       []string   `toml:"type" json:"type" yaml:"type,flow"`
	Color      string     `toml:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
	Size       float64    `toml:"size,omitempty" json:"size,omitempty" yaml:"size,omitempty"`
	Style      string     `toml:"style,omitempty" json:"style,omitempty" yaml:"style,omitempty"`
	LineColor  string     `toml:"line_color,omitempty" json:"line_color,omitempty" yaml:"line_color,omitempty"`
	LineWidth  float64    `toml:"line_width,omitempty" json:"line_width,omitempty" yaml:"line_width,omitempty"`
	BarColor   string     `toml:"bar_color,omitempty" json:"bar_color,omitempty" yaml:"bar_color,omitempty"`
	LabelColor string     `toml:"label_color,omitempty" json:"label_color,omitempty" yaml:"label_color,omitempty"`
	Points     []PointDoc `toml:"points" json:"points" yaml:"points"`
}

// PointDoc is one data point.
type PointDoc struct {
	X        float64 `toml:"x" json:"x" yaml:"x"`
	Y        float64 `toml:"y" json:"y" yaml:"y"`
	Label    string  `toml:"label,omitempty" json:"label,omitempty" yaml:"label,omitempty"`
	BarWidth float64 `toml:"bar_width,omitempty" json:"bar_width,omitempty" yaml:"bar_width,omitempty"`
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTOML, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Load reads a document from a file, choosing the decoder by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("decoding TOML: unknown key %q", undec[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &doc, nil
}

// Marshal encodes a document.
func Marshal(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return buf.Bytes(), nil
}

// FieldError reports one invalid document field.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// validFormats are the tick label styles accepted in documents.
const validFormats = "gGfeEt"

// Validate checks the document and returns every problem found, joined.
func (d *Document) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Msg: fmt.Sprintf(format, args...)})
	}

	if d.Width < 0 {
		bad("width", "must not be negative, got %d", d.Width)
	}
	if d.Height < 0 {
		bad("height", "must not be negative, got %d", d.Height)
	}

	for field, c := range map[string]string{
		"colors.background": d.Colors.Background,
		"colors.foreground": d.Colors.Foreground,
		"colors.grid":       d.Colors.Grid,
	} {
		if c == "" {
			continue
		}
		if _, err := ParseColor(c); err != nil {
			bad(field, "%v", err)
		}
	}

	for field, p := range map[string]*int{
		"padding.left": d.Padding.Left, "padding.right": d.Padding.Right,
		"padding.top": d.Padding.Top, "padding.bottom": d.Padding.Bottom,
	} {
		if p != nil && *p < 0 {
			bad(field, "must not be negative, got %d", *p)
		}
	}

	for field, l := range map[string]*Limits{"limits": d.Limits, "secondary": d.Secondary} {
		if l != nil && !finite(l.X1, l.X2, l.Y1, l.Y2) {
			bad(field, "must be finite")
		}
	}

	for field, a := range map[string]*AxisDoc{
		"axes.left": d.Axes.Left, "axes.bottom": d.Axes.Bottom,
		"axes.right": d.Axes.Right, "axes.top": d.Axes.Top,
	} {
		if a == nil {
			continue
		}
		if a.Format != "" && (len(a.Format) != 1 || !strings.Contains(validFormats, a.Format)) {
			bad(field+".format", "must be one of %q, got %q", validFormats, a.Format)
		}
	}

	for i, s := range d.Series {
		prefix := fmt.Sprintf("series[%d]", i)
		if len(s.Type) == 0 {
			bad(prefix+".type", "at least one of points, lines, bars is required")
		}
		for _, t := range s.Type {
			if _, err := plot.ParsePlotType(t); err != nil {
				bad(prefix+".type", "%v", err)
			}
		}
		if s.Style != "" {
			if _, err := plot.ParsePointStyle(s.Style); err != nil {
				bad(prefix+".style", "%v", err)
			}
		}
		for field, c := range map[string]string{
			".color": s.Color, ".line_color": s.LineColor,
			".bar_color": s.BarColor, ".label_color": s.LabelColor,
		} {
			if c == "" {
				continue
			}
			if _, err := ParseColor(c); err != nil {
				bad(prefix+field, "%v", err)
			}
		}
		if s.Size < 0 {
			bad(prefix+".size", "must not be negative")
		}
		if s.LineWidth < 0 {
			bad(prefix+".line_width", "must not be negative")
		}
		for j, p := range s.Points {
			if !finite(p.X, p.Y, p.BarWidth) {
				bad(fmt.Sprintf("%s.points[%d]", prefix, j), "coordinates must be finite")
			}
		}
	}

	// Map iteration order is random; report fields in a stable order.
	slices.SortStableFunc(errs, func(a, b error) int {
		return strings.Compare(a.(*FieldError).Field, b.(*FieldError).Field)
	})
	return errors.Join(errs...)
}
