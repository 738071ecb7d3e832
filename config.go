package tabler

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ConfigFormat is the encoding of a spec document.
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
	ConfigJSON ConfigFormat = "json"
)

// ParseConfigFormat maps a format name or file extension (with or without
// the leading dot) to a ConfigFormat.
func ParseConfigFormat(s string) (ConfigFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return ConfigYAML, nil
	case "toml":
		return ConfigTOML, nil
	case "json":
		return ConfigJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// columnConfig is the declarative form of a Column. Functions are referenced
// by name and resolved against a Formatters registry.
type columnConfig struct {
	Field     string `yaml:"field" toml:"field" json:"field"`
	Name      string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Default   any    `yaml:"default,omitempty" toml:"default,omitempty" json:"default,omitempty"`
	Width     any    `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Class     string `yaml:"class,omitempty" toml:"class,omitempty" json:"class,omitempty"`
	Disabled  bool   `yaml:"disabled,omitempty" toml:"disabled,omitempty" json:"disabled,omitempty"`
	Formatter string `yaml:"formatter,omitempty" toml:"formatter,omitempty" json:"formatter,omitempty"`
	Header    string `yaml:"header,omitempty" toml:"header,omitempty" json:"header,omitempty"`
}

type specConfig struct {
	Columns []columnConfig `yaml:"columns" toml:"columns" json:"columns"`
}

// Formatters maps names used in spec documents to functions.
type Formatters struct {
	Value  map[string]Formatter
	Header map[string]HeaderFormatter
}

// DefaultFormatters returns the built-in formatters:
//
//   - upper, lower, trim — string case and whitespace
//   - escape — HTML-escape the value
//   - number — group integer digits with commas
//   - yesno — render booleans as "yes"/"no"
//
// and the built-in header formatters upper and field (the column's field
// name).
func DefaultFormatters() Formatters {
	return Formatters{
		Value: map[string]Formatter{
			"upper":  stringFormatter(strings.ToUpper),
			"lower":  stringFormatter(strings.ToLower),
			"trim":   stringFormatter(strings.TrimSpace),
			"escape": stringFormatter(html.EscapeString),
			"number": formatNumber,
			"yesno":  formatYesNo,
		},
		Header: map[string]HeaderFormatter{
			"upper": func(col Column) string { return strings.ToUpper(col.Name) },
			"field": func(col Column) string { return col.Field },
		},
	}
}

func stringFormatter(fn func(string) string) Formatter {
	return func(value any, _ Column, _ Row) any {
		if value == nil {
			return nil
		}
		return fn(Text(value))
	}
}

func formatNumber(value any, _ Column, _ Row) any {
	var s string
	switch v := value.(type) {
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		s = v.String()
	default:
		return value
	}
	return groupDigits(s)
}

func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	out := sign + sb.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

func formatYesNo(value any, _ Column, _ Row) any {
	b, ok := value.(bool)
	if !ok {
		return value
	}
	if b {
		return "yes"
	}
	return "no"
}

// DecodeSpec reads a spec document in the given format. Formatter names are
// resolved against fns; an unknown name fails with [ErrUnknownFormatter].
func DecodeSpec(r io.Reader, format ConfigFormat, fns Formatters) (Spec, error) {
	var cfg specConfig
	switch format {
	case ConfigYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml spec: %w", err)
		}
	case ConfigTOML:
		if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode toml spec: %w", err)
		}
	case ConfigJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode json spec: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	spec := make(Spec, len(cfg.Columns))
	for i, c := range cfg.Columns {
		col := Column{
			Field:       c.Field,
			Name:        c.Name,
			DefaultText: c.Default,
			Width:       Text(c.Width),
			ClassName:   c.Class,
			Disabled:    c.Disabled,
		}
		if c.Formatter != "" {
			fn, ok := fns.Value[c.Formatter]
			if !ok {
				return nil, fmt.Errorf("%w: %q (column %q)", ErrUnknownFormatter, c.Formatter, c.Field)
			}
			col.Formatter = fn
		}
		if c.Header != "" {
			fn, ok := fns.Header[c.Header]
			if !ok {
				return nil, fmt.Errorf("%w: header %q (column %q)", ErrUnknownFormatter, c.Header, c.Field)
			}
			col.HeaderFormatter = fn
		}
		spec[i] = col
	}
	return spec, nil
}

// LoadSpecFile reads a spec document, choosing the format from the file
// extension.
func LoadSpecFile(path string, fns Formatters) (Spec, error) {
	format, err := ParseConfigFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSpec(bytes.NewReader(data), format, fns)
}

// DecodeRows reads a JSON array of objects. Numbers are kept as
// [json.Number] so large integers survive unchanged.
func DecodeRows(r io.Reader) ([]Row, error) {
	var rows []Row
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}

// EncodeSpec writes spec as a document in the given format. Function-valued
// fields have no declarative form and are left out.
func EncodeSpec(w io.Writer, spec Spec, format ConfigFormat) error {
	cfg := specConfig{Columns: make([]columnConfig, len(spec))}
	for i, col := range spec {
		cfg.Columns[i] = columnConfig{
			Field:    col.Field,
			Name:     col.Name,
			Default:  col.DefaultText,
			Class:    col.ClassName,
			Disabled: col.Disabled,
		}
		if col.Width != "" {
			cfg.Columns[i].Width = col.Width
		}
	}
	switch format {
	case ConfigYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case ConfigTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case ConfigJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
