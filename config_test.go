package tabler_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

const yamlSpec = `columns:
  - field: id
    name: ID
    width: 40
  - field: name
    name: Name
    default: "(none)"
    formatter: upper
    class: who
  - field: secret
    disabled: true
`

const tomlSpec = `[[columns]]
field = "id"
name = "ID"
width = 40

[[columns]]
field = "name"
name = "Name"
default = "(none)"
formatter = "upper"
class = "who"

[[columns]]
field = "secret"
disabled = true
`

const jsonSpec = `{"columns": [
  {"field": "id", "name": "ID", "width": 40},
  {"field": "name", "name": "Name", "default": "(none)", "formatter": "upper", "class": "who"},
  {"field": "secret", "disabled": true}
]}`

func TestParseConfigFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabler.ConfigFormat
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":      {input: "yaml", want: tabler.ConfigYAML, wantErr: require.NoError},
		"yml ext":   {input: ".yml", want: tabler.ConfigYAML, wantErr: require.NoError},
		"toml ext":  {input: ".TOML", want: tabler.ConfigTOML, wantErr: require.NoError},
		"json":      {input: "json", want: tabler.ConfigJSON, wantErr: require.NoError},
		"unknown":   {input: ".xml", want: "", wantErr: require.Error},
		"empty ext": {input: "", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabler.ParseConfigFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSpec(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc    string
		format tabler.ConfigFormat
	}{
		"yaml": {doc: yamlSpec, format: tabler.ConfigYAML},
		"toml": {doc: tomlSpec, format: tabler.ConfigTOML},
		"json": {doc: jsonSpec, format: tabler.ConfigJSON},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			spec, err := tabler.DecodeSpec(strings.NewReader(tt.doc), tt.format, tabler.DefaultFormatters())
			require.NoError(t, err)
			require.Len(t, spec, 3)

			assert.Equal(t, "id", spec[0].Field)
			assert.Equal(t, "ID", spec[0].Name)
			assert.Equal(t, "40", spec[0].Width)
			assert.Nil(t, spec[0].Formatter)

			assert.Equal(t, "(none)", spec[1].DefaultText)
			assert.Equal(t, "who", spec[1].ClassName)
			require.NotNil(t, spec[1].Formatter)
			assert.Equal(t, "(NONE)", tabler.FormatValue(tabler.Row{}, spec[1]))

			assert.True(t, spec[2].Disabled)
		})
	}
}

func TestDecodeSpecErrors(t *testing.T) {
	t.Parallel()
	fns := tabler.DefaultFormatters()
	tests := map[string]struct {
		doc     string
		format  tabler.ConfigFormat
		wantErr error
	}{
		"unknown formatter": {
			doc:     "columns:\n  - field: a\n    formatter: shout\n",
			format:  tabler.ConfigYAML,
			wantErr: tabler.ErrUnknownFormatter,
		},
		"unknown header formatter": {
			doc:     `{"columns": [{"field": "a", "header": "nope"}]}`,
			format:  tabler.ConfigJSON,
			wantErr: tabler.ErrUnknownFormatter,
		},
		"unsupported format": {
			doc:     "",
			format:  "xml",
			wantErr: tabler.ErrUnsupportedFormat,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tabler.DecodeSpec(strings.NewReader(tt.doc), tt.format, fns)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown yaml key", func(t *testing.T) {
		t.Parallel()
		_, err := tabler.DecodeSpec(strings.NewReader("columns:\n  - feild: a\n"), tabler.ConfigYAML, fns)
		require.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()
		_, err := tabler.DecodeSpec(strings.NewReader("[[columns]\nfield ="), tabler.ConfigTOML, fns)
		require.Error(t, err)
	})
}

func TestDecodeSpecEmptyYAML(t *testing.T) {
	t.Parallel()
	spec, err := tabler.DecodeSpec(strings.NewReader(""), tabler.ConfigYAML, tabler.DefaultFormatters())
	require.NoError(t, err)
	assert.Empty(t, spec)
}

func TestDefaultFormatters(t *testing.T) {
	t.Parallel()
	fns := tabler.DefaultFormatters()
	tests := map[string]struct {
		name  string
		value any
		want  any
	}{
		"upper":        {name: "upper", value: "abc", want: "ABC"},
		"upper nil":    {name: "upper", value: nil, want: nil},
		"lower":        {name: "lower", value: "ABC", want: "abc"},
		"trim":         {name: "trim", value: "  a ", want: "a"},
		"escape":       {name: "escape", value: "<a&b>", want: "&lt;a&amp;b&gt;"},
		"number int":   {name: "number", value: 1234567, want: "1,234,567"},
		"number float": {name: "number", value: 1234.5, want: "1,234.5"},
		"number text":  {name: "number", value: "n/a", want: "n/a"},
		"yes":          {name: "yesno", value: true, want: "yes"},
		"no":           {name: "yesno", value: false, want: "no"},
		"yesno other":  {name: "yesno", value: 1, want: 1},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn := fns.Value[tt.name]
			require.NotNil(t, fn)
			assert.Equal(t, tt.want, fn(tt.value, tabler.Column{}, nil))
		})
	}

	col := tabler.Column{Field: "qty", Name: "Quantity"}
	assert.Equal(t, "QUANTITY", fns.Header["upper"](col))
	assert.Equal(t, "qty", fns.Header["field"](col))
}

func TestLoadSpecFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := filepath.Join(dir, "columns.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlSpec), 0o600))
	spec, err := tabler.LoadSpecFile(path, tabler.DefaultFormatters())
	require.NoError(t, err)
	assert.Len(t, spec, 3)

	_, err = tabler.LoadSpecFile(filepath.Join(dir, "columns.ini"), tabler.DefaultFormatters())
	require.ErrorIs(t, err, tabler.ErrUnsupportedFormat)

	_, err = tabler.LoadSpecFile(filepath.Join(dir, "missing.yaml"), tabler.DefaultFormatters())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeSpec(t *testing.T) {
	t.Parallel()
	spec := tabler.Spec{
		{Field: "id", Name: "ID", Width: "40"},
		{Field: "name", DefaultText: "-", Formatter: func(v any, _ tabler.Column, _ tabler.Row) any { return v }},
	}
	for _, format := range []tabler.ConfigFormat{tabler.ConfigYAML, tabler.ConfigTOML, tabler.ConfigJSON} {
		format := format
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, tabler.EncodeSpec(&buf, spec, format))

			got, err := tabler.DecodeSpec(&buf, format, tabler.Formatters{})
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "ID", got[0].Name)
			assert.Equal(t, "40", got[0].Width)
			assert.Equal(t, "-", got[1].DefaultText)
			assert.Nil(t, got[1].Formatter)
		})
	}

	err := tabler.EncodeSpec(&bytes.Buffer{}, spec, "xml")
	require.ErrorIs(t, err, tabler.ErrUnsupportedFormat)
}

func TestDecodeRows(t *testing.T) {
	t.Parallel()
	rows, err := tabler.DecodeRows(strings.NewReader(
		`[{"id": 1, "name": "Ann"}, {"id": 2, "name": null}, {"id": 10000000, "big": 9007199254740993}]`))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, json.Number("1"), rows[0]["id"])
	assert.Nil(t, rows[1]["name"])
	assert.Equal(t, "10000000", tabler.Text(rows[2]["id"]))
	assert.Equal(t, "9007199254740993", tabler.Text(rows[2]["big"]))

	tbl := newTable(t, tabler.Spec{{Field: "id"}})
	require.NoError(t, tbl.RenderData(rows[2:]))
	assert.Equal(t, "10000000", tbl.Find("td").Text())

	_, err = tabler.DecodeRows(strings.NewReader(`{"id": 1}`))
	require.Error(t, err)
}
