package tabler_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

func renderedTable(t *testing.T) *tabler.Table {
	t.Helper()
	tbl := newTable(t, tabler.Spec{{Field: "a", Name: "A"}, {Field: "b", Name: "Bee"}})
	tbl.SetFootRenderer(func(*tabler.Table, []tabler.Row, tabler.Spec) string {
		return "<tr><td>T</td><td>9</td></tr>"
	})
	require.NoError(t, tbl.RenderData([]tabler.Row{{"a": "x", "b": "yy"}}))
	return tbl
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		border tabler.BorderStyle
		want   string
	}{
		"rounded": {
			border: tabler.BorderRounded,
			want: "╭───┬─────╮\n" +
				"│ A │ Bee │\n" +
				"├───┼─────┤\n" +
				"│ x │ yy  │\n" +
				"├───┼─────┤\n" +
				"│ T │ 9   │\n" +
				"╰───┴─────╯\n",
		},
		"ascii": {
			border: tabler.BorderASCII,
			want: "+---+-----+\n" +
				"| A | Bee |\n" +
				"+---+-----+\n" +
				"| x | yy  |\n" +
				"+---+-----+\n" +
				"| T | 9   |\n" +
				"+---+-----+\n",
		},
		"none": {
			border: tabler.BorderNone,
			want: "A  Bee\n" +
				"-  ---\n" +
				"x  yy\n" +
				"-  ---\n" +
				"T  9\n",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := renderedTable(t)
			var buf bytes.Buffer
			require.NoError(t, tabler.WriteText(&buf, tbl.Mount(), tt.border))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTextEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, tabler.WriteText(&buf, &tabler.Mount{}, tabler.BorderRounded))
	assert.Empty(t, buf.String())
}

func TestWriteTextUnknownBorder(t *testing.T) {
	t.Parallel()
	tbl := renderedTable(t)
	err := tabler.WriteText(&bytes.Buffer{}, tbl.Mount(), tabler.BorderStyle(42))
	require.ErrorIs(t, err, tabler.ErrUnsupportedFormat)
}

func TestWriteTextError(t *testing.T) {
	t.Parallel()
	tbl := renderedTable(t)
	for _, border := range []tabler.BorderStyle{tabler.BorderRounded, tabler.BorderNone} {
		err := tabler.WriteText(&errWriter{}, tbl.Mount(), border)
		require.ErrorIs(t, err, errWriteFailed)
	}
}
