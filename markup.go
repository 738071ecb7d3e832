package tabler

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// MakeTag builds <tag attrs>text</tag>. Attribute values are HTML-escaped and
// falsy attributes are omitted. The text is trusted and written as-is.
func MakeTag(tag string, text any, attrs Attrs) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	for _, attr := range attrs {
		if !Truthy(attr.Value) {
			continue
		}
		fmt.Fprintf(&sb, ` %s="%s"`, attr.Key, html.EscapeString(Text(attr.Value)))
	}
	sb.WriteString(">")
	sb.WriteString(Text(text))
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

// Text converts a display value to markup text. nil renders as the empty
// string and floats are written without an exponent.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
