package renderer

import (
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

var markupPattern = regexp.MustCompile(`([A-Z][A-Z_]*)\{([^{}]+)\}`)

// Span is a run of message text drawn in one style
type Span struct {
	Text  string
	Style TextStyle
}

// ApplyMarkup translates msg and fills in its arguments. Markup such as
// ITEM{...} is kept so each backend can style it when drawing.
func ApplyMarkup(msg string, a ...any) string {
	return gotext.Get(msg, a...)
}

func markupStyle(function string) (TextStyle, bool) {
	switch function {
	case "ITEM":
		return StyleItem, true
	case "ROOM":
		return StyleRoom, true
	case "ACTION":
		return StyleAction, true
	case "DENIED":
		return StyleDenied, true
	case "SUBTLE":
		return StyleSubtle, true
	}
	return StyleNormal, false
}

// ParseMarkup splits a message into styled spans. Unknown markup is kept as
// plain text.
func ParseMarkup(msg string) []Span {
	var spans []Span
	last := 0
	for _, m := range markupPattern.FindAllStringSubmatchIndex(msg, -1) {
		style, ok := markupStyle(msg[m[2]:m[3]])
		if !ok {
			continue
		}
		if m[0] > last {
			spans = append(spans, Span{Text: msg[last:m[0]], Style: StyleNormal})
		}
		spans = append(spans, Span{Text: msg[m[4]:m[5]], Style: style})
		last = m[1]
	}
	if last < len(msg) {
		spans = append(spans, Span{Text: msg[last:], Style: StyleNormal})
	}
	return spans
}

// FormatMarkup renders a message through style, one call per span
func FormatMarkup(msg string, style func(text string, s TextStyle) string) string {
	var sb strings.Builder
	for _, span := range ParseMarkup(msg) {
		sb.WriteString(style(span.Text, span.Style))
	}
	return sb.String()
}

// StripMarkup returns the message text without any markup
func StripMarkup(msg string) string {
	return FormatMarkup(msg, func(text string, _ TextStyle) string { return text })
}
