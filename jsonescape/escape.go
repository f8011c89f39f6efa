// Package jsonescape escapes strings for embedding in JSON documents.
// It is a leaf utility independent of the digest packages.
package jsonescape

import (
	"fmt"
	"strings"
)

func escape(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\v':
			b.WriteString(`\u000b`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c <= 7:
			fmt.Fprintf(b, `\u000%d`, c)
		case c <= 31: // 14..31, the named escapes above cover 8..13
			fmt.Fprintf(b, `\u00%02X`, c)
		default:
			b.WriteByte(c)
		}
	}
}

// Escape returns s with JSON string escaping applied, without
// surrounding quotes.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)>>3)
	escape(&b, s)
	return b.String()
}

// Quote returns s escaped and wrapped in double quotes, ready to drop
// into a JSON document as a string value.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)>>3 + 2)
	b.WriteByte('"')
	escape(&b, s)
	b.WriteByte('"')
	return b.String()
}
