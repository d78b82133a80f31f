package querystring

import (
	"net/url"
	"strconv"
	"strings"
)

// Separator is the character used to join name=value pairs when encoding
type Separator byte

const (
	Ampersand Separator = '&'
	Semicolon Separator = ';'
)

func (s Separator) String() string {
	return string(rune(s))
}

// entry is a single occurrence of a name - either a value or a bare flag (no '=')
type entry struct {
	value   string
	present bool
}

func valueEntry(v string) entry {
	return entry{value: v, present: true}
}

var flagEntry = entry{}

type occurrence struct {
	name  string
	entry entry
}

// parseSegments splits a raw query on both '&' and ';' and decodes each name and value
//
// empty segments and segments with an empty name are dropped
func parseSegments(raw string) []occurrence {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil
	}
	var result []occurrence
	for _, segment := range strings.FieldsFunc(raw, isInputSeparator) {
		k, v, hasValue := strings.Cut(segment, "=")
		name := unescape(k)
		if name == "" {
			continue
		}
		o := occurrence{name: name}
		if hasValue {
			o.entry = valueEntry(unescape(v))
		}
		result = append(result, o)
	}
	return result
}

func isInputSeparator(r rune) bool {
	return r == rune(Ampersand) || r == rune(Semicolon)
}

// unescape decodes form encoding; malformed escapes are left as is
func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Encode serializes the query string using the given separator
//
// Bare flags are written as just the name, empty values as "name="
func (q *QueryString) Encode(sep Separator) string {
	if q == nil || len(q.names) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, name := range q.names {
		keyEscaped := url.QueryEscape(name)
		for _, e := range q.entries[name] {
			if buf.Len() > 0 {
				buf.WriteByte(byte(sep))
			}
			buf.WriteString(keyEscaped)
			if e.present {
				buf.WriteByte('=')
				buf.WriteString(url.QueryEscape(e.value))
			}
		}
	}
	return buf.String()
}

// String serializes the query string using Ampersand as the separator
func (q *QueryString) String() string {
	return q.Encode(Ampersand)
}
