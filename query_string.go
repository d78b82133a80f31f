// Package querystring provides a mutable, order preserving, multi-value representation of a URL query string
package querystring

import (
	"encoding/binary"
	"fmt"
	"github.com/go-andiamo/gopt"
	"hash/fnv"
	"iter"
	"maps"
	"net/url"
	"slices"
)

// QueryString is an ordered mapping of names to one or more values
//
// A name may occur as a bare flag (no '='), which is distinct from a name with an empty value.
//
// The zero value is an empty query string ready to use. A QueryString is not safe for concurrent use.
type QueryString struct {
	names   []string
	entries map[string][]entry
}

// New creates a new empty QueryString
func New() *QueryString {
	return &QueryString{
		entries: map[string][]entry{},
	}
}

// NewFromMap creates a new QueryString from a copy of the supplied map (e.g. url.Values)
//
// Names are added in sorted order. A name mapped to an empty slice becomes a bare flag.
func NewFromMap(m map[string][]string) *QueryString {
	result := New()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if name == "" {
			continue
		}
		vs := m[name]
		if len(vs) == 0 {
			result.add(name, flagEntry)
			continue
		}
		for _, v := range vs {
			result.add(name, valueEntry(v))
		}
	}
	return result
}

// Parse parses a raw query string (e.g. "x=1&y=2&z")
//
// Both '&' and ';' are accepted as separators. An empty raw string yields an empty QueryString.
func Parse(raw string) *QueryString {
	return New().AppendRaw(raw)
}

// ParseURL parses the query component of the supplied URL
//
// A nil URL, or one without a query, yields an empty QueryString
func ParseURL(u *url.URL) *QueryString {
	if u == nil {
		return New()
	}
	return Parse(u.RawQuery)
}

// ParseURI parses a raw URI and returns a QueryString of its query component
func ParseURI(raw string) (*QueryString, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("querystring: parse uri: %w", err)
	}
	return ParseURL(u), nil
}

// Clone returns a deep copy
func (q *QueryString) Clone() *QueryString {
	result := New()
	if q != nil {
		result.names = slices.Clone(q.names)
		for name, es := range q.entries {
			result.entries[name] = slices.Clone(es)
		}
	}
	return result
}

// Get returns the first value for the name
//
// The returned optional is empty if the name is not present or its first occurrence is a bare flag - use Contains to tell them apart
func (q *QueryString) Get(name string) *gopt.Optional[string] {
	if es := q.lookup(name); len(es) > 0 && es[0].present {
		return gopt.Of[string](es[0].value)
	}
	return gopt.Empty[string]()
}

// Values returns all values for the name, in order
//
// Bare flags are omitted, so a name present only as a flag yields an empty slice. Returns nil if the name is not present.
func (q *QueryString) Values(name string) []string {
	es := q.lookup(name)
	if es == nil {
		return nil
	}
	return presentValues(es)
}

// Map returns a deep copy of all names and their values (as per Values)
//
// Bare flags of a name that also has values are not represented, so Map followed by NewFromMap loses them
func (q *QueryString) Map() map[string][]string {
	result := make(map[string][]string, q.Len())
	if q != nil {
		for name, es := range q.entries {
			result[name] = presentValues(es)
		}
	}
	return result
}

// Names returns a sequence of the names in insertion order
//
// The sequence is a snapshot taken at the time of the call
func (q *QueryString) Names() iter.Seq[string] {
	var names []string
	if q != nil {
		names = slices.Clone(q.names)
	}
	return func(yield func(string) bool) {
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Contains reports whether the name is present (with or without a value)
func (q *QueryString) Contains(name string) bool {
	return q.lookup(name) != nil
}

// IsEmpty reports whether there are no names present
func (q *QueryString) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of distinct names
func (q *QueryString) Len() int {
	if q == nil {
		return 0
	}
	return len(q.names)
}

// Set replaces all values for the name with the single value
//
// A nil value (or nil *string, empty *gopt.Optional[string], invalid decimal.NullDecimal) removes the name.
// An existing name keeps its position; a new name is added last.
//
// Returns an ArgumentError if the name is empty
func (q *QueryString) Set(name string, value any) error {
	if name == "" {
		return newArgumentError("Set", "name", reasonEmpty)
	}
	e, ok := entryOf(value)
	if !ok {
		q.Remove(name)
		return nil
	}
	q.init()
	if _, exists := q.entries[name]; !exists {
		q.names = append(q.names, name)
	}
	q.entries[name] = []entry{e}
	return nil
}

// SetRaw replaces the entire contents with those parsed from the raw query string
func (q *QueryString) SetRaw(raw string) *QueryString {
	q.names = nil
	q.entries = map[string][]entry{}
	return q.AppendRaw(raw)
}

// Append adds a further value for the name, after any existing values
//
// A nil value (or nil *string, empty *gopt.Optional[string], invalid decimal.NullDecimal) adds a bare flag.
//
// Returns an ArgumentError if the name is empty
func (q *QueryString) Append(name string, value any) error {
	if name == "" {
		return newArgumentError("Append", "name", reasonEmpty)
	}
	e, _ := entryOf(value)
	q.add(name, e)
	return nil
}

// AppendRaw parses the raw query string and appends every occurrence, in order
func (q *QueryString) AppendRaw(raw string) *QueryString {
	for _, o := range parseSegments(raw) {
		q.add(o.name, o.entry)
	}
	return q
}

// Remove removes the name and all its values (no-op if the name is not present)
func (q *QueryString) Remove(name string) *QueryString {
	if _, exists := q.entries[name]; exists {
		delete(q.entries, name)
		q.names = slices.DeleteFunc(q.names, func(n string) bool {
			return n == name
		})
	}
	return q
}

// Equal reports whether both query strings hold the same names, each with the same values in the same order
//
// The order of names does not affect equality
func (q *QueryString) Equal(other *QueryString) bool {
	if q.Len() != other.Len() {
		return false
	} else if q.Len() == 0 {
		return true
	}
	for name, es := range q.entries {
		if !slices.Equal(es, other.entries[name]) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the contents that is consistent with Equal
func (q *QueryString) Hash() uint64 {
	var sum uint64
	if q == nil {
		return sum
	}
	var lb [binary.MaxVarintLen64]byte
	for name, es := range q.entries {
		h := fnv.New64a()
		_, _ = h.Write(lb[:binary.PutUvarint(lb[:], uint64(len(name)))])
		_, _ = h.Write([]byte(name))
		for _, e := range es {
			if e.present {
				_, _ = h.Write(lb[:binary.PutUvarint(lb[:], uint64(len(e.value))+1)])
				_, _ = h.Write([]byte(e.value))
			} else {
				_, _ = h.Write([]byte{0})
			}
		}
		// names are unordered, so combine commutatively
		sum += h.Sum64()
	}
	return sum
}

func (q *QueryString) lookup(name string) []entry {
	if q == nil {
		return nil
	}
	return q.entries[name]
}

func (q *QueryString) init() {
	if q.entries == nil {
		q.entries = map[string][]entry{}
	}
}

func (q *QueryString) add(name string, e entry) {
	q.init()
	es, exists := q.entries[name]
	if !exists {
		q.names = append(q.names, name)
	}
	q.entries[name] = append(es, e)
}

func presentValues(es []entry) []string {
	result := make([]string, 0, len(es))
	for _, e := range es {
		if e.present {
			result = append(result, e.value)
		}
	}
	return result
}
